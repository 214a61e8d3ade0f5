package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Comics price column is NUMERIC(10,2).
const (
	ComicsPricePrecision = 10
	ComicsPriceScale     = 2
)

// Comics is a single comics issue. CharacterIDs and AuthorIDs are the
// many-to-many links stored in the join tables.
type Comics struct {
	ID           int64           `json:"id"`
	Slug         string          `json:"slug"`
	Title        string          `json:"title"`
	Volume       int             `json:"volume"`
	DateCreated  time.Time       `json:"date_created"`
	Price        decimal.Decimal `json:"price"`
	Country      string          `json:"country"`
	CharacterIDs []int64         `json:"characters"`
	AuthorIDs    []int64         `json:"authors"`
}

// EnsureSlug derives the slug from title, volume and creation date when it is empty.
func (c *Comics) EnsureSlug() {
	if c.Slug == "" {
		c.Slug = Slugify(c.Title, strconv.Itoa(c.Volume), unixPart(c.DateCreated))
	}
}

// Validate checks the comics against the schema constraints.
func (c *Comics) Validate() error {
	if err := checkLength("title", c.Title, 4, 128); err != nil {
		return err
	}
	if err := checkAlpha("title", c.Title); err != nil {
		return err
	}
	if err := checkPositive("volume", c.Volume); err != nil {
		return err
	}
	if c.DateCreated.IsZero() {
		return NewValidationError("date_created", "is required", nil)
	}
	if err := checkMoney("price", c.Price, ComicsPricePrecision, ComicsPriceScale); err != nil {
		return err
	}
	if err := checkLength("country", c.Country, 4, 64); err != nil {
		return err
	}
	if err := checkAlpha("country", c.Country); err != nil {
		return err
	}
	for _, id := range c.CharacterIDs {
		if err := checkID("characters", id); err != nil {
			return err
		}
	}
	for _, id := range c.AuthorIDs {
		if err := checkID("authors", id); err != nil {
			return err
		}
	}
	return checkSlug(c.Slug)
}
