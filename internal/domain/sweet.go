package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Sweet price column is NUMERIC(4,2).
const (
	SweetPricePrecision = 4
	SweetPriceScale     = 2
)

// Sweet is a candy themed after a character. Weight is in grams.
type Sweet struct {
	ID          int64           `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Weight      int             `json:"weight"`
	CharacterID int64           `json:"character_id"`
}

// EnsureSlug derives the slug from title, weight and price when it is empty.
func (s *Sweet) EnsureSlug() {
	if s.Slug == "" {
		s.Slug = Slugify(s.Title, strconv.Itoa(s.Weight), s.Price.StringFixed(SweetPriceScale))
	}
}

// Validate checks the sweet against the schema constraints.
func (s *Sweet) Validate() error {
	if err := checkLength("title", s.Title, 4, 128); err != nil {
		return err
	}
	if err := checkAlpha("title", s.Title); err != nil {
		return err
	}
	if err := checkMoney("price", s.Price, SweetPricePrecision, SweetPriceScale); err != nil {
		return err
	}
	if err := checkPositive("weight", s.Weight); err != nil {
		return err
	}
	if err := checkID("character_id", s.CharacterID); err != nil {
		return err
	}
	return checkSlug(s.Slug)
}
