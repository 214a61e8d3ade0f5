package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Toy price column is NUMERIC(4,2).
const (
	ToyPricePrecision = 4
	ToyPriceScale     = 2
)

// Toy is a toy from a universe depicting a character. Age is the minimum
// recommended age in years.
type Toy struct {
	ID          int64           `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Age         int             `json:"age"`
	TypeOfToy   string          `json:"type_of_toy"`
	Price       decimal.Decimal `json:"price"`
	UniverseID  int64           `json:"universe_id"`
	CharacterID int64           `json:"character_id"`
}

// EnsureSlug derives the slug from title, age and price when it is empty.
func (t *Toy) EnsureSlug() {
	if t.Slug == "" {
		t.Slug = Slugify(t.Title, strconv.Itoa(t.Age), t.Price.StringFixed(ToyPriceScale))
	}
}

// Validate checks the toy against the schema constraints.
func (t *Toy) Validate() error {
	if err := checkLength("title", t.Title, 4, 128); err != nil {
		return err
	}
	if err := checkAlpha("title", t.Title); err != nil {
		return err
	}
	if err := checkPositive("age", t.Age); err != nil {
		return err
	}
	if err := checkLength("type_of_toy", t.TypeOfToy, 4, 64); err != nil {
		return err
	}
	if err := checkAlpha("type_of_toy", t.TypeOfToy); err != nil {
		return err
	}
	if err := checkMoney("price", t.Price, ToyPricePrecision, ToyPriceScale); err != nil {
		return err
	}
	if err := checkID("universe_id", t.UniverseID); err != nil {
		return err
	}
	if err := checkID("character_id", t.CharacterID); err != nil {
		return err
	}
	return checkSlug(t.Slug)
}
