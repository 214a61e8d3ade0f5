package domain

import "github.com/shopspring/decimal"

// Device price column is NUMERIC(5,2).
const (
	DevicePricePrecision = 5
	DevicePriceScale     = 2
)

// Device is a gadget from a universe, owned by a character.
type Device struct {
	ID           int64           `json:"id"`
	Slug         string          `json:"slug"`
	Title        string          `json:"title"`
	TypeOfDevice string          `json:"type_of_device"`
	Price        decimal.Decimal `json:"price"`
	UniverseID   int64           `json:"universe_id"`
	CharacterID  int64           `json:"character_id"`
}

// EnsureSlug derives the slug from title, device type and price when it is empty.
func (d *Device) EnsureSlug() {
	if d.Slug == "" {
		d.Slug = Slugify(d.Title, d.TypeOfDevice, d.Price.StringFixed(DevicePriceScale))
	}
}

// Validate checks the device against the schema constraints.
func (d *Device) Validate() error {
	if err := checkLength("title", d.Title, 4, 128); err != nil {
		return err
	}
	if err := checkAlpha("title", d.Title); err != nil {
		return err
	}
	if err := checkLength("type_of_device", d.TypeOfDevice, 4, 64); err != nil {
		return err
	}
	if err := checkAlpha("type_of_device", d.TypeOfDevice); err != nil {
		return err
	}
	if err := checkMoney("price", d.Price, DevicePricePrecision, DevicePriceScale); err != nil {
		return err
	}
	if err := checkID("universe_id", d.UniverseID); err != nil {
		return err
	}
	if err := checkID("character_id", d.CharacterID); err != nil {
		return err
	}
	return checkSlug(d.Slug)
}
