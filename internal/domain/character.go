package domain

import "time"

// Character is a comics character living in a universe and created by an author.
type Character struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	DateCreated time.Time `json:"date_created"`
	Role        string    `json:"role"`
	Power       string    `json:"power"`
	UniverseID  int64     `json:"universe_id"`
	AuthorID    int64     `json:"author_id"`
}

// EnsureSlug derives the slug from the name and creation date when it is empty.
func (c *Character) EnsureSlug() {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name, unixPart(c.DateCreated))
	}
}

// Validate checks the character against the schema constraints.
func (c *Character) Validate() error {
	if err := checkLength("name", c.Name, 2, 64); err != nil {
		return err
	}
	if err := checkAlpha("name", c.Name); err != nil {
		return err
	}
	if c.DateCreated.IsZero() {
		return NewValidationError("date_created", "is required", nil)
	}
	if err := checkLength("role", c.Role, 4, 64); err != nil {
		return err
	}
	if err := checkAlpha("role", c.Role); err != nil {
		return err
	}
	if err := checkLength("power", c.Power, 4, 128); err != nil {
		return err
	}
	if err := checkAlpha("power", c.Power); err != nil {
		return err
	}
	if err := checkID("universe_id", c.UniverseID); err != nil {
		return err
	}
	if err := checkID("author_id", c.AuthorID); err != nil {
		return err
	}
	return checkSlug(c.Slug)
}
