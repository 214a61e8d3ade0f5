package domain

import "time"

// Universe is a fictional universe that characters, devices and toys belong to.
type Universe struct {
	ID          int64     `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	DateCreated time.Time `json:"date_created"`
}

// EnsureSlug derives the slug from the title and creation date when it is empty.
func (u *Universe) EnsureSlug() {
	if u.Slug == "" {
		u.Slug = Slugify(u.Title, unixPart(u.DateCreated))
	}
}

// Validate checks the universe against the schema constraints.
func (u *Universe) Validate() error {
	if err := checkLength("title", u.Title, 4, 64); err != nil {
		return err
	}
	if err := checkAlpha("title", u.Title); err != nil {
		return err
	}
	if u.DateCreated.IsZero() {
		return NewValidationError("date_created", "is required", nil)
	}
	return checkSlug(u.Slug)
}
