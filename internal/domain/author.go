package domain

import "time"

// Author is a comics author. ComicsIDs lists the comics the author is linked to.
type Author struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Birthday  time.Time `json:"birthday"`
	ComicsIDs []int64   `json:"comics"`
}

// EnsureSlug derives the slug from the full name and birthday when it is empty.
func (a *Author) EnsureSlug() {
	if a.Slug == "" {
		a.Slug = Slugify(a.Name, a.Surname, unixPart(a.Birthday))
	}
}

// Validate checks the author against the schema constraints.
func (a *Author) Validate() error {
	for _, f := range []struct{ name, value string }{
		{"name", a.Name},
		{"surname", a.Surname},
	} {
		if err := checkLength(f.name, f.value, 4, 64); err != nil {
			return err
		}
		if err := checkAlpha(f.name, f.value); err != nil {
			return err
		}
	}
	if a.Birthday.IsZero() {
		return NewValidationError("birthday", "is required", nil)
	}
	for _, id := range a.ComicsIDs {
		if err := checkID("comics", id); err != nil {
			return err
		}
	}
	return checkSlug(a.Slug)
}
