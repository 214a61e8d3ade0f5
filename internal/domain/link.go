package domain

// ComicsAuthor links a comics to one of its authors.
type ComicsAuthor struct {
	ComicsID int64 `json:"comics_id"`
	AuthorID int64 `json:"author_id"`
}

// Validate checks that both sides of the link are set.
func (l ComicsAuthor) Validate() error {
	if err := checkID("comics_id", l.ComicsID); err != nil {
		return err
	}
	return checkID("author_id", l.AuthorID)
}

// ComicsCharacter links a comics to a character appearing in it.
type ComicsCharacter struct {
	ComicsID    int64 `json:"comics_id"`
	CharacterID int64 `json:"character_id"`
}

// Validate checks that both sides of the link are set.
func (l ComicsCharacter) Validate() error {
	if err := checkID("comics_id", l.ComicsID); err != nil {
		return err
	}
	return checkID("character_id", l.CharacterID)
}
