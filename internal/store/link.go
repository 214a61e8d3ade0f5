package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
)

// ComicsAuthorStore persists rows of the comics_authors join table.
type ComicsAuthorStore interface {
	List(ctx context.Context, page Page) ([]domain.ComicsAuthor, error)

	// Create returns ErrLinkExists for an existing pair and ErrInvalidEntity
	// when either side does not exist.
	Create(ctx context.Context, link domain.ComicsAuthor) error

	// Delete returns ErrLinkNotFound if the pair is not linked.
	Delete(ctx context.Context, link domain.ComicsAuthor) error

	ComicsIDsByAuthor(ctx context.Context, authorID int64) ([]int64, error)
	AuthorIDsByComics(ctx context.Context, comicsID int64) ([]int64, error)

	// ReplaceForAuthor makes comicsIDs the exact set of comics linked to the author.
	ReplaceForAuthor(ctx context.Context, authorID int64, comicsIDs []int64) error
	// ReplaceForComics makes authorIDs the exact set of authors linked to the comics.
	ReplaceForComics(ctx context.Context, comicsID int64, authorIDs []int64) error

	WithTx(tx *sql.Tx) ComicsAuthorStore
}

// ComicsCharacterStore persists rows of the comics_characters join table.
type ComicsCharacterStore interface {
	List(ctx context.Context, page Page) ([]domain.ComicsCharacter, error)

	// Get returns ErrLinkNotFound if the pair is not linked.
	Get(ctx context.Context, link domain.ComicsCharacter) (domain.ComicsCharacter, error)
	Create(ctx context.Context, link domain.ComicsCharacter) error

	// Update re-points the link identified by from to the pair in to.
	Update(ctx context.Context, from, to domain.ComicsCharacter) error
	Delete(ctx context.Context, link domain.ComicsCharacter) error

	CharacterIDsByComics(ctx context.Context, comicsID int64) ([]int64, error)

	// ReplaceForComics makes characterIDs the exact set of characters linked to the comics.
	ReplaceForComics(ctx context.Context, comicsID int64, characterIDs []int64) error

	WithTx(tx *sql.Tx) ComicsCharacterStore
}
