package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
)

// AuthorStore defines the interface for author data persistence. Comics links
// are handled by ComicsAuthorStore; the returned authors have ComicsIDs unset.
type AuthorStore interface {
	List(ctx context.Context, page Page) ([]*domain.Author, error)
	GetByID(ctx context.Context, id int64) (*domain.Author, error)
	Create(ctx context.Context, author *domain.Author) error
	Update(ctx context.Context, author *domain.Author) error
	Delete(ctx context.Context, id int64) error

	// NameExists reports whether another author has the same name and surname.
	NameExists(ctx context.Context, name, surname string, excludeID int64) (bool, error)

	// ListByComics returns the authors linked to a comics.
	ListByComics(ctx context.Context, comicsID int64) ([]*domain.Author, error)

	WithTx(tx *sql.Tx) AuthorStore
}
