package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
)

// CharacterStore defines the interface for character data persistence.
type CharacterStore interface {
	List(ctx context.Context, page Page) ([]*domain.Character, error)
	GetByID(ctx context.Context, id int64) (*domain.Character, error)
	Create(ctx context.Context, character *domain.Character) error
	Update(ctx context.Context, character *domain.Character) error
	Delete(ctx context.Context, id int64) error

	ListByUniverse(ctx context.Context, universeID int64) ([]*domain.Character, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Character, error)
	ListByComics(ctx context.Context, comicsID int64) ([]*domain.Character, error)

	WithTx(tx *sql.Tx) CharacterStore
}
