package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
)

// ComicsStore defines the interface for comics data persistence. Author and
// character links are handled by the link stores.
type ComicsStore interface {
	List(ctx context.Context, page Page) ([]*domain.Comics, error)
	GetByID(ctx context.Context, id int64) (*domain.Comics, error)
	Create(ctx context.Context, comics *domain.Comics) error
	Update(ctx context.Context, comics *domain.Comics) error
	Delete(ctx context.Context, id int64) error
	TitleExists(ctx context.Context, title string, excludeID int64) (bool, error)

	ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Comics, error)
	ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Comics, error)

	WithTx(tx *sql.Tx) ComicsStore
}
