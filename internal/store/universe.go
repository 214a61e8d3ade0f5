package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
)

// UniverseStore defines the interface for universe data persistence.
type UniverseStore interface {
	List(ctx context.Context, page Page) ([]*domain.Universe, error)

	// GetByID returns ErrUniverseNotFound if the universe does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Universe, error)

	// Create inserts the universe and sets its ID.
	Create(ctx context.Context, universe *domain.Universe) error

	// Update returns ErrUniverseNotFound if no row matched.
	Update(ctx context.Context, universe *domain.Universe) error

	// Delete removes the universe; the database cascades to its characters,
	// devices and toys.
	Delete(ctx context.Context, id int64) error

	// TitleExists reports whether another universe (id != excludeID) has title.
	TitleExists(ctx context.Context, title string, excludeID int64) (bool, error)

	WithTx(tx *sql.Tx) UniverseStore
}
