package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/geekshop-api/internal/domain"
)

// DeviceStore defines the interface for device data persistence.
type DeviceStore interface {
	List(ctx context.Context, page Page) ([]*domain.Device, error)
	GetByID(ctx context.Context, id int64) (*domain.Device, error)
	Create(ctx context.Context, device *domain.Device) error
	Update(ctx context.Context, device *domain.Device) error
	Delete(ctx context.Context, id int64) error
	TitleExists(ctx context.Context, title string, excludeID int64) (bool, error)

	ListByUniverse(ctx context.Context, universeID int64) ([]*domain.Device, error)
	ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Device, error)

	WithTx(tx *sql.Tx) DeviceStore
}

// SweetStore defines the interface for sweet data persistence.
type SweetStore interface {
	List(ctx context.Context, page Page) ([]*domain.Sweet, error)
	GetByID(ctx context.Context, id int64) (*domain.Sweet, error)
	Create(ctx context.Context, sweet *domain.Sweet) error
	Update(ctx context.Context, sweet *domain.Sweet) error
	Delete(ctx context.Context, id int64) error
	TitleExists(ctx context.Context, title string, excludeID int64) (bool, error)

	ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Sweet, error)

	WithTx(tx *sql.Tx) SweetStore
}

// ToyStore defines the interface for toy data persistence.
type ToyStore interface {
	List(ctx context.Context, page Page) ([]*domain.Toy, error)
	GetByID(ctx context.Context, id int64) (*domain.Toy, error)
	Create(ctx context.Context, toy *domain.Toy) error
	Update(ctx context.Context, toy *domain.Toy) error
	Delete(ctx context.Context, id int64) error
	TitleExists(ctx context.Context, title string, excludeID int64) (bool, error)

	ListByUniverse(ctx context.Context, universeID int64) ([]*domain.Toy, error)
	ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Toy, error)

	WithTx(tx *sql.Tx) ToyStore
}
