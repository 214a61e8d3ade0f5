package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/platform/logger"
	"github.com/phrazzld/geekshop-api/internal/store"
)

var universeColumns = []string{"id", "slug", "title", "date_created"}

// PostgresUniverseStore implements the store.UniverseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUniverseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUniverseStore creates a new PostgreSQL implementation of the UniverseStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresUniverseStore(db store.DBTX, logger *slog.Logger) *PostgresUniverseStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresUniverseStore{
		db:     db,
		logger: logger.With(slog.String("component", "universe_store")),
	}
}

// Ensure PostgresUniverseStore implements store.UniverseStore interface
var _ store.UniverseStore = (*PostgresUniverseStore)(nil)

func scanUniverse(row rowScanner) (*domain.Universe, error) {
	var u domain.Universe
	if err := row.Scan(&u.ID, &u.Slug, &u.Title, &u.DateCreated); err != nil {
		return nil, err
	}
	return &u, nil
}

// List implements store.UniverseStore.List
func (s *PostgresUniverseStore) List(ctx context.Context, page store.Page) ([]*domain.Universe, error) {
	b := paginate(psql.Select(universeColumns...).From("universes"), "id", page)
	return selectMany(ctx, s.db, b, scanUniverse)
}

// GetByID implements store.UniverseStore.GetByID
// Returns store.ErrUniverseNotFound if the universe does not exist.
func (s *PostgresUniverseStore) GetByID(ctx context.Context, id int64) (*domain.Universe, error) {
	b := psql.Select(universeColumns...).From("universes").Where(sq.Eq{"id": id})
	return selectOne(ctx, s.db, b, scanUniverse, store.ErrUniverseNotFound)
}

// Create implements store.UniverseStore.Create
func (s *PostgresUniverseStore) Create(ctx context.Context, u *domain.Universe) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := psql.Insert("universes").
		Columns("slug", "title", "date_created").
		Values(u.Slug, u.Title, u.DateCreated)
	if err := insertReturningID(ctx, s.db, b, &u.ID); err != nil {
		log.Error("failed to create universe", slog.Any("error", err), slog.String("title", u.Title))
		return err
	}

	log.Info("universe created", slog.Int64("universe_id", u.ID))
	return nil
}

// Update implements store.UniverseStore.Update
// Returns store.ErrUniverseNotFound if the universe does not exist.
func (s *PostgresUniverseStore) Update(ctx context.Context, u *domain.Universe) error {
	b := psql.Update("universes").
		Set("slug", u.Slug).
		Set("title", u.Title).
		Set("date_created", u.DateCreated).
		Where(sq.Eq{"id": u.ID})
	if err := execWrite(ctx, s.db, b, store.ErrUniverseNotFound); err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("universe updated", slog.Int64("universe_id", u.ID))
	return nil
}

// Delete implements store.UniverseStore.Delete
// Returns store.ErrUniverseNotFound if the universe does not exist.
func (s *PostgresUniverseStore) Delete(ctx context.Context, id int64) error {
	b := psql.Delete("universes").Where(sq.Eq{"id": id})
	if err := execWrite(ctx, s.db, b, store.ErrUniverseNotFound); err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("universe deleted", slog.Int64("universe_id", id))
	return nil
}

// TitleExists implements store.UniverseStore.TitleExists
func (s *PostgresUniverseStore) TitleExists(ctx context.Context, title string, excludeID int64) (bool, error) {
	b := psql.Select("1").From("universes").Where(sq.Eq{"title": title}).Where(notSelf(excludeID))
	return exists(ctx, s.db, b)
}

// WithTx implements store.UniverseStore.WithTx
func (s *PostgresUniverseStore) WithTx(tx *sql.Tx) store.UniverseStore {
	return &PostgresUniverseStore{db: tx, logger: s.logger}
}
