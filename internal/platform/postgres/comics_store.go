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

var comicsColumns = []string{"id", "slug", "title", "volume", "date_created", "price", "country"}

// PostgresComicsStore implements the store.ComicsStore interface
// using a PostgreSQL database as the storage backend.
type PostgresComicsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresComicsStore creates a new PostgreSQL implementation of the ComicsStore interface.
func NewPostgresComicsStore(db store.DBTX, logger *slog.Logger) *PostgresComicsStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresComicsStore{
		db:     db,
		logger: logger.With(slog.String("component", "comics_store")),
	}
}

var _ store.ComicsStore = (*PostgresComicsStore)(nil)

func scanComics(row rowScanner) (*domain.Comics, error) {
	var c domain.Comics
	if err := row.Scan(&c.ID, &c.Slug, &c.Title, &c.Volume, &c.DateCreated, &c.Price, &c.Country); err != nil {
		return nil, err
	}
	return &c, nil
}

// List implements store.ComicsStore.List
func (s *PostgresComicsStore) List(ctx context.Context, page store.Page) ([]*domain.Comics, error) {
	b := paginate(psql.Select(comicsColumns...).From("comics"), "id", page)
	return selectMany(ctx, s.db, b, scanComics)
}

// GetByID implements store.ComicsStore.GetByID
func (s *PostgresComicsStore) GetByID(ctx context.Context, id int64) (*domain.Comics, error) {
	b := psql.Select(comicsColumns...).From("comics").Where(sq.Eq{"id": id})
	return selectOne(ctx, s.db, b, scanComics, store.ErrComicsNotFound)
}

// Create implements store.ComicsStore.Create
func (s *PostgresComicsStore) Create(ctx context.Context, c *domain.Comics) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := psql.Insert("comics").
		Columns("slug", "title", "volume", "date_created", "price", "country").
		Values(c.Slug, c.Title, c.Volume, c.DateCreated, c.Price, c.Country)
	if err := insertReturningID(ctx, s.db, b, &c.ID); err != nil {
		log.Error("failed to create comics", slog.Any("error", err), slog.String("title", c.Title))
		return err
	}

	log.Info("comics created", slog.Int64("comics_id", c.ID))
	return nil
}

// Update implements store.ComicsStore.Update
func (s *PostgresComicsStore) Update(ctx context.Context, c *domain.Comics) error {
	b := psql.Update("comics").
		SetMap(map[string]any{
			"slug":         c.Slug,
			"title":        c.Title,
			"volume":       c.Volume,
			"date_created": c.DateCreated,
			"price":        c.Price,
			"country":      c.Country,
		}).
		Where(sq.Eq{"id": c.ID})
	return execWrite(ctx, s.db, b, store.ErrComicsNotFound)
}

// Delete implements store.ComicsStore.Delete
func (s *PostgresComicsStore) Delete(ctx context.Context, id int64) error {
	return execWrite(ctx, s.db, psql.Delete("comics").Where(sq.Eq{"id": id}), store.ErrComicsNotFound)
}

// TitleExists implements store.ComicsStore.TitleExists
func (s *PostgresComicsStore) TitleExists(ctx context.Context, title string, excludeID int64) (bool, error) {
	b := psql.Select("1").From("comics").Where(sq.Eq{"title": title}).Where(notSelf(excludeID))
	return exists(ctx, s.db, b)
}

// ListByAuthor implements store.ComicsStore.ListByAuthor
func (s *PostgresComicsStore) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Comics, error) {
	b := psql.Select(columns("c", comicsColumns)...).
		From("comics c").
		Join("comics_authors ca ON ca.comics_id = c.id").
		Where(sq.Eq{"ca.author_id": authorID}).
		OrderBy("c.id")
	return selectMany(ctx, s.db, b, scanComics)
}

// ListByCharacter implements store.ComicsStore.ListByCharacter
func (s *PostgresComicsStore) ListByCharacter(ctx context.Context, characterID int64) ([]*domain.Comics, error) {
	b := psql.Select(columns("c", comicsColumns)...).
		From("comics c").
		Join("comics_characters cc ON cc.comics_id = c.id").
		Where(sq.Eq{"cc.character_id": characterID}).
		OrderBy("c.id")
	return selectMany(ctx, s.db, b, scanComics)
}

// WithTx implements store.ComicsStore.WithTx
func (s *PostgresComicsStore) WithTx(tx *sql.Tx) store.ComicsStore {
	return &PostgresComicsStore{db: tx, logger: s.logger}
}
