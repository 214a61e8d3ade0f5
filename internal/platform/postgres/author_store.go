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

var authorColumns = []string{"id", "slug", "name", "surname", "birthday"}

// PostgresAuthorStore implements the store.AuthorStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAuthorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAuthorStore creates a new PostgreSQL implementation of the AuthorStore interface.
func NewPostgresAuthorStore(db store.DBTX, logger *slog.Logger) *PostgresAuthorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresAuthorStore{
		db:     db,
		logger: logger.With(slog.String("component", "author_store")),
	}
}

var _ store.AuthorStore = (*PostgresAuthorStore)(nil)

func scanAuthor(row rowScanner) (*domain.Author, error) {
	var a domain.Author
	if err := row.Scan(&a.ID, &a.Slug, &a.Name, &a.Surname, &a.Birthday); err != nil {
		return nil, err
	}
	return &a, nil
}

// List implements store.AuthorStore.List
func (s *PostgresAuthorStore) List(ctx context.Context, page store.Page) ([]*domain.Author, error) {
	b := paginate(psql.Select(authorColumns...).From("authors"), "id", page)
	return selectMany(ctx, s.db, b, scanAuthor)
}

// GetByID implements store.AuthorStore.GetByID
func (s *PostgresAuthorStore) GetByID(ctx context.Context, id int64) (*domain.Author, error) {
	b := psql.Select(authorColumns...).From("authors").Where(sq.Eq{"id": id})
	return selectOne(ctx, s.db, b, scanAuthor, store.ErrAuthorNotFound)
}

// Create implements store.AuthorStore.Create
func (s *PostgresAuthorStore) Create(ctx context.Context, a *domain.Author) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := psql.Insert("authors").
		Columns("slug", "name", "surname", "birthday").
		Values(a.Slug, a.Name, a.Surname, a.Birthday)
	if err := insertReturningID(ctx, s.db, b, &a.ID); err != nil {
		log.Error("failed to create author", slog.Any("error", err))
		return err
	}

	log.Info("author created", slog.Int64("author_id", a.ID))
	return nil
}

// Update implements store.AuthorStore.Update
func (s *PostgresAuthorStore) Update(ctx context.Context, a *domain.Author) error {
	b := psql.Update("authors").
		Set("slug", a.Slug).
		Set("name", a.Name).
		Set("surname", a.Surname).
		Set("birthday", a.Birthday).
		Where(sq.Eq{"id": a.ID})
	return execWrite(ctx, s.db, b, store.ErrAuthorNotFound)
}

// Delete implements store.AuthorStore.Delete
func (s *PostgresAuthorStore) Delete(ctx context.Context, id int64) error {
	if err := execWrite(ctx, s.db, psql.Delete("authors").Where(sq.Eq{"id": id}), store.ErrAuthorNotFound); err != nil {
		return err
	}
	logger.FromContextOrDefault(ctx, s.logger).Info("author deleted", slog.Int64("author_id", id))
	return nil
}

// NameExists implements store.AuthorStore.NameExists
func (s *PostgresAuthorStore) NameExists(ctx context.Context, name, surname string, excludeID int64) (bool, error) {
	b := psql.Select("1").From("authors").
		Where(sq.Eq{"name": name, "surname": surname}).
		Where(notSelf(excludeID))
	return exists(ctx, s.db, b)
}

// ListByComics implements store.AuthorStore.ListByComics
func (s *PostgresAuthorStore) ListByComics(ctx context.Context, comicsID int64) ([]*domain.Author, error) {
	b := psql.Select(columns("a", authorColumns)...).
		From("authors a").
		Join("comics_authors ca ON ca.author_id = a.id").
		Where(sq.Eq{"ca.comics_id": comicsID}).
		OrderBy("a.id")
	return selectMany(ctx, s.db, b, scanAuthor)
}

// WithTx implements store.AuthorStore.WithTx
func (s *PostgresAuthorStore) WithTx(tx *sql.Tx) store.AuthorStore {
	return &PostgresAuthorStore{db: tx, logger: s.logger}
}
