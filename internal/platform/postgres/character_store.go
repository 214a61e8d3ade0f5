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

var characterColumns = []string{"id", "slug", "name", "date_created", "role", "power", "universe_id", "author_id"}

// PostgresCharacterStore implements the store.CharacterStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCharacterStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCharacterStore creates a new PostgreSQL implementation of the CharacterStore interface.
func NewPostgresCharacterStore(db store.DBTX, logger *slog.Logger) *PostgresCharacterStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCharacterStore{
		db:     db,
		logger: logger.With(slog.String("component", "character_store")),
	}
}

var _ store.CharacterStore = (*PostgresCharacterStore)(nil)

func scanCharacter(row rowScanner) (*domain.Character, error) {
	var c domain.Character
	err := row.Scan(&c.ID, &c.Slug, &c.Name, &c.DateCreated, &c.Role, &c.Power, &c.UniverseID, &c.AuthorID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List implements store.CharacterStore.List
func (s *PostgresCharacterStore) List(ctx context.Context, page store.Page) ([]*domain.Character, error) {
	b := paginate(psql.Select(characterColumns...).From("characters"), "id", page)
	return selectMany(ctx, s.db, b, scanCharacter)
}

// GetByID implements store.CharacterStore.GetByID
func (s *PostgresCharacterStore) GetByID(ctx context.Context, id int64) (*domain.Character, error) {
	b := psql.Select(characterColumns...).From("characters").Where(sq.Eq{"id": id})
	return selectOne(ctx, s.db, b, scanCharacter, store.ErrCharacterNotFound)
}

// Create implements store.CharacterStore.Create
// Returns store.ErrInvalidEntity when the universe or author does not exist.
func (s *PostgresCharacterStore) Create(ctx context.Context, c *domain.Character) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := psql.Insert("characters").
		Columns("slug", "name", "date_created", "role", "power", "universe_id", "author_id").
		Values(c.Slug, c.Name, c.DateCreated, c.Role, c.Power, c.UniverseID, c.AuthorID)
	if err := insertReturningID(ctx, s.db, b, &c.ID); err != nil {
		log.Warn("failed to create character",
			slog.Any("error", err),
			slog.Int64("universe_id", c.UniverseID),
			slog.Int64("author_id", c.AuthorID))
		return err
	}

	log.Info("character created", slog.Int64("character_id", c.ID))
	return nil
}

// Update implements store.CharacterStore.Update
func (s *PostgresCharacterStore) Update(ctx context.Context, c *domain.Character) error {
	b := psql.Update("characters").
		SetMap(map[string]any{
			"slug":         c.Slug,
			"name":         c.Name,
			"date_created": c.DateCreated,
			"role":         c.Role,
			"power":        c.Power,
			"universe_id":  c.UniverseID,
			"author_id":    c.AuthorID,
		}).
		Where(sq.Eq{"id": c.ID})
	return execWrite(ctx, s.db, b, store.ErrCharacterNotFound)
}

// Delete implements store.CharacterStore.Delete
func (s *PostgresCharacterStore) Delete(ctx context.Context, id int64) error {
	return execWrite(ctx, s.db, psql.Delete("characters").Where(sq.Eq{"id": id}), store.ErrCharacterNotFound)
}

// ListByUniverse implements store.CharacterStore.ListByUniverse
func (s *PostgresCharacterStore) ListByUniverse(ctx context.Context, universeID int64) ([]*domain.Character, error) {
	b := psql.Select(characterColumns...).From("characters").Where(sq.Eq{"universe_id": universeID}).OrderBy("id")
	return selectMany(ctx, s.db, b, scanCharacter)
}

// ListByAuthor implements store.CharacterStore.ListByAuthor
func (s *PostgresCharacterStore) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Character, error) {
	b := psql.Select(characterColumns...).From("characters").Where(sq.Eq{"author_id": authorID}).OrderBy("id")
	return selectMany(ctx, s.db, b, scanCharacter)
}

// ListByComics implements store.CharacterStore.ListByComics
func (s *PostgresCharacterStore) ListByComics(ctx context.Context, comicsID int64) ([]*domain.Character, error) {
	b := psql.Select(columns("c", characterColumns)...).
		From("characters c").
		Join("comics_characters cc ON cc.character_id = c.id").
		Where(sq.Eq{"cc.comics_id": comicsID}).
		OrderBy("c.id")
	return selectMany(ctx, s.db, b, scanCharacter)
}

// WithTx implements store.CharacterStore.WithTx
func (s *PostgresCharacterStore) WithTx(tx *sql.Tx) store.CharacterStore {
	return &PostgresCharacterStore{db: tx, logger: s.logger}
}
