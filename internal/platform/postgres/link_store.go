package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/platform/logger"
	"github.com/phrazzld/geekshop-api/internal/store"
)

// PostgresComicsAuthorStore implements store.ComicsAuthorStore on the
// comics_authors join table.
type PostgresComicsAuthorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresComicsAuthorStore creates a new PostgresComicsAuthorStore.
func NewPostgresComicsAuthorStore(db store.DBTX, logger *slog.Logger) *PostgresComicsAuthorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresComicsAuthorStore{db: db, logger: newComponentLogger(logger, "comics_author_store")}
}

var _ store.ComicsAuthorStore = (*PostgresComicsAuthorStore)(nil)

func scanComicsAuthor(row rowScanner) (domain.ComicsAuthor, error) {
	var l domain.ComicsAuthor
	err := row.Scan(&l.ComicsID, &l.AuthorID)
	return l, err
}

func scanID(row rowScanner) (int64, error) {
	var id int64
	err := row.Scan(&id)
	return id, err
}

// List implements store.ComicsAuthorStore.List
func (s *PostgresComicsAuthorStore) List(ctx context.Context, page store.Page) ([]domain.ComicsAuthor, error) {
	b := paginate(psql.Select("comics_id", "author_id").From("comics_authors"), "comics_id, author_id", page)
	return selectMany(ctx, s.db, b, scanComicsAuthor)
}

// Create implements store.ComicsAuthorStore.Create
func (s *PostgresComicsAuthorStore) Create(ctx context.Context, link domain.ComicsAuthor) error {
	query, args, err := psql.Insert("comics_authors").
		Columns("comics_id", "author_id").
		Values(link.ComicsID, link.AuthorID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return MapUniqueViolation(err, store.ErrLinkExists)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("comics linked to author",
		slog.Int64("comics_id", link.ComicsID),
		slog.Int64("author_id", link.AuthorID))
	return nil
}

// Delete implements store.ComicsAuthorStore.Delete
func (s *PostgresComicsAuthorStore) Delete(ctx context.Context, link domain.ComicsAuthor) error {
	b := psql.Delete("comics_authors").Where(sq.Eq{"comics_id": link.ComicsID, "author_id": link.AuthorID})
	return execWrite(ctx, s.db, b, store.ErrLinkNotFound)
}

// ComicsIDsByAuthor implements store.ComicsAuthorStore.ComicsIDsByAuthor
func (s *PostgresComicsAuthorStore) ComicsIDsByAuthor(ctx context.Context, authorID int64) ([]int64, error) {
	b := psql.Select("comics_id").From("comics_authors").Where(sq.Eq{"author_id": authorID}).OrderBy("comics_id")
	return selectMany(ctx, s.db, b, scanID)
}

// AuthorIDsByComics implements store.ComicsAuthorStore.AuthorIDsByComics
func (s *PostgresComicsAuthorStore) AuthorIDsByComics(ctx context.Context, comicsID int64) ([]int64, error) {
	b := psql.Select("author_id").From("comics_authors").Where(sq.Eq{"comics_id": comicsID}).OrderBy("author_id")
	return selectMany(ctx, s.db, b, scanID)
}

// ReplaceForAuthor implements store.ComicsAuthorStore.ReplaceForAuthor
// It must run inside a transaction for the replacement to be atomic.
func (s *PostgresComicsAuthorStore) ReplaceForAuthor(ctx context.Context, authorID int64, comicsIDs []int64) error {
	pairs := make([][2]int64, 0, len(comicsIDs))
	for _, id := range dedupe(comicsIDs) {
		pairs = append(pairs, [2]int64{id, authorID})
	}
	return replaceLinks(ctx, s.db, "comics_authors", []string{"comics_id", "author_id"},
		sq.Eq{"author_id": authorID}, pairs)
}

// ReplaceForComics implements store.ComicsAuthorStore.ReplaceForComics
func (s *PostgresComicsAuthorStore) ReplaceForComics(ctx context.Context, comicsID int64, authorIDs []int64) error {
	pairs := make([][2]int64, 0, len(authorIDs))
	for _, id := range dedupe(authorIDs) {
		pairs = append(pairs, [2]int64{comicsID, id})
	}
	return replaceLinks(ctx, s.db, "comics_authors", []string{"comics_id", "author_id"},
		sq.Eq{"comics_id": comicsID}, pairs)
}

// WithTx implements store.ComicsAuthorStore.WithTx
func (s *PostgresComicsAuthorStore) WithTx(tx *sql.Tx) store.ComicsAuthorStore {
	return &PostgresComicsAuthorStore{db: tx, logger: s.logger}
}

// PostgresComicsCharacterStore implements store.ComicsCharacterStore on the
// comics_characters join table.
type PostgresComicsCharacterStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresComicsCharacterStore creates a new PostgresComicsCharacterStore.
func NewPostgresComicsCharacterStore(db store.DBTX, logger *slog.Logger) *PostgresComicsCharacterStore {
	if db == nil {
		panic("db cannot be nil")
	}
	return &PostgresComicsCharacterStore{db: db, logger: newComponentLogger(logger, "comics_character_store")}
}

var _ store.ComicsCharacterStore = (*PostgresComicsCharacterStore)(nil)

func scanComicsCharacter(row rowScanner) (domain.ComicsCharacter, error) {
	var l domain.ComicsCharacter
	err := row.Scan(&l.ComicsID, &l.CharacterID)
	return l, err
}

// List implements store.ComicsCharacterStore.List
func (s *PostgresComicsCharacterStore) List(ctx context.Context, page store.Page) ([]domain.ComicsCharacter, error) {
	b := paginate(psql.Select("comics_id", "character_id").From("comics_characters"), "comics_id, character_id", page)
	return selectMany(ctx, s.db, b, scanComicsCharacter)
}

// Get implements store.ComicsCharacterStore.Get
func (s *PostgresComicsCharacterStore) Get(ctx context.Context, link domain.ComicsCharacter) (domain.ComicsCharacter, error) {
	b := psql.Select("comics_id", "character_id").
		From("comics_characters").
		Where(sq.Eq{"comics_id": link.ComicsID, "character_id": link.CharacterID})
	found, err := selectOne(ctx, s.db, b, func(row rowScanner) (*domain.ComicsCharacter, error) {
		l, err := scanComicsCharacter(row)
		return &l, err
	}, store.ErrLinkNotFound)
	if err != nil {
		return domain.ComicsCharacter{}, err
	}
	return *found, nil
}

// Create implements store.ComicsCharacterStore.Create
func (s *PostgresComicsCharacterStore) Create(ctx context.Context, link domain.ComicsCharacter) error {
	query, args, err := psql.Insert("comics_characters").
		Columns("comics_id", "character_id").
		Values(link.ComicsID, link.CharacterID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return MapUniqueViolation(err, store.ErrLinkExists)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("comics linked to character",
		slog.Int64("comics_id", link.ComicsID),
		slog.Int64("character_id", link.CharacterID))
	return nil
}

// Update implements store.ComicsCharacterStore.Update
func (s *PostgresComicsCharacterStore) Update(ctx context.Context, from, to domain.ComicsCharacter) error {
	query, args, err := psql.Update("comics_characters").
		Set("comics_id", to.ComicsID).
		Set("character_id", to.CharacterID).
		Where(sq.Eq{"comics_id": from.ComicsID, "character_id": from.CharacterID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return MapUniqueViolation(err, store.ErrLinkExists)
	}
	return CheckRowsAffected(result, store.ErrLinkNotFound)
}

// Delete implements store.ComicsCharacterStore.Delete
func (s *PostgresComicsCharacterStore) Delete(ctx context.Context, link domain.ComicsCharacter) error {
	b := psql.Delete("comics_characters").Where(sq.Eq{"comics_id": link.ComicsID, "character_id": link.CharacterID})
	return execWrite(ctx, s.db, b, store.ErrLinkNotFound)
}

// CharacterIDsByComics implements store.ComicsCharacterStore.CharacterIDsByComics
func (s *PostgresComicsCharacterStore) CharacterIDsByComics(ctx context.Context, comicsID int64) ([]int64, error) {
	b := psql.Select("character_id").From("comics_characters").Where(sq.Eq{"comics_id": comicsID}).OrderBy("character_id")
	return selectMany(ctx, s.db, b, scanID)
}

// ReplaceForComics implements store.ComicsCharacterStore.ReplaceForComics
func (s *PostgresComicsCharacterStore) ReplaceForComics(ctx context.Context, comicsID int64, characterIDs []int64) error {
	pairs := make([][2]int64, 0, len(characterIDs))
	for _, id := range dedupe(characterIDs) {
		pairs = append(pairs, [2]int64{comicsID, id})
	}
	return replaceLinks(ctx, s.db, "comics_characters", []string{"comics_id", "character_id"},
		sq.Eq{"comics_id": comicsID}, pairs)
}

// WithTx implements store.ComicsCharacterStore.WithTx
func (s *PostgresComicsCharacterStore) WithTx(tx *sql.Tx) store.ComicsCharacterStore {
	return &PostgresComicsCharacterStore{db: tx, logger: s.logger}
}

// replaceLinks deletes the rows matching owner and inserts pairs in one statement.
func replaceLinks(
	ctx context.Context,
	db store.DBTX,
	table string,
	cols []string,
	owner sq.Eq,
	pairs [][2]int64,
) error {
	query, args, err := psql.Delete(table).Where(owner).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return MapError(err)
	}

	if len(pairs) == 0 {
		return nil
	}

	insert := psql.Insert(table).Columns(cols...)
	for _, p := range pairs {
		insert = insert.Values(p[0], p[1])
	}
	query, args, err = insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return MapError(err)
	}
	return nil
}

// dedupe drops repeated ids, keeping first occurrences in order.
func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
