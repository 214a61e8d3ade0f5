package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/platform/postgres"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComicsAuthorStoreCreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresComicsAuthorStore(db, nil)

	mock.ExpectExec(`INSERT INTO comics_authors \(comics_id,author_id\) VALUES \(\$1,\$2\)`).
		WithArgs(int64(1), int64(2)).
		WillReturnError(newPgError("23505"))

	err := s.Create(context.Background(), domain.ComicsAuthor{ComicsID: 1, AuthorID: 2})
	assert.ErrorIs(t, err, store.ErrLinkExists)
}

func TestComicsAuthorStoreCreateMissingSide(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresComicsAuthorStore(db, nil)

	mock.ExpectExec(`INSERT INTO comics_authors`).
		WillReturnError(newPgError("23503"))

	err := s.Create(context.Background(), domain.ComicsAuthor{ComicsID: 1, AuthorID: 99})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestComicsAuthorStoreDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresComicsAuthorStore(db, nil)

	mock.ExpectExec(`DELETE FROM comics_authors WHERE author_id = \$1 AND comics_id = \$2`).
		WithArgs(int64(2), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.Delete(context.Background(), domain.ComicsAuthor{ComicsID: 1, AuthorID: 2})
	assert.ErrorIs(t, err, store.ErrLinkNotFound)
}

func TestComicsAuthorStoreReplaceForAuthor(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresComicsAuthorStore(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM comics_authors WHERE author_id = \$1`).
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO comics_authors \(comics_id,author_id\) VALUES \(\$1,\$2\),\(\$3,\$4\)`).
		WithArgs(int64(1), int64(7), int64(2), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return s.WithTx(tx).ReplaceForAuthor(ctx, 7, []int64{1, 2, 1})
	})
	require.NoError(t, err)
}

func TestComicsAuthorStoreReplaceWithEmptyList(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresComicsAuthorStore(db, nil)

	mock.ExpectExec(`DELETE FROM comics_authors WHERE comics_id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.ReplaceForComics(context.Background(), 4, nil))
}

func TestComicsAuthorStoreIDs(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresComicsAuthorStore(db, nil)

	mock.ExpectQuery(`SELECT comics_id FROM comics_authors WHERE author_id = \$1 ORDER BY comics_id`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"comics_id"}).AddRow(int64(1)).AddRow(int64(4)))

	ids, err := s.ComicsIDsByAuthor(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, ids)
}

func TestComicsCharacterStoreGet(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresComicsCharacterStore(db, nil)

	mock.ExpectQuery(`SELECT comics_id, character_id FROM comics_characters WHERE character_id = \$1 AND comics_id = \$2`).
		WithArgs(int64(5), int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"comics_id", "character_id"}).AddRow(int64(1), int64(5)))

	link, err := s.Get(context.Background(), domain.ComicsCharacter{ComicsID: 1, CharacterID: 5})
	require.NoError(t, err)
	assert.Equal(t, domain.ComicsCharacter{ComicsID: 1, CharacterID: 5}, link)
}

func TestComicsCharacterStoreGetMissing(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresComicsCharacterStore(db, nil)

	mock.ExpectQuery(`SELECT (.+) FROM comics_characters`).
		WillReturnRows(sqlmock.NewRows([]string{"comics_id", "character_id"}))

	_, err := s.Get(context.Background(), domain.ComicsCharacter{ComicsID: 1, CharacterID: 5})
	assert.ErrorIs(t, err, store.ErrLinkNotFound)
}

func TestComicsCharacterStoreUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresComicsCharacterStore(db, nil)

	mock.ExpectExec(`UPDATE comics_characters SET comics_id = \$1, character_id = \$2 WHERE character_id = \$3 AND comics_id = \$4`).
		WithArgs(int64(2), int64(6), int64(5), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Update(context.Background(),
		domain.ComicsCharacter{ComicsID: 1, CharacterID: 5},
		domain.ComicsCharacter{ComicsID: 2, CharacterID: 6})
	require.NoError(t, err)
}

func TestComicsCharacterStoreUpdateToExistingPair(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresComicsCharacterStore(db, nil)

	mock.ExpectExec(`UPDATE comics_characters`).WillReturnError(newPgError("23505"))

	err := s.Update(context.Background(),
		domain.ComicsCharacter{ComicsID: 1, CharacterID: 5},
		domain.ComicsCharacter{ComicsID: 2, CharacterID: 6})
	assert.ErrorIs(t, err, store.ErrLinkExists)
}
