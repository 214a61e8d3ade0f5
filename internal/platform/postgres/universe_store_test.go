package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/geekshop-api/internal/domain"
	"github.com/phrazzld/geekshop-api/internal/platform/logger"
	"github.com/phrazzld/geekshop-api/internal/platform/postgres"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func newUniverseStore(t *testing.T) (*postgres.PostgresUniverseStore, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	l, _ := logger.GetTestLogger(t)
	return postgres.NewPostgresUniverseStore(db, l), mock
}

var marvelDate = time.Date(1939, 10, 1, 0, 0, 0, 0, time.UTC)

func TestNewPostgresUniverseStorePanicsOnNilDB(t *testing.T) {
	assert.Panics(t, func() { postgres.NewPostgresUniverseStore(nil, nil) })
}

func TestUniverseStoreGetByID(t *testing.T) {
	s, mock := newUniverseStore(t)

	mock.ExpectQuery(`SELECT id, slug, title, date_created FROM universes WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title", "date_created"}).
			AddRow(int64(1), "marvel--955670400", "Marvel", marvelDate))

	u, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Marvel", u.Title)
	assert.True(t, marvelDate.Equal(u.DateCreated))
}

func TestUniverseStoreGetByIDNotFound(t *testing.T) {
	s, mock := newUniverseStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM universes WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrUniverseNotFound)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestUniverseStoreList(t *testing.T) {
	s, mock := newUniverseStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM universes ORDER BY id LIMIT 2 OFFSET 1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title", "date_created"}).
			AddRow(int64(2), "dc-comics-1", "DC Comics", marvelDate).
			AddRow(int64(3), "image-comics-1", "Image Comics", marvelDate))

	items, err := s.List(context.Background(), store.Page{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Image Comics", items[1].Title)
}

func TestUniverseStoreListEmpty(t *testing.T) {
	s, mock := newUniverseStore(t)

	mock.ExpectQuery(`SELECT (.+) FROM universes ORDER BY id LIMIT 100 OFFSET 0`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "slug", "title", "date_created"}))

	items, err := s.List(context.Background(), store.Page{})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestUniverseStoreCreate(t *testing.T) {
	s, mock := newUniverseStore(t)
	u := &domain.Universe{Slug: "marvel-1", Title: "Marvel", DateCreated: marvelDate}

	mock.ExpectQuery(`INSERT INTO universes \(slug,title,date_created\) VALUES \(\$1,\$2,\$3\) RETURNING id`).
		WithArgs("marvel-1", "Marvel", marvelDate).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	require.NoError(t, s.Create(context.Background(), u))
	assert.Equal(t, int64(5), u.ID)
}

func TestUniverseStoreCreateDuplicate(t *testing.T) {
	s, mock := newUniverseStore(t)
	u := &domain.Universe{Slug: "marvel-1", Title: "Marvel", DateCreated: marvelDate}

	mock.ExpectQuery(`INSERT INTO universes`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "universes_title_key"})

	err := s.Create(context.Background(), u)
	assert.ErrorIs(t, err, store.ErrDuplicate)
}

func TestUniverseStoreUpdate(t *testing.T) {
	s, mock := newUniverseStore(t)
	u := &domain.Universe{ID: 3, Slug: "marvel-1", Title: "Marvel", DateCreated: marvelDate}

	mock.ExpectExec(`UPDATE universes SET slug = \$1, title = \$2, date_created = \$3 WHERE id = \$4`).
		WithArgs("marvel-1", "Marvel", marvelDate, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, s.Update(context.Background(), u))
}

func TestUniverseStoreDeleteMissing(t *testing.T) {
	s, mock := newUniverseStore(t)

	mock.ExpectExec(`DELETE FROM universes WHERE id = \$1`).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, s.Delete(context.Background(), 9), store.ErrUniverseNotFound)
}

func TestUniverseStoreTitleExists(t *testing.T) {
	s, mock := newUniverseStore(t)

	mock.ExpectQuery(`SELECT EXISTS \( SELECT 1 FROM universes WHERE title = \$1 AND id <> \$2 \)`).
		WithArgs("Marvel", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	found, err := s.TitleExists(context.Background(), "Marvel", 3)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestUniverseStoreWithTx(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUniverseStore(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM universes WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	require.NoError(t, s.WithTx(tx).Delete(context.Background(), 1))
	require.NoError(t, tx.Commit())
}

func TestUniverseStoreQueryError(t *testing.T) {
	s, mock := newUniverseStore(t)
	boom := errors.New("connection refused")

	mock.ExpectQuery(`SELECT (.+) FROM universes`).WillReturnError(boom)

	_, err := s.List(context.Background(), store.Page{})
	assert.ErrorIs(t, err, boom)
}
