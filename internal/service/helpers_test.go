package service_test

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/geekshop-api/internal/domain"
)

var (
	testLogger = slog.New(slog.DiscardHandler)
	marvelDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
)

// newTxDB returns a sqlmock-backed *sql.DB for services that open transactions.
func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func expectCommit(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

func expectRollback(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectRollback()
}

func validUniverse() *domain.Universe {
	return &domain.Universe{Title: "Marvel", DateCreated: marvelDate}
}

func validAuthor() *domain.Author {
	return &domain.Author{Name: "Stan", Surname: "Lee", Birthday: time.Date(1922, 12, 28, 0, 0, 0, 0, time.UTC)}
}

func validCharacter() *domain.Character {
	return &domain.Character{
		Name:        "Iron Man",
		DateCreated: marvelDate,
		Role:        "Hero",
		Power:       "Powered armor",
		UniverseID:  1,
		AuthorID:    1,
	}
}

func validComics() *domain.Comics {
	return &domain.Comics{
		Title:       "Tales of Suspense",
		Volume:      39,
		DateCreated: marvelDate,
		Price:       decimal.RequireFromString("12.50"),
		Country:     "United States",
	}
}

func validSweet() *domain.Sweet {
	return &domain.Sweet{
		Title:       "Hulk Candy",
		Price:       decimal.RequireFromString("12.50"),
		Weight:      100,
		CharacterID: 2,
	}
}
