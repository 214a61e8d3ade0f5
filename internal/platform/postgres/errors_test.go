package postgres_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/geekshop-api/internal/platform/postgres"
	"github.com/phrazzld/geekshop-api/internal/store"
	"github.com/stretchr/testify/assert"
)

// Mock PgError creation helper
func newPgError(code string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           code,
		Message:        "error message",
		Detail:         "error details",
		SchemaName:     "public",
		TableName:      "characters",
		ColumnName:     "universe_id",
		ConstraintName: "characters_universe_id_fkey",
	}
}

// MockResult implements sql.Result for testing
type MockResult struct {
	rowsAffected int64
	err          error
}

func (m MockResult) LastInsertId() (int64, error) {
	return 0, m.err
}

func (m MockResult) RowsAffected() (int64, error) {
	return m.rowsAffected, m.err
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.False(t, postgres.IsUniqueViolation(nil))
	assert.False(t, postgres.IsUniqueViolation(errors.New("generic error")))
	assert.True(t, postgres.IsUniqueViolation(newPgError("23505")))
	assert.True(t, postgres.IsUniqueViolation(fmt.Errorf("wrapped: %w", newPgError("23505"))))
	assert.False(t, postgres.IsUniqueViolation(newPgError("23503")))
}

func TestIsForeignKeyViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, postgres.IsForeignKeyViolation(newPgError("23503")))
	assert.False(t, postgres.IsForeignKeyViolation(newPgError("23505")))
	assert.False(t, postgres.IsForeignKeyViolation(sql.ErrNoRows))
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   sql.Result
		notFound error
		wantErr  error
		wantMsg  string
	}{
		{name: "one row", result: MockResult{rowsAffected: 1}},
		{name: "no rows generic", result: MockResult{}, wantErr: store.ErrNotFound},
		{name: "no rows specific", result: MockResult{}, notFound: store.ErrToyNotFound, wantErr: store.ErrToyNotFound},
		{name: "nil result", result: nil, wantMsg: "nil result"},
		{name: "rows affected error", result: MockResult{err: errors.New("driver")}, wantMsg: "failed to get rows affected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := postgres.CheckRowsAffected(tt.result, tt.notFound)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantMsg != "":
				assert.ErrorContains(t, err, tt.wantMsg)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "no rows", err: sql.ErrNoRows, want: store.ErrNotFound},
		{name: "unique", err: newPgError("23505"), want: store.ErrDuplicate},
		{name: "foreign key", err: newPgError("23503"), want: store.ErrInvalidEntity},
		{name: "check", err: newPgError("23514"), want: store.ErrInvalidEntity},
		{name: "not null", err: newPgError("23502"), want: store.ErrInvalidEntity},
		{name: "numeric out of range", err: newPgError("22003"), want: store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, postgres.MapError(tt.err), tt.want)
		})
	}

	assert.NoError(t, postgres.MapError(nil))

	other := errors.New("connection reset")
	assert.Same(t, other, postgres.MapError(other))

	unmapped := newPgError("42P01")
	assert.Equal(t, unmapped, postgres.MapError(unmapped))
}

func TestMapUniqueViolation(t *testing.T) {
	t.Parallel()

	err := postgres.MapUniqueViolation(newPgError("23505"), store.ErrEmailExists)
	assert.ErrorIs(t, err, store.ErrEmailExists)
	assert.ErrorIs(t, err, store.ErrDuplicate)

	err = postgres.MapUniqueViolation(newPgError("23503"), store.ErrEmailExists)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.NotErrorIs(t, err, store.ErrEmailExists)
}
