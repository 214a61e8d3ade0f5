package store

import (
	"context"
	"database/sql"
)

// DBTX is an interface that abstracts the database access layer.
// It is implemented by both *sql.DB and *sql.Tx, allowing our code
// to work with either a database connection or a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DefaultPageLimit is used when a list request does not set a limit.
const DefaultPageLimit = 100

// MaxPageLimit caps the number of rows a single list call returns.
const MaxPageLimit = 1000

// Page selects a window of rows from a list ordered by id.
type Page struct {
	Limit  uint64
	Offset uint64
}

// Normalize applies the default and maximum limits.
func (p Page) Normalize() Page {
	if p.Limit == 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
