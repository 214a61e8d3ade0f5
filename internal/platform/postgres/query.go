package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/phrazzld/geekshop-api/internal/store"
)

// psql builds statements with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type rowScanner interface {
	Scan(dest ...any) error
}

// paginate orders by column and applies the normalized page window.
func paginate(b sq.SelectBuilder, orderBy string, page store.Page) sq.SelectBuilder {
	page = page.Normalize()
	return b.OrderBy(orderBy).Limit(page.Limit).Offset(page.Offset)
}

// selectOne runs b and scans a single row. A missing row yields notFound.
func selectOne[T any](
	ctx context.Context,
	db store.DBTX,
	b sq.SelectBuilder,
	scan func(rowScanner) (*T, error),
	notFound error,
) (*T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	item, err := scan(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound
		}
		return nil, MapError(err)
	}
	return item, nil
}

// selectMany runs b and scans every row. An empty result is an empty, non-nil slice.
func selectMany[T any](
	ctx context.Context,
	db store.DBTX,
	b sq.SelectBuilder,
	scan func(rowScanner) (T, error),
) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}
	return items, nil
}

// insertReturningID runs an INSERT ... RETURNING id and stores the id in dest.
func insertReturningID(ctx context.Context, db store.DBTX, b sq.InsertBuilder, dest *int64) error {
	query, args, err := b.Suffix("RETURNING id").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	if err := db.QueryRowContext(ctx, query, args...).Scan(dest); err != nil {
		return MapError(err)
	}
	return nil
}

// execWrite runs an UPDATE or DELETE and maps an untouched target to notFound.
func execWrite(ctx context.Context, db store.DBTX, b sq.Sqlizer, notFound error) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return MapError(err)
	}
	return CheckRowsAffected(result, notFound)
}

// exists wraps b in SELECT EXISTS (...).
func exists(ctx context.Context, db store.DBTX, b sq.SelectBuilder) (bool, error) {
	query, args, err := b.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}
	var found bool
	if err := db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		return false, MapError(err)
	}
	return found, nil
}

// notSelf excludes the row being updated from uniqueness checks.
func notSelf(excludeID int64) sq.Sqlizer {
	if excludeID <= 0 {
		return sq.Expr("TRUE")
	}
	return sq.NotEq{"id": excludeID}
}

// columns prefixes each column with a table alias.
func columns(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
