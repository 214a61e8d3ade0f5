package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	"github.com/phrazzld/geekshop-api/internal/platform/postgres"
)

// runMigrations runs one goose command against db.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	if !slices.Contains(postgres.MigrationCommands, command) {
		return fmt.Errorf("unknown migration command %q (expected one of %v)", command, postgres.MigrationCommands)
	}
	logger.Info("executing migrations", slog.String("command", command))
	return postgres.Migrate(ctx, db, command, logger)
}
