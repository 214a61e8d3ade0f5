// Package main runs the geek shop API server. With -migrate it applies the
// given migration command and exits instead of serving.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/geekshop-api/internal/redact"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, reset, status, version) and exit")
	verbose := flag.Bool("verbose", false, "log at debug level regardless of configuration")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd, *verbose); err != nil {
		slog.Error("geekshop-api exited with error", slog.String("error", redact.Error(err)))
		stop()
		os.Exit(1)
	}
}

// run loads configuration, connects to the database and then either runs a
// migration command or serves HTTP until ctx is canceled.
func run(ctx context.Context, migrateCmd string, verbose bool) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}
	if verbose {
		cfg.Server.LogLevel = "debug"
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer closeDB(db, logger)
		return runMigrations(ctx, db, migrateCmd, logger)
	}

	if cfg.Database.AutoMigrate {
		if err := runMigrations(ctx, db, "up", logger); err != nil {
			closeDB(db, logger)
			return fmt.Errorf("auto migration failed: %w", err)
		}
	}

	app, err := newApplication(cfg, logger, db)
	if err != nil {
		closeDB(db, logger)
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return app.Run(ctx)
}
