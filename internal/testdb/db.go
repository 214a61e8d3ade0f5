//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/geekshop-api/internal/platform/postgres"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds setup queries against the test database.
const TestTimeout = 10 * time.Second

var (
	migrateOnce sync.Once
	migrateErr  error
)

// GetTestDBWithT opens a connection to the test database, applies the
// migrations once per test binary and registers cleanup with t. It skips the
// test when no database is configured outside CI.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		if isCIEnvironment() {
			t.Fatalf("%s or %s must be set in CI", EnvTestDatabaseURL, EnvDatabaseURL)
		}
		t.Skipf("%s not set, skipping integration test", EnvTestDatabaseURL)
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "open test database")
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("warning: failed to close test database: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "ping test database")

	migrateOnce.Do(func() {
		quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
		migrateErr = postgres.Migrate(ctx, db, "up", quiet)
	})
	require.NoError(t, migrateErr, "apply migrations")

	return db
}
