//go:build integration

// Package testdb provides helpers for integration tests that run against a
// real PostgreSQL database.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests can share one migrated database and run in parallel:
//
//	func TestUniverseStoreIntegration(t *testing.T) {
//	    t.Parallel()
//	    db := testdb.GetTestDBWithT(t)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        universes := postgres.NewPostgresUniverseStore(tx, nil)
//	        // ...
//	    })
//	}
//
// The database URL is read from GEEKSHOP_TEST_DATABASE_URL, falling back to
// DATABASE_URL. Tests are skipped when neither is set.
package testdb
