//go:build integration

package testdb

import "os"

// Environment variables consulted for the test database URL, in order.
const (
	EnvTestDatabaseURL = "GEEKSHOP_TEST_DATABASE_URL"
	EnvDatabaseURL     = "DATABASE_URL"
)

// GetTestDatabaseURL returns the first non-empty database URL from the environment.
func GetTestDatabaseURL() string {
	for _, name := range []string{EnvTestDatabaseURL, EnvDatabaseURL} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ShouldSkipDatabaseTest reports whether no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return GetTestDatabaseURL() == ""
}

// isCIEnvironment returns true if running in a CI environment, where a
// missing database is an error rather than a reason to skip.
func isCIEnvironment() bool {
	for _, name := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI"} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}
