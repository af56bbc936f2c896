//go:build integration

package testdb

import "os"

// Environment variables naming the test databases.
const (
	PostgresURLEnv = "TASKTRACK_TEST_POSTGRES_URL"
	MySQLDSNEnv    = "TASKTRACK_TEST_MYSQL_DSN"
)

// ShouldSkipDatabaseTest reports whether envVar is unset, meaning the
// integration tests for that backend cannot run.
func ShouldSkipDatabaseTest(envVar string) bool {
	return os.Getenv(envVar) == ""
}
