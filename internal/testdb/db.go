//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/phrazzld/tasktrack/internal/platform/database"
	"github.com/phrazzld/tasktrack/internal/platform/migrations"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 10 * time.Second

// GetTestDB opens the test database for driver, applies the migrations and
// registers cleanup. The test is skipped when envVar is unset.
func GetTestDB(t *testing.T, driver, envVar string) *sql.DB {
	t.Helper()

	if ShouldSkipDatabaseTest(envVar) {
		t.Skipf("%s not set - skipping %s integration test", envVar, driver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := database.Open(ctx, driver, os.Getenv(envVar), 4, nil)
	require.NoError(t, err, "Failed to open test database")

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Warning: failed to close database connection: %v", err)
		}
	})

	err = migrations.Run(ctx, db, driver, migrations.CommandUp, nil)
	require.NoError(t, err, "Failed to run migrations")

	return db
}
