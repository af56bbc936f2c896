//go:build integration

// Package testdb provides utilities for the SQL store integration tests.
//
// Each test runs in its own transaction, which is rolled back when the test
// completes, so tests do not affect each other's data.
//
// # Environment Variables
//
// - TASKTRACK_TEST_POSTGRES_URL: PostgreSQL connection string
// - TASKTRACK_TEST_MYSQL_DSN: MySQL data source name
//
// Tests are skipped when the variable for their backend is unset.
//
// # Basic Usage
//
//	func TestMyFeature(t *testing.T) {
//	    db := testdb.GetTestDB(t, "postgres", testdb.PostgresURLEnv)
//
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        taskStore := postgres.NewPostgresTaskStore(tx, nil)
//	        // ...
//	    })
//	}
package testdb
