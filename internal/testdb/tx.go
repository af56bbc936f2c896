//go:build integration

package testdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// BeginTx starts a transaction that sees an empty tasks table and is rolled
// back when the test completes.
func BeginTx(t *testing.T, db *sql.DB) *sql.Tx {
	t.Helper()

	// The transaction lives until cleanup, so it must not inherit a timeout.
	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err, "Failed to begin transaction")

	t.Cleanup(func() {
		// sql.ErrTxDone is expected if tx is already committed or rolled back
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("Warning: failed to rollback transaction: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	_, err = tx.ExecContext(ctx, "DELETE FROM tasks")
	require.NoError(t, err, "Failed to clear tasks inside transaction")

	return tx
}

// WithTx runs fn within a transaction that is rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx := BeginTx(t, db)
	fn(t, tx)
}
