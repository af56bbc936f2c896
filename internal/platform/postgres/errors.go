package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/tasktrack/internal/store"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
	uniqueViolationCode = "23505"

	// checkViolationCode is the PostgreSQL error code for check constraint violations
	checkViolationCode = "23514"

	// notNullViolationCode is the PostgreSQL error code for not null violations
	notNullViolationCode = "23502"

	// undefinedTableCode is raised when the tasks table has not been migrated
	undefinedTableCode = "42P01"
)

// MapError maps a database error to a store error for the given operation.
// The original error is wrapped to preserve context.
func MapError(operation string, err error) error {
	if err == nil {
		return nil
	}

	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrTaskNotFound
	}

	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, sql.ErrTxDone) {
		return store.NewStoreError("task", operation, "connection is closed",
			fmt.Errorf("%w: %v", store.ErrStoreClosed, err))
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode, checkViolationCode:
			return store.NewStoreError("task", operation,
				fmt.Sprintf("constraint violation (%s)", pgErr.ConstraintName),
				fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
		case notNullViolationCode:
			return store.NewStoreError("task", operation,
				fmt.Sprintf("not null violation (%s)", pgErr.ColumnName),
				fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
		case undefinedTableCode:
			return store.NewStoreError("task", operation,
				"tasks table is missing; run migrations", err)
		}
	}

	return store.NewStoreError("task", operation, "database query failed", err)
}

// CheckRowsAffected examines the number of rows affected by a statement.
// If no rows were affected, it returns store.ErrTaskNotFound.
func CheckRowsAffected(result sql.Result) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}
