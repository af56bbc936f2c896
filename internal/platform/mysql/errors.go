package mysql

import (
	"database/sql"
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/phrazzld/tasktrack/internal/store"
)

// MySQL server error numbers
const (
	duplicateEntryCode = 1062
	columnCannotBeNull = 1048
	dataTooLongCode    = 1406
	checkViolationCode = 3819
	tableDoesNotExist  = 1146
)

// MapError maps a MySQL error to a store error for the given operation.
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

	var myErr *mysqldriver.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case duplicateEntryCode, columnCannotBeNull, dataTooLongCode, checkViolationCode:
			return store.NewStoreError("task", operation,
				fmt.Sprintf("constraint violation (%d)", myErr.Number),
				fmt.Errorf("%w: %v", store.ErrInvalidEntity, err))
		case tableDoesNotExist:
			return store.NewStoreError("task", operation,
				"tasks table is missing; run migrations", err)
		}
	}

	return store.NewStoreError("task", operation, "database query failed", err)
}
