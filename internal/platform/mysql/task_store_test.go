//go:build integration

package mysql_test

import (
	"testing"

	"github.com/phrazzld/tasktrack/internal/platform/mysql"
	"github.com/phrazzld/tasktrack/internal/store"
	"github.com/phrazzld/tasktrack/internal/store/storetest"
	"github.com/phrazzld/tasktrack/internal/testdb"
)

func TestMySQLTaskStore(t *testing.T) {
	db := testdb.GetTestDB(t, "mysql", testdb.MySQLDSNEnv)

	storetest.RunTaskStoreTests(t, func(t *testing.T) store.TaskStore {
		return mysql.NewMySQLTaskStore(testdb.BeginTx(t, db), nil)
	})
}
