// Package database opens and verifies the SQL connection pools used by the
// postgres and mysql storage backends.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql" // mysql driver
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/tasktrack/internal/redact"
)

// PingTimeout bounds the connectivity check performed by Open.
const PingTimeout = 5 * time.Second

// Pool settings applied to every connection.
const (
	connMaxLifetime = 5 * time.Minute
	connMaxIdleTime = time.Minute
)

// DriverName maps a storage driver from configuration to the database/sql
// driver registered for it.
func DriverName(driver string) (string, error) {
	switch driver {
	case "postgres":
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	default:
		return "", fmt.Errorf("driver %q is not an SQL driver", driver)
	}
}

// Open establishes a connection pool for driver and checks that the server
// is reachable. The returned pool is owned by the caller.
func Open(ctx context.Context, driver, dsn string, maxOpenConns int, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}

	driverName, err := DriverName(driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %s", redact.Error(err))
	}

	if maxOpenConns < 1 {
		maxOpenConns = 1
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(max(1, maxOpenConns/2))
	db.SetConnMaxLifetime(connMaxLifetime)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %s", redact.Error(err))
	}

	logger.Info("database connection established",
		slog.String("driver", driver),
		slog.String("url", redact.DatabaseURL(dsn)),
		slog.Int("max_open_conns", maxOpenConns))
	return db, nil
}
