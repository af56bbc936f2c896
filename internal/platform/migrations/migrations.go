// Package migrations applies the embedded schema migrations for the SQL
// storage backends using goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pressly/goose/v3"
)

//go:embed sql/postgres/*.sql sql/mysql/*.sql
var embedded embed.FS

// TableName is the goose version table.
const TableName = "tasktrack_schema_migrations"

// Supported migration commands.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandReset   = "reset"
	CommandStatus  = "status"
	CommandVersion = "version"
)

// Commands lists every command accepted by Run.
var Commands = []string{CommandUp, CommandDown, CommandReset, CommandStatus, CommandVersion}

// goose keeps its configuration in package globals; serialize access to it.
var gooseMu sync.Mutex

// slogGooseLogger adapts slog for goose's logger interface.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements goose.Logger.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements goose.Logger. It logs at error level and does not exit;
// goose returns the failure to the caller as an error.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}

// dialectFor maps a storage driver name to the goose dialect and the
// embedded directory holding its migrations.
func dialectFor(driver string) (string, string, error) {
	switch driver {
	case "postgres":
		return "postgres", "sql/postgres", nil
	case "mysql":
		return "mysql", "sql/mysql", nil
	default:
		return "", "", fmt.Errorf("no migrations for driver %q", driver)
	}
}

// Run executes a goose command against db using the migrations embedded for driver.
func Run(ctx context.Context, db *sql.DB, driver, command string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With(
		slog.String("component", "migrations"),
		slog.String("command", command),
		slog.String("driver", driver),
	)

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return err
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedded)
	goose.SetTableName(TableName)
	goose.SetLogger(&slogGooseLogger{logger: log})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	startTime := time.Now()
	log.Debug("starting migration command")

	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, db, dir)
	case CommandDown:
		err = goose.DownContext(ctx, db, dir)
	case CommandReset:
		err = goose.ResetContext(ctx, db, dir)
	case CommandStatus:
		err = goose.StatusContext(ctx, db, dir)
	case CommandVersion:
		err = goose.VersionContext(ctx, db, dir)
	default:
		return fmt.Errorf(
			"unknown migration command: %s (expected up, down, reset, status, or version)",
			command,
		)
	}

	if err != nil {
		log.Error("migration command failed",
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(startTime).Milliseconds()))
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	log.Info("migration command executed successfully",
		slog.Int64("duration_ms", time.Since(startTime).Milliseconds()))
	return nil
}

// Files returns the names of the embedded migration files for driver.
func Files(driver string) ([]string, error) {
	_, dir, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}

	entries, err := embedded.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}
