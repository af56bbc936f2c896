package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/tasktrack/internal/config"
	"github.com/phrazzld/tasktrack/internal/platform/bolt"
	"github.com/phrazzld/tasktrack/internal/platform/database"
	"github.com/phrazzld/tasktrack/internal/platform/memory"
	"github.com/phrazzld/tasktrack/internal/platform/migrations"
	"github.com/phrazzld/tasktrack/internal/platform/mysql"
	"github.com/phrazzld/tasktrack/internal/platform/postgres"
	"github.com/phrazzld/tasktrack/internal/redact"
)

// openStore selects the task store for the configured driver.
func (a *application) openStore(ctx context.Context, autoMigrate bool) error {
	cfg := a.config.Store

	switch cfg.Driver {
	case config.DriverMemory:
		s := memory.NewTaskStore(a.logger)
		a.store, a.closeStore = s, s.Close

	case config.DriverBolt:
		s, err := bolt.Open(cfg.Path, a.logger)
		if err != nil {
			return fmt.Errorf("failed to open task file: %s", redact.Error(err))
		}
		a.store, a.closeStore = s, s.Close

	case config.DriverPostgres, config.DriverMySQL:
		db, err := database.Open(ctx, cfg.Driver, cfg.URL, cfg.MaxOpenConns, a.logger)
		if err != nil {
			return err
		}
		a.db, a.closeStore = db, db.Close

		if autoMigrate {
			if err := migrations.Run(ctx, db, cfg.Driver, migrations.CommandUp, a.logger); err != nil {
				return err
			}
		}

		if cfg.Driver == config.DriverPostgres {
			a.store = postgres.NewPostgresTaskStore(db, a.logger)
		} else {
			a.store = mysql.NewMySQLTaskStore(db, a.logger)
		}

	default:
		return fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}

	a.logger.Debug("task store opened", slog.String("driver", cfg.Driver))
	return nil
}
