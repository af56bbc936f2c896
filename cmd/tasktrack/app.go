package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/tasktrack/internal/config"
	"github.com/phrazzld/tasktrack/internal/redact"
	"github.com/phrazzld/tasktrack/internal/service"
	"github.com/phrazzld/tasktrack/internal/store"
)

// application holds the wired dependencies for one command invocation.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is set only for the SQL drivers.
	db         *sql.DB
	store      store.TaskStore
	closeStore func() error

	tasks service.TaskService
}

// newApplication opens the configured backend and builds the task service on it.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	autoMigrate bool,
) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	if err := app.openStore(ctx, autoMigrate); err != nil {
		app.cleanup()
		return nil, err
	}

	tasks, err := service.NewTaskService(
		app.store,
		logger,
		service.WithRequireText(cfg.Tasks.RequireText),
		service.WithMaxIDAttempts(cfg.Tasks.MaxIDAttempts),
	)
	if err != nil {
		app.cleanup()
		return nil, err
	}
	app.tasks = tasks

	logger.Debug("application initialized",
		slog.String("driver", cfg.Store.Driver),
		slog.Bool("require_text", cfg.Tasks.RequireText))
	return app, nil
}

// cleanup releases the storage backend.
func (a *application) cleanup() {
	if a.closeStore == nil {
		return
	}
	if err := a.closeStore(); err != nil {
		a.logger.Error("failed to close store", slog.String("error", redact.Error(err)))
	}
	a.closeStore = nil
}
