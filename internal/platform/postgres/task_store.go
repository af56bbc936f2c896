package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/platform/logger"
	"github.com/phrazzld/tasktrack/internal/store"
)

const (
	upsertTaskQuery = `
		INSERT INTO tasks (id, description, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET description = EXCLUDED.description, status = EXCLUDED.status
	`
	getTaskQuery    = `SELECT id, description, status FROM tasks WHERE id = $1`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = $1`
	listTasksQuery  = `SELECT id, description, status FROM tasks ORDER BY id`
)

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "postgres_task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// WithTx returns a store that runs its statements inside tx.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) *PostgresTaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// Put implements store.TaskStore.Put
func (s *PostgresTaskStore) Put(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, upsertTaskQuery, task.ID, task.Description, task.Status)
	if err != nil {
		log.Error("failed to put task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return MapError("put", err)
	}

	log.Debug("task stored", slog.String("task_id", task.ID.String()))
	return nil
}

// Get implements store.TaskStore.Get
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var task domain.Task
	err := s.db.QueryRowContext(ctx, getTaskQuery, id).Scan(
		&task.ID,
		&task.Description,
		&task.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("task not found", slog.String("task_id", id.String()))
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, MapError("get", err)
	}

	return &task, nil
}

// Delete implements store.TaskStore.Delete
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, deleteTaskQuery, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return MapError("delete", err)
	}

	if err := CheckRowsAffected(result); err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return err
		}
		return MapError("delete", err)
	}

	log.Debug("task removed", slog.String("task_id", id.String()))
	return nil
}

// Values implements store.TaskStore.Values
// Rows are ordered by id; PostgreSQL compares uuid values bytewise.
func (s *PostgresTaskStore) Values(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, listTasksQuery)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, MapError("values", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Description, &task.Status); err != nil {
			return nil, MapError("values", err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed while iterating tasks", slog.String("error", err.Error()))
		return nil, MapError("values", err)
	}

	return tasks, nil
}
