package mysql

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
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE description = VALUES(description), status = VALUES(status)
	`
	getTaskQuery    = `SELECT id, description, status FROM tasks WHERE id = ?`
	deleteTaskQuery = `DELETE FROM tasks WHERE id = ?`
	listTasksQuery  = `SELECT id, description, status FROM tasks ORDER BY id`
)

// MySQLTaskStore implements the store.TaskStore interface
// using a MySQL database as the storage backend.
type MySQLTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewMySQLTaskStore creates a new MySQL implementation of the TaskStore interface.
// If logger is nil, a default logger will be used.
func NewMySQLTaskStore(db store.DBTX, logger *slog.Logger) *MySQLTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &MySQLTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "mysql_task_store")),
	}
}

// Ensure MySQLTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MySQLTaskStore)(nil)

// WithTx returns a store that runs its statements inside tx.
func (s *MySQLTaskStore) WithTx(tx *sql.Tx) *MySQLTaskStore {
	return &MySQLTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// Put implements store.TaskStore.Put
func (s *MySQLTaskStore) Put(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx, upsertTaskQuery, task.ID.String(), task.Description, task.Status)
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
func (s *MySQLTaskStore) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	task, err := scanTask(s.db.QueryRowContext(ctx, getTaskQuery, id.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to get task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, MapError("get", err)
	}

	return task, nil
}

// Delete implements store.TaskStore.Delete
func (s *MySQLTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, deleteTaskQuery, id.String())
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return MapError("delete", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError("delete", err)
	}
	if affected == 0 {
		return store.ErrTaskNotFound
	}

	log.Debug("task removed", slog.String("task_id", id.String()))
	return nil
}

// Values implements store.TaskStore.Values
func (s *MySQLTaskStore) Values(ctx context.Context) ([]*domain.Task, error) {
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
		task, err := scanTask(rows)
		if err != nil {
			return nil, MapError("values", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		log.Error("failed while iterating tasks", slog.String("error", err.Error()))
		return nil, MapError("values", err)
	}

	return tasks, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*domain.Task, error) {
	var (
		rawID string
		task  domain.Task
	)
	if err := row.Scan(&rawID, &task.Description, &task.Status); err != nil {
		return nil, err
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, store.NewStoreError("task", "decode", "malformed id "+rawID, err)
	}
	task.ID = id
	return &task, nil
}
