// Package bolt provides a file-backed implementation of store.TaskStore on
// top of bbolt. A bbolt bucket is a B+tree keyed by raw bytes, so the 16 byte
// task ID doubles as the ordering key.
package bolt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/store"
	bolt "go.etcd.io/bbolt"
)

var tasksBucket = []byte("tasks")

// openTimeout bounds how long Open waits for the file lock held by another process.
const openTimeout = time.Second

// record is the persisted value layout for a task.
type record struct {
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TaskStore implements store.TaskStore using a bbolt database file.
type TaskStore struct {
	db     *bolt.DB
	logger *slog.Logger
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Open opens (creating if needed) the bbolt file at path and ensures the
// tasks bucket exists. If logger is nil, a default logger will be used.
func Open(path string, logger *slog.Logger) (*TaskStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(tasksBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tasks bucket: %w", err)
	}

	return &TaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "bolt_task_store")),
	}, nil
}

// Put implements store.TaskStore.Put.
func (s *TaskStore) Put(ctx context.Context, task *domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(record{Description: task.Description, Status: task.Status})
	if err != nil {
		return store.NewStoreError("task", "put", "failed to encode task", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return bucket(tx).Put(task.ID[:], value)
	})
	if err != nil {
		s.logger.Error("failed to put task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return mapError("put", err)
	}

	s.logger.Debug("task stored", slog.String("task_id", task.ID.String()))
	return nil
}

// Get implements store.TaskStore.Get.
func (s *TaskStore) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var task *domain.Task
	err := s.db.View(func(tx *bolt.Tx) error {
		// Bytes returned by Get are only valid inside the transaction.
		value := bucket(tx).Get(id[:])
		if value == nil {
			return store.ErrTaskNotFound
		}

		decoded, err := decode(id[:], value)
		if err != nil {
			return err
		}
		task = decoded
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return nil, err
		}
		return nil, mapError("get", err)
	}

	return task, nil
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := bucket(tx)
		if b.Get(id[:]) == nil {
			return store.ErrTaskNotFound
		}
		return b.Delete(id[:])
	})
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			return err
		}
		s.logger.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return mapError("delete", err)
	}

	s.logger.Debug("task removed", slog.String("task_id", id.String()))
	return nil
}

// Values implements store.TaskStore.Values.
func (s *TaskStore) Values(ctx context.Context) ([]*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tasks := []*domain.Task{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return bucket(tx).ForEach(func(k, v []byte) error {
			task, err := decode(k, v)
			if err != nil {
				return err
			}
			tasks = append(tasks, task)
			return nil
		})
	})
	if err != nil {
		s.logger.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, mapError("values", err)
	}

	return tasks, nil
}

// Close releases the database file lock.
func (s *TaskStore) Close() error {
	return s.db.Close()
}

func bucket(tx *bolt.Tx) *bolt.Bucket {
	return tx.Bucket(tasksBucket)
}

func decode(key, value []byte) (*domain.Task, error) {
	id, err := uuid.FromBytes(key)
	if err != nil {
		return nil, store.NewStoreError("task", "decode", "malformed key", err)
	}

	var r record
	if err := json.Unmarshal(value, &r); err != nil {
		return nil, store.NewStoreError("task", "decode", "malformed value for "+id.String(), err)
	}

	return &domain.Task{ID: id, Description: r.Description, Status: r.Status}, nil
}

// mapError converts bbolt errors into store errors.
func mapError(operation string, err error) error {
	var storeErr *store.StoreError
	if errors.As(err, &storeErr) {
		return err
	}
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return store.NewStoreError("task", operation, "database is closed", store.ErrStoreClosed)
	}
	return store.NewStoreError("task", operation, "bolt transaction failed", err)
}
