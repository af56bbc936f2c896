// Package memory provides an in-process implementation of store.TaskStore
// backed by a persistent treap, so listings are cheap immutable snapshots.
package memory

import (
	"bytes"
	"context"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/blevesearch/gtreap"
	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/store"
)

// TaskStore keeps tasks in an ordered treap keyed by ID bytes.
type TaskStore struct {
	mu     sync.RWMutex
	tasks  *gtreap.Treap
	size   int
	closed bool
	logger *slog.Logger
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// compareTasks orders domain.Task items by the raw bytes of their IDs.
func compareTasks(a, b interface{}) int {
	ta := a.(domain.Task)
	tb := b.(domain.Task)
	return bytes.Compare(ta.ID[:], tb.ID[:])
}

// NewTaskStore creates an empty in-memory task store.
// If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		tasks:  gtreap.NewTreap(compareTasks),
		logger: logger.With(slog.String("component", "memory_task_store")),
	}
}

// Put implements store.TaskStore.Put.
func (s *TaskStore) Put(ctx context.Context, task *domain.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.ErrStoreClosed
	}

	if s.tasks.Get(domain.Task{ID: task.ID}) == nil {
		s.size++
	}
	// Items are stored by value so callers can never alias stored records.
	s.tasks = s.tasks.Upsert(*task, rand.Int())

	s.logger.Debug("task stored", slog.String("task_id", task.ID.String()))
	return nil
}

// Get implements store.TaskStore.Get.
func (s *TaskStore) Get(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, store.ErrStoreClosed
	}

	item := s.tasks.Get(domain.Task{ID: id})
	if item == nil {
		return nil, store.ErrTaskNotFound
	}

	task := item.(domain.Task)
	return &task, nil
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return store.ErrStoreClosed
	}

	key := domain.Task{ID: id}
	if s.tasks.Get(key) == nil {
		return store.ErrTaskNotFound
	}

	s.tasks = s.tasks.Delete(key)
	s.size--

	s.logger.Debug("task removed", slog.String("task_id", id.String()))
	return nil
}

// Values implements store.TaskStore.Values.
func (s *TaskStore) Values(ctx context.Context) ([]*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return nil, store.ErrStoreClosed
	}
	snapshot, size := s.tasks, s.size
	s.mu.RUnlock()

	// The treap is persistent, so the snapshot can be walked without the lock.
	tasks := make([]*domain.Task, 0, size)
	snapshot.VisitAscend(domain.Task{ID: uuid.Nil}, func(item gtreap.Item) bool {
		task := item.(domain.Task)
		tasks = append(tasks, &task)
		return true
	})

	return tasks, nil
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.size
}

// Close releases the stored tasks. Further operations return store.ErrStoreClosed.
func (s *TaskStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.tasks = gtreap.NewTreap(compareTasks)
	s.size = 0
	return nil
}
