package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/platform/logger"
	"github.com/phrazzld/tasktrack/internal/store"
)

// DefaultMaxIDAttempts is the number of identifiers AddTask draws before
// giving up with ErrIDGenerationExhausted.
const DefaultMaxIDAttempts = 5

// TaskService provides the task repository operations.
type TaskService interface {
	// AddTask creates a task with a fresh identifier.
	AddTask(ctx context.Context, description, status string) (*domain.Task, error)

	// DeleteTask removes a task and returns the record as it was before deletion.
	DeleteTask(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// GetTaskList returns a snapshot of every stored task in key order.
	GetTaskList(ctx context.Context) ([]*domain.Task, error)

	// GetTaskDetails returns the task and true, or nil and false when absent.
	GetTaskDetails(ctx context.Context, id uuid.UUID) (*domain.Task, bool, error)

	// UpdateTaskStatus replaces the status of an existing task.
	UpdateTaskStatus(ctx context.Context, id uuid.UUID, status string) (*domain.Task, error)

	// UpdateTaskDescription replaces the description of an existing task.
	UpdateTaskDescription(ctx context.Context, id uuid.UUID, description string) (*domain.Task, error)
}

// Option configures a TaskService.
type Option func(*taskServiceImpl)

// WithIDGenerator replaces the default random UUID generator.
func WithIDGenerator(gen domain.IDGenerator) Option {
	return func(s *taskServiceImpl) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithRequireText rejects empty description and status text.
func WithRequireText(require bool) Option {
	return func(s *taskServiceImpl) {
		s.requireText = require
	}
}

// WithMaxIDAttempts bounds the identifier draws per AddTask. Values below 1 are ignored.
func WithMaxIDAttempts(n int) Option {
	return func(s *taskServiceImpl) {
		if n >= 1 {
			s.maxIDAttempts = n
		}
	}
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	mu            sync.RWMutex
	tasks         store.TaskStore
	ids           domain.IDGenerator
	requireText   bool
	maxIDAttempts int
	logger        *slog.Logger
}

// Ensure taskServiceImpl implements TaskService
var _ TaskService = (*taskServiceImpl)(nil)

// NewTaskService creates a new TaskService over taskStore.
// It returns an error if taskStore is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger, opts ...Option) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	s := &taskServiceImpl{
		tasks:         taskStore,
		ids:           domain.UUIDGenerator{},
		maxIDAttempts: DefaultMaxIDAttempts,
		logger:        logger.With(slog.String("component", "task_service")),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// AddTask implements TaskService.AddTask
func (s *taskServiceImpl) AddTask(ctx context.Context, description, status string) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validateText(description, status); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.freshID(ctx)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(id, description, status, s.requireText)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Put(ctx, task); err != nil {
		return nil, NewTaskServiceError("add_task", "failed to store task", err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("status", task.Status))
	return task.Clone(), nil
}

// freshID draws identifiers until one is not already a key in the store.
// Must be called with the write lock held.
func (s *taskServiceImpl) freshID(ctx context.Context) (uuid.UUID, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for attempt := 1; attempt <= s.maxIDAttempts; attempt++ {
		id, err := s.ids.NewID()
		if err != nil {
			return uuid.Nil, NewTaskServiceError("add_task", "failed to generate task ID", err)
		}
		if id == uuid.Nil {
			log.Debug("discarding nil task ID", slog.Int("attempt", attempt))
			continue
		}

		_, err = s.tasks.Get(ctx, id)
		switch {
		case err == nil:
			log.Debug("discarding colliding task ID",
				slog.String("task_id", id.String()),
				slog.Int("attempt", attempt))
		case store.IsNotFoundError(err):
			return id, nil
		default:
			return uuid.Nil, NewTaskServiceError("add_task", "failed to check task ID", err)
		}
	}

	return uuid.Nil, &TaskServiceError{
		Operation: "add_task",
		Message:   "identifier attempts exhausted",
		Err:       ErrIDGenerationExhausted,
	}
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := validateID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.lookup(ctx, "delete_task", id)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return nil, domain.NewTaskDoesNotExistError(id)
		}
		return nil, NewTaskServiceError("delete_task", "failed to delete task", err)
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	return task, nil
}

// GetTaskList implements TaskService.GetTaskList
func (s *taskServiceImpl) GetTaskList(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks, err := s.tasks.Values(ctx)
	if err != nil {
		return nil, NewTaskServiceError("get_task_list", "failed to list tasks", err)
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	log.Debug("listed tasks", slog.Int("count", len(tasks)))
	return tasks, nil
}

// GetTaskDetails implements TaskService.GetTaskDetails
// A missing task, including the nil UUID, is reported as (nil, false, nil).
func (s *taskServiceImpl) GetTaskDetails(ctx context.Context, id uuid.UUID) (*domain.Task, bool, error) {
	if id == uuid.Nil {
		return nil, false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, false, nil
		}
		return nil, false, NewTaskServiceError("get_task_details", "failed to get task", err)
	}

	return task, true, nil
}

// UpdateTaskStatus implements TaskService.UpdateTaskStatus
func (s *taskServiceImpl) UpdateTaskStatus(
	ctx context.Context,
	id uuid.UUID,
	status string,
) (*domain.Task, error) {
	if err := s.validateField("status", status, domain.ValidateStatus); err != nil {
		return nil, err
	}

	return s.update(ctx, "update_task_status", id, func(task *domain.Task) {
		task.Status = status
	})
}

// UpdateTaskDescription implements TaskService.UpdateTaskDescription
func (s *taskServiceImpl) UpdateTaskDescription(
	ctx context.Context,
	id uuid.UUID,
	description string,
) (*domain.Task, error) {
	if err := s.validateField("description", description, domain.ValidateDescription); err != nil {
		return nil, err
	}

	return s.update(ctx, "update_task_description", id, func(task *domain.Task) {
		task.Description = description
	})
}

// update runs the shared lookup, mutate and store sequence under the write lock.
func (s *taskServiceImpl) update(
	ctx context.Context,
	operation string,
	id uuid.UUID,
	mutate func(*domain.Task),
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := validateID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.lookup(ctx, operation, id)
	if err != nil {
		return nil, err
	}

	updated := task.Clone()
	mutate(updated)
	updated.ID = id

	if err := s.tasks.Put(ctx, updated); err != nil {
		return nil, NewTaskServiceError(operation, "failed to store task", err)
	}

	log.Info("task updated",
		slog.String("operation", operation),
		slog.String("task_id", id.String()),
		slog.String("status", updated.Status))
	return updated.Clone(), nil
}

// lookup fetches an existing task, translating absence into TaskDoesNotExistError.
func (s *taskServiceImpl) lookup(ctx context.Context, operation string, id uuid.UUID) (*domain.Task, error) {
	task, err := s.tasks.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.NewTaskDoesNotExistError(id)
		}
		return nil, NewTaskServiceError(operation, "failed to look up task", err)
	}
	return task, nil
}

func (s *taskServiceImpl) validateText(description, status string) error {
	if err := s.validateField("description", description, domain.ValidateDescription); err != nil {
		return err
	}
	return s.validateField("status", status, domain.ValidateStatus)
}

// validateField always rejects malformed text; notEmpty only applies when
// the service requires text.
func (s *taskServiceImpl) validateField(field, value string, notEmpty func(string) error) error {
	if err := domain.ValidateText(field, value); err != nil {
		return err
	}
	if !s.requireText {
		return nil
	}
	return notEmpty(value)
}

func validateID(id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("task_id", "cannot be the nil UUID", domain.ErrInvalidTaskID)
	}
	return nil
}
