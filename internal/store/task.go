package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/domain"
)

// TaskStore is an ordered map from task identifier to task record.
// Version: 1.0
type TaskStore interface {
	// Put inserts the task, replacing any record stored under the same ID.
	Put(ctx context.Context, task *domain.Task) error

	// Get retrieves a copy of the task stored under id.
	// Returns ErrTaskNotFound if no such task exists.
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// Delete removes the task stored under id.
	// Returns ErrTaskNotFound if no such task exists.
	Delete(ctx context.Context, id uuid.UUID) error

	// Values returns copies of every stored task in ascending ID byte order.
	// Returns an empty slice when the store is empty.
	Values(ctx context.Context) ([]*domain.Task, error)
}
