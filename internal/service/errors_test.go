package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TaskServiceError
		expected string
	}{
		{
			name:     "with underlying error",
			err:      &TaskServiceError{Operation: "add_task", Message: "failed to store task", Err: errors.New("disk full")},
			expected: "task service add_task failed: failed to store task: disk full",
		},
		{
			name:     "without underlying error",
			err:      &TaskServiceError{Operation: "create_service", Message: "taskStore cannot be nil"},
			expected: "task service create_service failed: taskStore cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNewTaskServiceError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, NewTaskServiceError("op", "msg", nil))
	})

	t.Run("does-not-exist passes through", func(t *testing.T) {
		notExist := domain.NewTaskDoesNotExistError(uuid.New())
		err := NewTaskServiceError("delete_task", "msg", fmt.Errorf("wrapped: %w", notExist))
		assert.Same(t, notExist, err)
	})

	t.Run("validation passes through", func(t *testing.T) {
		validation := domain.NewValidationError("status", "cannot be empty", domain.ErrEmptyStatus)
		err := NewTaskServiceError("add_task", "msg", validation)
		assert.Same(t, validation, err)
	})

	t.Run("store errors are wrapped", func(t *testing.T) {
		storeErr := store.NewStoreError("task", "put", "bolt transaction failed", store.ErrStoreClosed)
		err := NewTaskServiceError("add_task", "failed to store task", storeErr)

		var serviceErr *TaskServiceError
		require.ErrorAs(t, err, &serviceErr)
		assert.Equal(t, "add_task", serviceErr.Operation)
		assert.ErrorIs(t, err, store.ErrStoreClosed)
	})
}
