package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "generic error",
			err:      errors.New("some error"),
			expected: false,
		},
		{
			name:     "ErrNotFound",
			err:      ErrNotFound,
			expected: true,
		},
		{
			name:     "ErrTaskNotFound",
			err:      ErrTaskNotFound,
			expected: true,
		},
		{
			name:     "wrapped ErrTaskNotFound",
			err:      fmt.Errorf("failed to find task: %w", ErrTaskNotFound),
			expected: true,
		},
		{
			name:     "store error wrapping ErrTaskNotFound",
			err:      NewStoreError("task", "get", "lookup failed", ErrTaskNotFound),
			expected: true,
		},
		{
			name:     "ErrInvalidEntity",
			err:      ErrInvalidEntity,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewStoreError("task", "put", "write failed", cause)

		assert.Equal(t, "put operation on task failed: write failed: disk full", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("task", "values", "bucket missing", nil)

		assert.Equal(t, "values operation on task failed: bucket missing", err.Error())
		assert.Nil(t, err.Unwrap())
	})
}
