package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/tasktrack/internal/domain"
)

// Service sentinel errors.
// Domain errors (domain.ErrTaskDoesNotExist, domain.ErrValidation,
// domain.ErrInvalidTaskID) are returned unwrapped so callers can match
// them with errors.Is and errors.As.
var (
	// ErrIDGenerationExhausted indicates that every identifier drawn for a new
	// task collided with an existing one.
	ErrIDGenerationExhausted = errors.New("could not generate a unique task ID")
)

// TaskServiceError wraps infrastructure errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g., "add_task", "delete_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// NewTaskServiceError creates a new TaskServiceError.
// It returns domain errors directly without wrapping.
func NewTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	var notExist *domain.TaskDoesNotExistError
	if errors.As(err, &notExist) {
		return notExist
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
