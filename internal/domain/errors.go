// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when input fails validation.
	// This is usually wrapped by a ValidationError naming the field.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidTaskID is returned when a task identifier is syntactically malformed.
	// It is deliberately distinct from ErrTaskDoesNotExist.
	ErrInvalidTaskID = errors.New("invalid task ID")

	// ErrTaskDoesNotExist is returned by operations that require an existing task.
	ErrTaskDoesNotExist = errors.New("task does not exist")
)

// TaskDoesNotExistError reports that no live task carries TaskID.
// errors.Is(err, ErrTaskDoesNotExist) holds for every TaskDoesNotExistError.
type TaskDoesNotExistError struct {
	TaskID uuid.UUID
}

// NewTaskDoesNotExistError creates a TaskDoesNotExistError for the given ID.
func NewTaskDoesNotExistError(id uuid.UUID) *TaskDoesNotExistError {
	return &TaskDoesNotExistError{TaskID: id}
}

// Error implements the error interface.
func (e *TaskDoesNotExistError) Error() string {
	return fmt.Sprintf("task %s does not exist", e.TaskID)
}

// Is lets errors.Is match the ErrTaskDoesNotExist sentinel.
func (e *TaskDoesNotExistError) Is(target error) bool {
	return target == ErrTaskDoesNotExist
}

// ValidationError describes a rejected input field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError. A nil err defaults to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrValidation for every ValidationError,
// whatever more specific error it wraps.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// IsInvalidInput reports whether err belongs to the invalid-input family:
// failed text validation or a malformed identifier.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrInvalidTaskID)
}
