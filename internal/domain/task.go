package domain

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Task validation errors
var (
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrEmptyDescription = errors.New("task description cannot be empty")
	ErrEmptyStatus      = errors.New("task status cannot be empty")
	ErrInvalidText      = errors.New("task text must be valid UTF-8 without NUL bytes")
)

// Task is the single entity tracked by the application: an immutable
// identifier plus caller-defined description and status text.
// Status carries no enforced vocabulary.
type Task struct {
	ID          uuid.UUID `json:"task_id"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

// NewTask creates a Task with the given identifier and text fields.
// When requireText is set, empty description or status is rejected.
func NewTask(id uuid.UUID, description, status string, requireText bool) (*Task, error) {
	task := &Task{
		ID:          id,
		Description: description,
		Status:      status,
	}

	if err := task.Validate(requireText); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks the task fields. The identifier must always be set and the
// text fields must always be well formed; emptiness is only checked when
// requireText is true.
func (t *Task) Validate(requireText bool) error {
	if t.ID == uuid.Nil {
		return NewValidationError("task_id", "cannot be empty", ErrEmptyTaskID)
	}

	if err := ValidateText("description", t.Description); err != nil {
		return err
	}
	if err := ValidateText("status", t.Status); err != nil {
		return err
	}

	if !requireText {
		return nil
	}

	if err := ValidateDescription(t.Description); err != nil {
		return err
	}

	return ValidateStatus(t.Status)
}

// ValidateText rejects text that every storage backend cannot hold
// unchanged: invalid UTF-8 or embedded NUL bytes.
func ValidateText(field, value string) error {
	if !utf8.ValidString(value) {
		return NewValidationError(field, "must be valid UTF-8", ErrInvalidText)
	}
	if strings.IndexByte(value, 0) >= 0 {
		return NewValidationError(field, "must not contain NUL bytes", ErrInvalidText)
	}
	return nil
}

// ValidateDescription rejects an empty description.
func ValidateDescription(description string) error {
	if description == "" {
		return NewValidationError("description", "cannot be empty", ErrEmptyDescription)
	}
	return nil
}

// ValidateStatus rejects an empty status.
func ValidateStatus(status string) error {
	if status == "" {
		return NewValidationError("status", "cannot be empty", ErrEmptyStatus)
	}
	return nil
}

// Clone returns an independent copy of the task.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
