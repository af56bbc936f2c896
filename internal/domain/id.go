package domain

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator produces fresh task identifiers.
// Implementations need not guarantee uniqueness; callers check for collisions.
type IDGenerator interface {
	NewID() (uuid.UUID, error)
}

// IDGeneratorFunc adapts a plain function to the IDGenerator interface.
type IDGeneratorFunc func() (uuid.UUID, error)

// NewID calls f.
func (f IDGeneratorFunc) NewID() (uuid.UUID, error) {
	return f()
}

// UUIDGenerator draws random version 4 UUIDs from crypto/rand.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

// ParseTaskID parses the textual form of a task identifier.
// Malformed input yields a ValidationError wrapping ErrInvalidTaskID.
func ParseTaskID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uuid.Nil, NewValidationError("task_id", "is required", ErrInvalidTaskID)
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, NewValidationError("task_id", "has invalid format", ErrInvalidTaskID)
	}

	if id == uuid.Nil {
		return uuid.Nil, NewValidationError("task_id", "cannot be the nil UUID", ErrInvalidTaskID)
	}

	return id, nil
}
