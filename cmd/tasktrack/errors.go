package main

import (
	"errors"
	"strings"

	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/redact"
	"github.com/phrazzld/tasktrack/internal/service"
	"github.com/phrazzld/tasktrack/internal/store"
)

// Process exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
	exitNotFound     = 3
)

// errTaskAbsent reports that get found no task; it is not a repository error.
var errTaskAbsent = errors.New("task not found")

// usageError marks a malformed command line or configuration.
type usageError struct {
	err error
}

func newUsageError(err error) error {
	return &usageError{err: err}
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// exitCodeFor maps an error to the process exit code without exposing
// internal error types to the shell.
func exitCodeFor(err error) int {
	var usage *usageError
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, domain.ErrTaskDoesNotExist),
		errors.Is(err, errTaskAbsent):
		return exitNotFound
	case domain.IsInvalidInput(err),
		errors.As(err, &usage),
		isCobraUsageError(err):
		return exitInvalidInput
	default:
		return exitFailure
	}
}

// userMessage returns a sanitized message for err. Messages for
// infrastructure failures are redacted.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var usage *usageError
	switch {
	case errors.Is(err, domain.ErrTaskDoesNotExist),
		errors.Is(err, errTaskAbsent),
		domain.IsInvalidInput(err),
		isCobraUsageError(err):
		return err.Error()
	case errors.As(err, &usage):
		return redact.String(usage.Error())
	case errors.Is(err, service.ErrIDGenerationExhausted):
		return "could not allocate a unique task ID, please retry"
	case errors.Is(err, store.ErrStoreClosed):
		return "the task store is closed"
	default:
		return redact.Error(err)
	}
}

// isCobraUsageError detects the plain errors cobra returns for unknown commands.
func isCobraUsageError(err error) bool {
	return strings.HasPrefix(err.Error(), "unknown command")
}
