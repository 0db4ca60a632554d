package errors

import (
	"errors"
	"fmt"
)

// Exit codes returned to the operating system.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (bad flags, unknown content, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrGeneration indicates a source document failed validation during
	// registry generation (missing metadata key, name collision).
	ErrGeneration = errors.New("registry generation failed")

	// ErrUnknownContentUnit indicates a selected name is not present in the
	// content registry.
	ErrUnknownContentUnit = errors.New("unknown content unit")

	// ErrAmbiguousSelection indicates custom mode was requested without
	// prompts available and without explicit selections.
	ErrAmbiguousSelection = errors.New("ambiguous selection")

	// ErrFlushIncomplete indicates one or more staged writes failed during
	// flush. The manifest reflects only what actually succeeded.
	ErrFlushIncomplete = errors.New("some files could not be written")
)

// ExitError wraps an error with an exit code and optional suggestion for the
// CLI. It supports unwrapping via errors.Unwrap, so errors.Is still sees the
// underlying sentinel.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable hint for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// Error returns the message of the underlying error, or a generic message
// naming the exit code when there is no underlying error.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
