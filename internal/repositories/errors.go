package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is returned when a todo record does not exist
	ErrNotFound = errors.New("todo not found")

	// ErrConnection is returned when the item store cannot be reached
	ErrConnection = errors.New("item store connection error")

	// ErrUnsupportedBackend is returned by the factory for an unknown backend name
	ErrUnsupportedBackend = errors.New("unsupported store backend")
)

// RepositoryError carries the failed operation and record ID alongside the
// underlying store error.
type RepositoryError struct {
	Op  string // operation that failed (put, update, get)
	ID  string // record ID, if applicable
	Err error  // underlying error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("todo %s failed for id %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("todo %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a repository error wrapping err
func NewRepositoryError(op, id string, err error) *RepositoryError {
	return &RepositoryError{Op: op, ID: id, Err: err}
}

// NotFoundError creates a "not found" repository error for the given ID
func NotFoundError(op, id string) *RepositoryError {
	return &RepositoryError{Op: op, ID: id, Err: ErrNotFound}
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
