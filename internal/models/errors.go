package models

import (
	"errors"
	"fmt"
)

// ValidationError reports a required request field that was absent or empty.
// Handlers map it to a 400 response; the store is never touched when one is
// returned.
type ValidationError struct {
	Field string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: field %q is required", e.Field)
}

// NewValidationError creates a validation error for a missing field
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
