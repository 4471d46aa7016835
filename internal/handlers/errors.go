package handlers

import (
	"errors"

	"todo-list-api/internal/models"
	"todo-list-api/internal/repositories"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// validationErrorResponse builds the error body for a missing required field
func validationErrorResponse(verr *models.ValidationError) ErrorResponse {
	return ErrorResponse{
		Error:   "Validation failed",
		Message: verr.Error(),
		Field:   verr.Field,
	}
}

// asValidationError extracts a typed validation error, if any
func asValidationError(err error) (*models.ValidationError, bool) {
	var verr *models.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// isNotFoundError checks if an error is a "not found" error
func isNotFoundError(err error) bool {
	return repositories.IsNotFound(err)
}
