package repositories

import (
	"context"

	"todo-list-api/internal/models"
)

// TodoRepository defines the item store operations used by the todo service.
// Put is an unconditional insert; Update atomically overwrites text, checked
// and the update timestamp of an existing record and returns the post-update
// attributes.
type TodoRepository interface {
	// Put inserts a new todo record
	Put(ctx context.Context, todo *models.Todo) error

	// Update overwrites text, checked and updatedAt for the record with the
	// given ID and returns the resulting record. Returns a not-found error
	// when no record with that ID exists; no partial record is created.
	Update(ctx context.Context, id, text string, checked bool, updatedAt int64) (*models.Todo, error)

	// GetByID retrieves a todo by its ID
	GetByID(ctx context.Context, id string) (*models.Todo, error)

	// Close releases any resources held by the repository
	Close() error
}
