package services

import (
	"context"

	"todo-list-api/internal/models"
)

// TodoService defines the business operations on todo items
type TodoService interface {
	// CreateTodo creates and persists a new todo item
	CreateTodo(ctx context.Context, req *CreateTodoRequest) (*models.Todo, error)

	// UpdateTodo replaces text and checked of an existing todo item
	UpdateTodo(ctx context.Context, id string, req *UpdateTodoRequest) (*models.Todo, error)
}

// CreateTodoRequest is the payload for creating a todo item. Text uses a
// pointer so an absent field is distinguishable from an empty string.
type CreateTodoRequest struct {
	Text *string `json:"text" validate:"required"`
}

// UpdateTodoRequest is the payload for updating a todo item. Both fields are
// required; pointers keep "checked": false distinguishable from an absent
// field.
type UpdateTodoRequest struct {
	Text    *string `json:"text" validate:"required"`
	Checked *bool   `json:"checked" validate:"required"`
}
