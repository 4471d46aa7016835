package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"todo-list-api/internal/models"
	"todo-list-api/internal/repositories"
)

// todoService implements the TodoService interface
type todoService struct {
	repo      repositories.TodoRepository
	validator *validator.Validate
}

// NewTodoService creates a new todo service instance
func NewTodoService(repo repositories.TodoRepository) TodoService {
	v := validator.New()

	// Report JSON field names in validation errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &todoService{
		repo:      repo,
		validator: v,
	}
}

// CreateTodo creates a new todo item. A missing text field aborts the
// operation before any store write. Two identical requests create two
// distinct items.
func (s *todoService) CreateTodo(ctx context.Context, req *CreateTodoRequest) (*models.Todo, error) {
	if req == nil {
		return nil, models.NewValidationError("text")
	}

	if err := s.validate(req); err != nil {
		logrus.WithError(err).Error("Validation failed")
		return nil, err
	}

	todo := models.NewTodo(*req.Text)

	if err := s.repo.Put(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"todo_id": todo.ID,
	}).Info("Todo created")

	return todo, nil
}

// UpdateTodo performs a full overwrite of text and checked on an existing
// item and advances its update timestamp. Missing body fields abort the
// operation before any store write; a missing item surfaces as a not-found
// error from the repository.
func (s *todoService) UpdateTodo(ctx context.Context, id string, req *UpdateTodoRequest) (*models.Todo, error) {
	if id == "" {
		return nil, models.NewValidationError("id")
	}

	if req == nil {
		return nil, models.NewValidationError("text")
	}

	if err := s.validate(req); err != nil {
		logrus.WithError(err).Error("Validation failed")
		return nil, err
	}

	todo, err := s.repo.Update(ctx, id, *req.Text, *req.Checked, models.NowMillis())
	if err != nil {
		if repositories.IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update todo: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"todo_id": todo.ID,
		"checked": todo.Checked,
	}).Info("Todo updated")

	return todo, nil
}

// validate maps the first struct validation failure to a typed
// ValidationError carrying the missing field name
func (s *todoService) validate(req interface{}) error {
	err := s.validator.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return models.NewValidationError(verrs[0].Field())
	}

	return fmt.Errorf("validation failed: %w", err)
}
