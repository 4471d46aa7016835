package server

import (
	"context"
	"fmt"

	"todo-list-api/internal/config"
	"todo-list-api/internal/repositories"
	"todo-list-api/internal/repositories/dynamo"
	"todo-list-api/internal/repositories/sqlite"
	"todo-list-api/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	TodoService services.TodoService

	repo repositories.TodoRepository
}

// NewContainer creates a new dependency injection container. The store
// backend is selected from configuration; the resulting repository and
// service are shared by all requests in the process.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	repo, err := newTodoRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create todo repository: %w", err)
	}

	return &Container{
		Config:      cfg,
		TodoService: services.NewTodoService(repo),
		repo:        repo,
	}, nil
}

// newTodoRepository selects the repository implementation for the configured
// store backend
func newTodoRepository(ctx context.Context, cfg *config.Config) (repositories.TodoRepository, error) {
	switch cfg.Store.Backend {
	case "dynamodb":
		client, err := dynamo.NewClient(ctx, cfg.Store.Region, cfg.Store.Endpoint)
		if err != nil {
			return nil, err
		}
		return dynamo.NewTodoRepository(client, cfg.Store.TableName), nil

	case "sqlite":
		return sqlite.NewTodoRepository(cfg.Store.SQLitePath)

	default:
		return nil, fmt.Errorf("%w: %q", repositories.ErrUnsupportedBackend, cfg.Store.Backend)
	}
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
