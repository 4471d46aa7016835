// Package sqlite implements the todo repository on a local SQLite database.
// It backs the server deployment mode during development, where a DynamoDB
// table (or a local stand-in for one) is not available.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"todo-list-api/internal/models"
	"todo-list-api/internal/repositories"
)

// TodoRepository is a SQLite-backed implementation of repositories.TodoRepository
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository opens the database at path and applies pending schema
// migrations
func NewTodoRepository(path string) (*TodoRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	return &TodoRepository{db: db}, nil
}

// Put inserts a new todo record
func (r *TodoRepository) Put(ctx context.Context, todo *models.Todo) error {
	const query = `
		INSERT INTO todos (id, text, checked, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		todo.ID, todo.Text, todo.Checked, todo.CreatedAt, todo.UpdatedAt)
	if err != nil {
		return repositories.NewRepositoryError("put", todo.ID, err)
	}

	return nil
}

// Update overwrites text, checked and updatedAt for an existing record and
// returns the resulting record. A missing ID yields a not-found error.
func (r *TodoRepository) Update(ctx context.Context, id, text string, checked bool, updatedAt int64) (*models.Todo, error) {
	const query = `
		UPDATE todos SET text = ?, checked = ?, updated_at = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, text, checked, updatedAt, id)
	if err != nil {
		return nil, repositories.NewRepositoryError("update", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, repositories.NewRepositoryError("update", id, err)
	}
	if affected == 0 {
		return nil, repositories.NotFoundError("update", id)
	}

	return r.GetByID(ctx, id)
}

// GetByID retrieves a todo by its ID
func (r *TodoRepository) GetByID(ctx context.Context, id string) (*models.Todo, error) {
	const query = `
		SELECT id, text, checked, created_at, updated_at
		FROM todos WHERE id = ?`

	var todo models.Todo
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&todo.ID, &todo.Text, &todo.Checked, &todo.CreatedAt, &todo.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.NotFoundError("get", id)
	}
	if err != nil {
		return nil, repositories.NewRepositoryError("get", id, err)
	}

	return &todo, nil
}

// Close closes the underlying database
func (r *TodoRepository) Close() error {
	return r.db.Close()
}
