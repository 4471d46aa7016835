package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list-api/internal/models"
	"todo-list-api/internal/repositories"
)

func newTestRepository(t *testing.T) *TodoRepository {
	t.Helper()

	repo, err := NewTodoRepository(filepath.Join(t.TempDir(), "todos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestPutAndGetByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	todo := models.NewTodo("buy milk")
	require.NoError(t, repo.Put(ctx, todo))

	got, err := repo.GetByID(ctx, todo.ID)
	require.NoError(t, err)
	assert.Equal(t, todo, got)
}

func TestGetByIDMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	require.Error(t, err)
	assert.True(t, repositories.IsNotFound(err))
}

func TestUpdateOverwritesRecord(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	todo := models.NewTodo("buy milk")
	require.NoError(t, repo.Put(ctx, todo))

	newStamp := time.Now().UnixMilli() + 5
	updated, err := repo.Update(ctx, todo.ID, "buy oat milk", true, newStamp)
	require.NoError(t, err)

	assert.Equal(t, todo.ID, updated.ID)
	assert.Equal(t, "buy oat milk", updated.Text)
	assert.True(t, updated.Checked)
	assert.Equal(t, todo.CreatedAt, updated.CreatedAt)
	assert.Equal(t, newStamp, updated.UpdatedAt)
	assert.Greater(t, updated.UpdatedAt, todo.UpdatedAt)
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Update(context.Background(), "no-such-id", "x", false, 1)
	require.Error(t, err)
	assert.True(t, repositories.IsNotFound(err))

	// The conditional update must not create a partial record
	_, err = repo.GetByID(context.Background(), "no-such-id")
	assert.True(t, repositories.IsNotFound(err))
}
