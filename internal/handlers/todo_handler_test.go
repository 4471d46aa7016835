package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list-api/internal/models"
	"todo-list-api/internal/repositories"
	"todo-list-api/internal/services"
)

// stubService validates presence like the real service but stores nothing
type stubService struct {
	updateErr error
}

func (s *stubService) CreateTodo(ctx context.Context, req *services.CreateTodoRequest) (*models.Todo, error) {
	if req.Text == nil {
		return nil, models.NewValidationError("text")
	}
	return models.NewTodo(*req.Text), nil
}

func (s *stubService) UpdateTodo(ctx context.Context, id string, req *services.UpdateTodoRequest) (*models.Todo, error) {
	if req.Text == nil {
		return nil, models.NewValidationError("text")
	}
	if req.Checked == nil {
		return nil, models.NewValidationError("checked")
	}
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &models.Todo{
		ID:        id,
		Text:      *req.Text,
		Checked:   *req.Checked,
		CreatedAt: 100,
		UpdatedAt: models.NowMillis(),
	}, nil
}

func newTestRouter(svc services.TodoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, &RouterConfig{TodoService: svc})
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateTodoEndpoint(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := doRequest(router, http.MethodPost, "/api/v1/todos", `{"text": "buy milk"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var todo models.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todo))
	assert.Equal(t, "buy milk", todo.Text)
	assert.False(t, todo.Checked)
	assert.NotEmpty(t, todo.ID)
	assert.NotZero(t, todo.CreatedAt)
	assert.NotZero(t, todo.UpdatedAt)
}

func TestCreateTodoEndpointMissingText(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := doRequest(router, http.MethodPost, "/api/v1/todos", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Equal(t, "text", resp.Field)
}

func TestCreateTodoEndpointMalformedBody(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := doRequest(router, http.MethodPost, "/api/v1/todos", `{"text":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateTodoEndpoint(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := doRequest(router, http.MethodPut, "/api/v1/todos/abc", `{"text": "buy milk", "checked": true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var todo models.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todo))
	assert.Equal(t, "abc", todo.ID)
	assert.True(t, todo.Checked)
}

func TestUpdateTodoEndpointMissingChecked(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := doRequest(router, http.MethodPut, "/api/v1/todos/abc", `{"text": "buy milk"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "checked", resp.Field)
}

func TestUpdateTodoEndpointNotFound(t *testing.T) {
	router := newTestRouter(&stubService{updateErr: repositories.NotFoundError("update", "abc")})

	w := doRequest(router, http.MethodPut, "/api/v1/todos/abc", `{"text": "buy milk", "checked": true}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Todo not found", resp.Error)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := doRequest(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}
