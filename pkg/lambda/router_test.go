package lambda

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list-api/internal/models"
	"todo-list-api/internal/repositories"
	"todo-list-api/internal/services"
)

// stubService validates like the real service but stores nothing
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

func routeEvent(t *testing.T, router *Router, event events.APIGatewayProxyRequest) *Response {
	t.Helper()
	return router.Route(context.Background(), FromAPIGatewayRequest(event))
}

func TestRouteCreateTodo(t *testing.T) {
	router := NewRouter(&stubService{})

	resp := routeEvent(t, router, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/todos",
		Body:       `{"text": "buy milk"}`,
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])

	var todo models.Todo
	require.NoError(t, json.Unmarshal(resp.Body, &todo))
	assert.Equal(t, "buy milk", todo.Text)
	assert.False(t, todo.Checked)
	assert.NotEmpty(t, todo.ID)
	assert.NotZero(t, todo.CreatedAt)
	assert.Equal(t, todo.CreatedAt, todo.UpdatedAt)
}

func TestRouteCreateTodoMissingText(t *testing.T) {
	router := NewRouter(&stubService{})

	resp := routeEvent(t, router, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/todos",
		Body:       `{}`,
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorBody
	require.NoError(t, json.Unmarshal(resp.Body, &body))
	assert.Equal(t, "Validation failed", body.Error)
	assert.Equal(t, "text", body.Field)
}

func TestRouteCreateTodoMalformedBody(t *testing.T) {
	router := NewRouter(&stubService{})

	resp := routeEvent(t, router, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/todos",
		Body:       `{"text":`,
	})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouteUpdateTodo(t *testing.T) {
	router := NewRouter(&stubService{})

	resp := routeEvent(t, router, events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodPut,
		Path:           "/todos/abc",
		PathParameters: map[string]string{"id": "abc"},
		Body:           `{"text": "buy milk", "checked": true}`,
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var todo models.Todo
	require.NoError(t, json.Unmarshal(resp.Body, &todo))
	assert.Equal(t, "abc", todo.ID)
	assert.Equal(t, "buy milk", todo.Text)
	assert.True(t, todo.Checked)
	assert.Greater(t, todo.UpdatedAt, todo.CreatedAt)
}

func TestRouteUpdateTodoMissingChecked(t *testing.T) {
	router := NewRouter(&stubService{})

	resp := routeEvent(t, router, events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodPut,
		Path:           "/todos/abc",
		PathParameters: map[string]string{"id": "abc"},
		Body:           `{"text": "buy milk"}`,
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body errorBody
	require.NoError(t, json.Unmarshal(resp.Body, &body))
	assert.Equal(t, "checked", body.Field)
}

func TestRouteUpdateTodoNotFound(t *testing.T) {
	router := NewRouter(&stubService{updateErr: repositories.NotFoundError("update", "abc")})

	resp := routeEvent(t, router, events.APIGatewayProxyRequest{
		HTTPMethod:     http.MethodPut,
		Path:           "/todos/abc",
		PathParameters: map[string]string{"id": "abc"},
		Body:           `{"text": "buy milk", "checked": true}`,
	})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouteUnknownPath(t *testing.T) {
	router := NewRouter(&stubService{})

	resp := routeEvent(t, router, events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/todos",
	})

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIGatewayRoundTrip(t *testing.T) {
	resp := &Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"ok": true}`),
	}

	out := ToAPIGatewayResponse(resp)
	assert.Equal(t, http.StatusOK, out.StatusCode)
	assert.Equal(t, `{"ok": true}`, out.Body)
	assert.Equal(t, "application/json", out.Headers["Content-Type"])
}
