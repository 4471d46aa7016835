// Package lambda adapts API Gateway trigger events to the todo service.
// It is the serverless counterpart of the Gin handlers in internal/handlers.
package lambda

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"todo-list-api/internal/models"
	"todo-list-api/internal/repositories"
	"todo-list-api/internal/services"
)

// errorBody mirrors the handlers.ErrorResponse JSON shape
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// Router dispatches trigger requests to the todo service
type Router struct {
	todoService services.TodoService
}

// NewRouter creates a router backed by the given todo service
func NewRouter(todoService services.TodoService) *Router {
	return &Router{
		todoService: todoService,
	}
}

// Route dispatches a request by method and path. Unknown routes get a 404.
func (r *Router) Route(ctx context.Context, req *Request) *Response {
	switch {
	case req.Method == http.MethodPost && req.Path == "/todos":
		return r.createTodo(ctx, req)
	case req.Method == http.MethodPut && req.PathParams["id"] != "":
		return r.updateTodo(ctx, req)
	default:
		return jsonResponse(http.StatusNotFound, errorBody{Error: "Not found"})
	}
}

func (r *Router) createTodo(ctx context.Context, req *Request) *Response {
	var body services.CreateTodoRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return jsonResponse(http.StatusBadRequest, errorBody{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
	}

	todo, err := r.todoService.CreateTodo(ctx, &body)
	if err != nil {
		return errorResponse("Failed to create todo", err)
	}

	return jsonResponse(http.StatusOK, todo)
}

func (r *Router) updateTodo(ctx context.Context, req *Request) *Response {
	var body services.UpdateTodoRequest
	if err := json.Unmarshal(req.Body, &body); err != nil {
		return jsonResponse(http.StatusBadRequest, errorBody{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
	}

	todo, err := r.todoService.UpdateTodo(ctx, req.PathParams["id"], &body)
	if err != nil {
		return errorResponse("Failed to update todo", err)
	}

	return jsonResponse(http.StatusOK, todo)
}

// errorResponse maps service errors to structured trigger responses:
// validation failures to 400, missing records to 404, everything else to 500
func errorResponse(fallback string, err error) *Response {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return jsonResponse(http.StatusBadRequest, errorBody{
			Error:   "Validation failed",
			Message: verr.Error(),
			Field:   verr.Field,
		})
	case repositories.IsNotFound(err):
		return jsonResponse(http.StatusNotFound, errorBody{
			Error:   "Todo not found",
			Message: err.Error(),
		})
	default:
		logrus.WithError(err).Error("Request failed")
		return jsonResponse(http.StatusInternalServerError, errorBody{
			Error:   fallback,
			Message: err.Error(),
		})
	}
}

func jsonResponse(status int, v interface{}) *Response {
	body, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("Failed to marshal response body")
		return &Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`{"error": "Internal server error"}`),
		}
	}

	return &Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}
