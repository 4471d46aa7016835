package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-list-api/internal/services"
)

// TodoHandler handles todo-related HTTP requests
type TodoHandler struct {
	todoService services.TodoService
}

// NewTodoHandler creates a new todo handler
func NewTodoHandler(todoService services.TodoService) *TodoHandler {
	return &TodoHandler{
		todoService: todoService,
	}
}

// @Summary Create a todo item
// @Description Create a new todo item with the given text
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body services.CreateTodoRequest true "Todo text"
// @Success 200 {object} models.Todo
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /todos [post]
func (h *TodoHandler) CreateTodo(c *gin.Context) {
	var req services.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), &req)
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			c.JSON(http.StatusBadRequest, validationErrorResponse(verr))
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to create todo",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// @Summary Update a todo item
// @Description Replace text and checked of an existing todo item
// @Tags todos
// @Accept json
// @Produce json
// @Param id path string true "Todo ID"
// @Param todo body services.UpdateTodoRequest true "Replacement todo data"
// @Success 200 {object} models.Todo
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /todos/{id} [put]
func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Message: "Todo ID is required",
		})
		return
	}

	var req services.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request body",
			Message: err.Error(),
		})
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), id, &req)
	if err != nil {
		if verr, ok := asValidationError(err); ok {
			c.JSON(http.StatusBadRequest, validationErrorResponse(verr))
			return
		}
		if isNotFoundError(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error:   "Todo not found",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to update todo",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, todo)
}
