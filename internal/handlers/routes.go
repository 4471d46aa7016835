package handlers

import (
	"github.com/gin-gonic/gin"

	"todo-list-api/internal/middleware"
	"todo-list-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	TodoService services.TodoService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	todoHandler := NewTodoHandler(config.TodoService)

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "todo-list-api",
			"version": "1.0.0",
		})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		todos := v1.Group("/todos")
		{
			todos.POST("", todoHandler.CreateTodo)
			todos.PUT("/:id", todoHandler.UpdateTodo)
		}
	}
}
