// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"todo/internal/delivery/http/middleware"
	"todo/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	TodoHandler    *handler.TodoHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	todoHandler    *handler.TodoHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		todoHandler:    params.TodoHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Todo routes; everything below requires a valid bearer token.
	todoGroup := e.Group("/todos")
	todoGroup.Use(r.authMiddleware.Authenticate)
	{
		todoGroup.GET("", r.todoHandler.List)
		todoGroup.POST("", r.todoHandler.Create)
		// Static route is registered before the :id route on purpose;
		// echo resolves it first either way, but the intent reads clearer.
		todoGroup.GET("/stats", r.todoHandler.Stats)
		todoGroup.GET("/:id", r.todoHandler.Get)
		todoGroup.PUT("/:id", r.todoHandler.Update)
		todoGroup.DELETE("/:id", r.todoHandler.Delete)
	}
}
