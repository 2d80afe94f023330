// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ecobin/internal/delivery/http/middleware"
	"ecobin/internal/delivery/http/router/handler"
	deliverymiddleware "ecobin/internal/delivery/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DisposalHandler *handler.DisposalHandler
	AuthHandler     *handler.AuthHandler
	QueryHandler    *handler.QueryHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *deliverymiddleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	disposalHandler *handler.DisposalHandler
	authHandler     *handler.AuthHandler
	queryHandler    *handler.QueryHandler

	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *deliverymiddleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		disposalHandler:     params.DisposalHandler,
		authHandler:         params.AuthHandler,
		queryHandler:        params.QueryHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Bin kiosk endpoint
	e.POST("/detect-disposal", r.disposalHandler.DetectDisposal)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public read routes
	e.GET("/users/:id/stats", r.queryHandler.UserStats)
	e.GET("/users/:id/history", r.queryHandler.UserHistory)
	e.GET("/leaderboard", r.queryHandler.Leaderboard)

	// Admin routes that require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.GET("/bins", r.queryHandler.Bins)
		adminGroup.POST("/bins/reset", r.queryHandler.ResetBin)
	}
}
