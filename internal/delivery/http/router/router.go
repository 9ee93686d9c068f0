// Package router contains routing setup for the HTTP delivery.
package router

import (
	"bhwconnect/config"
	"bhwconnect/internal/delivery/http/middleware"
	"bhwconnect/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config          *config.Config
	UserHandler     *handler.UserHandler
	AreaHandler     *handler.AreaHandler
	ResidentHandler *handler.ResidentHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg             *config.Config
	userHandler     *handler.UserHandler
	areaHandler     *handler.AreaHandler
	residentHandler *handler.ResidentHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:             params.Config,
		userHandler:     params.UserHandler,
		areaHandler:     params.AreaHandler,
		residentHandler: params.ResidentHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.cfg.Metrics != nil && r.cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// User routes. Registration and login stay public; session-bound routes
	// go through the auth middleware.
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.POST("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)
		userGroup.GET("/me", r.userHandler.Me, r.authMiddleware.Authenticate)
		userGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.Authenticate)
		userGroup.GET("/:id", r.userHandler.GetUser, r.authMiddleware.Authenticate)
		userGroup.GET("/bhws/:bhwId/area", r.areaHandler.BhwAreas)
	}

	// Area routes
	areaGroup := e.Group("/areas")
	{
		areaGroup.POST("", r.areaHandler.CreateArea)
	}

	// Resident routes
	residentGroup := e.Group("/residents")
	{
		residentGroup.POST("", r.residentHandler.CreateResident)
		residentGroup.GET("/area/:areaId", r.residentHandler.AreaResidents)
		residentGroup.PUT("/:id", r.residentHandler.UpdateResident)
		residentGroup.DELETE("/:id", r.residentHandler.DeleteResident)
	}
}
