// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dnotes/internal/delivery/api/middleware"
	"dnotes/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileImagePath is the upload route; it gets a larger body limit than the rest of the API.
const ProfileImagePath = "/api/user/profile-image"

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ClientHandler       *handler.ClientHandler
	ProjectHandler      *handler.ProjectHandler
	DeliveryNoteHandler *handler.DeliveryNoteHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	clientHandler       *handler.ClientHandler
	projectHandler      *handler.ProjectHandler
	deliveryNoteHandler *handler.DeliveryNoteHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		clientHandler:       params.ClientHandler,
		projectHandler:      params.ProjectHandler,
		deliveryNoteHandler: params.DeliveryNoteHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public account routes
	public := api.Group("/user")
	{
		public.POST("/register", r.userHandler.Register)
		public.POST("/login", r.userHandler.Login)
		public.POST("/password/forgot", r.userHandler.RequestPasswordReset)
	}

	// Restore is the only route a soft-deleted account may call.
	api.PATCH("/user/restore", r.userHandler.Restore, r.authMiddleware.AuthenticateInactive)
	api.PUT("/user/password/recover", r.userHandler.RecoverPassword, r.authMiddleware.AuthenticateReset)

	userGroup := api.Group("/user", r.authMiddleware.Authenticate)
	{
		userGroup.PUT("/validation", r.userHandler.ValidateEmail)
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.PUT("/onboarding/personal", r.userHandler.OnboardPersonal)
		userGroup.PATCH("/onboarding/company", r.userHandler.OnboardCompany)
		userGroup.GET("/company", r.userHandler.GetCompany)
		userGroup.PATCH("/profile-image", r.userHandler.UpdateProfileImage)
		userGroup.GET("/dashboard", r.userHandler.Dashboard)
		userGroup.DELETE("", r.userHandler.Delete)
	}

	clients := api.Group("/clients", r.authMiddleware.Authenticate)
	{
		clients.POST("", r.clientHandler.Create)
		clients.GET("", r.clientHandler.List)
		clients.GET("/:clientId", r.clientHandler.Get)
		clients.PUT("/:clientId", r.clientHandler.Update)
		clients.DELETE("/:clientId", r.clientHandler.Delete)
		clients.PATCH("/:clientId/restore", r.clientHandler.Restore)
	}

	projects := clients.Group("/:clientId/projects")
	{
		projects.POST("", r.projectHandler.Create)
		projects.GET("", r.projectHandler.List)
		projects.GET("/:projectId", r.projectHandler.Get)
		projects.PUT("/:projectId", r.projectHandler.Update)
		projects.DELETE("/:projectId", r.projectHandler.Delete)
		projects.PATCH("/:projectId/restore", r.projectHandler.Restore)
	}

	notes := projects.Group("/:projectId/deliverynotes")
	{
		notes.POST("", r.deliveryNoteHandler.Create)
		notes.GET("", r.deliveryNoteHandler.List)
		notes.GET("/:noteId", r.deliveryNoteHandler.Get)
		notes.PUT("/:noteId", r.deliveryNoteHandler.Update)
		notes.DELETE("/:noteId", r.deliveryNoteHandler.Delete)
		notes.PATCH("/:noteId/restore", r.deliveryNoteHandler.Restore)
		notes.PATCH("/:noteId/sign", r.deliveryNoteHandler.Sign)
		notes.GET("/:noteId/pdf", r.deliveryNoteHandler.PDF)
	}
}
