// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vows/internal/delivery/http/middleware"
	"vows/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	WeddingHandler *handler.WeddingHandler
	InviteHandler  *handler.InviteHandler
	GuestHandler   *handler.GuestHandler
	ExpenseHandler *handler.ExpenseHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	weddingHandler *handler.WeddingHandler
	inviteHandler  *handler.InviteHandler
	guestHandler   *handler.GuestHandler
	expenseHandler *handler.ExpenseHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		weddingHandler: params.WeddingHandler,
		inviteHandler:  params.InviteHandler,
		guestHandler:   params.GuestHandler,
		expenseHandler: params.ExpenseHandler,
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
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.PUT("/profile", r.userHandler.UpdateProfile)
	}

	// Wedding routes and their nested resources
	weddingGroup := e.Group("/weddings")
	weddingGroup.Use(r.authMiddleware.Authenticate)
	{
		weddingGroup.POST("", r.weddingHandler.Create)
		weddingGroup.GET("", r.weddingHandler.List)
		weddingGroup.GET("/:id", r.weddingHandler.Get)
		weddingGroup.PUT("/:id", r.weddingHandler.Update)
		weddingGroup.DELETE("/:id", r.weddingHandler.Delete)

		weddingGroup.POST("/:id/invites", r.inviteHandler.Issue)
		weddingGroup.GET("/:id/invites", r.inviteHandler.List)

		weddingGroup.POST("/:id/guests", r.guestHandler.Add)
		weddingGroup.GET("/:id/guests", r.guestHandler.List)

		weddingGroup.POST("/:id/expenses", r.expenseHandler.Create)
		weddingGroup.GET("/:id/expenses", r.expenseHandler.List)
	}

	// Invite redemption routes addressed by token
	inviteGroup := e.Group("/invites")
	inviteGroup.Use(r.authMiddleware.Authenticate)
	{
		inviteGroup.POST("/accept", r.inviteHandler.Accept)
		inviteGroup.GET("/:token/qr", r.inviteHandler.QR)
	}

	// Guest routes addressed by guest ID
	guestGroup := e.Group("/guests")
	guestGroup.Use(r.authMiddleware.Authenticate)
	{
		guestGroup.PUT("/:id", r.guestHandler.Update)
		guestGroup.DELETE("/:id", r.guestHandler.Delete)
	}

	// Expense routes addressed by expense ID
	expenseGroup := e.Group("/expenses")
	expenseGroup.Use(r.authMiddleware.Authenticate)
	{
		expenseGroup.GET("/:id", r.expenseHandler.Get)
		expenseGroup.DELETE("/:id", r.expenseHandler.Delete)
		expenseGroup.POST("/:id/payments", r.expenseHandler.RecordPayment)
		expenseGroup.DELETE("/:id/payments/:paymentID", r.expenseHandler.DeletePayment)
	}
}
