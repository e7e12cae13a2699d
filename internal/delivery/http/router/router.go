// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"zapshift/internal/delivery/http/middleware"
	"zapshift/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	ParcelHandler    *handler.ParcelHandler
	PaymentHandler   *handler.PaymentHandler
	RiderHandler     *handler.RiderHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	parcelHandler    *handler.ParcelHandler
	paymentHandler   *handler.PaymentHandler
	riderHandler     *handler.RiderHandler
	authMiddleware   *middleware.AuthMiddleware
	loggerMiddleware *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		parcelHandler:    params.ParcelHandler,
		paymentHandler:   params.PaymentHandler,
		riderHandler:     params.RiderHandler,
		authMiddleware:   params.AuthMiddleware,
		loggerMiddleware: params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User routes; registration stays open so freshly signed-in clients
	// can create their account record.
	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.RegisterUser)
		userGroup.GET("", r.userHandler.ListUsers, r.authMiddleware.Authenticate)
		userGroup.GET("/:email", r.userHandler.GetUserByEmail, r.authMiddleware.Authenticate)
	}

	// Parcel routes; submission and browsing stay open for the booking
	// flow, deletion requires a signed-in caller.
	parcelGroup := e.Group("/parcels")
	{
		parcelGroup.POST("", r.parcelHandler.CreateParcel)
		parcelGroup.GET("", r.parcelHandler.ListParcels)
		parcelGroup.GET("/:id", r.parcelHandler.GetParcel)
		parcelGroup.DELETE("/:id", r.parcelHandler.DeleteParcel, r.authMiddleware.Authenticate)
	}

	// Payment routes that require authentication
	paymentGroup := e.Group("/payments")
	paymentGroup.Use(r.authMiddleware.Authenticate)
	{
		paymentGroup.POST("/checkout-session", r.paymentHandler.CreateCheckoutSession)
		paymentGroup.PATCH("/confirm", r.paymentHandler.ConfirmPayment)
		paymentGroup.GET("", r.paymentHandler.ListPayments)
	}

	// Rider routes; applying stays open, reviewing requires authentication
	riderGroup := e.Group("/riders")
	{
		riderGroup.POST("", r.riderHandler.ApplyRider)
		riderGroup.GET("", r.riderHandler.ListRiders, r.authMiddleware.Authenticate)
		riderGroup.PATCH("/:id", r.riderHandler.SetRiderStatus, r.authMiddleware.Authenticate)
		riderGroup.DELETE("/:id", r.riderHandler.DeleteRider, r.authMiddleware.Authenticate)
	}
}
