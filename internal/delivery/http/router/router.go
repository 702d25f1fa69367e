// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"gwdining/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MenuHandler          *handler.MenuHandler
	CartHandler          *handler.CartHandler
	CheckoutHandler      *handler.CheckoutHandler
	SessionHandler       *handler.SessionHandler
	LocationHandler      *handler.LocationHandler
	AccommodationHandler *handler.AccommodationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	menu          *handler.MenuHandler
	cart          *handler.CartHandler
	checkout      *handler.CheckoutHandler
	session       *handler.SessionHandler
	location      *handler.LocationHandler
	accommodation *handler.AccommodationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		menu:          params.MenuHandler,
		cart:          params.CartHandler,
		checkout:      params.CheckoutHandler,
		session:       params.SessionHandler,
		location:      params.LocationHandler,
		accommodation: params.AccommodationHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Menu browsing and filtering
	menuGroup := e.Group("/menu")
	{
		menuGroup.GET("", r.menu.GetMenu)
		menuGroup.POST("/controls", r.menu.UpdateControls)
		menuGroup.POST("/search", r.menu.ApplySearch)
		menuGroup.POST("/tag", r.menu.SetTag)
	}

	// Cart
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cart.GetCart)
		cartGroup.POST("/items", r.cart.AddItem)
		cartGroup.POST("/items/quantity", r.cart.AdjustQuantity)
		cartGroup.DELETE("/items/:name", r.cart.RemoveItem)
		cartGroup.DELETE("", r.cart.ClearCart)
	}

	// Checkout flow
	checkoutGroup := e.Group("/checkout")
	{
		checkoutGroup.GET("", r.checkout.GetState)
		checkoutGroup.POST("/mode", r.checkout.SelectMode)
		checkoutGroup.POST("/proceed", r.checkout.Proceed)
		checkoutGroup.POST("/payment", r.checkout.SubmitPayment)
		checkoutGroup.POST("/finalize", r.checkout.Finalize)
		checkoutGroup.POST("/reopen", r.checkout.Reopen)
		checkoutGroup.GET("/ticket/qr", r.checkout.TicketQR)
	}

	// Login session and profile
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.session.Login)
		authGroup.POST("/logout", r.session.Logout)
		authGroup.GET("/profile", r.session.GetProfile)
	}

	// Dining locations, reviews, and directions
	locationGroup := e.Group("/locations")
	{
		locationGroup.GET("", r.location.GetDirectory)
		locationGroup.GET("/:id/reviews", r.location.GetReviews)
		locationGroup.POST("/:id/reviews", r.location.AddReview)
		locationGroup.POST("/:id/directions", r.location.GetDirections)
	}

	// Dietary accommodation requests
	accommodationGroup := e.Group("/accommodations")
	{
		accommodationGroup.POST("", r.accommodation.Submit)
		accommodationGroup.GET("", r.accommodation.List)
	}
}
