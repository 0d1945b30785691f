// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	AuthHandler    *handler.AuthHandler
	CartHandler    *handler.CartHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	authHandler    *handler.AuthHandler
	cartHandler    *handler.CartHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		authHandler:    params.AuthHandler,
		cartHandler:    params.CartHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.authMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)

	// Session routes
	e.POST("/login", r.authHandler.Login)
	e.POST("/login/google", r.authHandler.LoginWithGoogle)
	e.GET("/logout", r.authHandler.Logout, auth)
	e.GET("/session", r.authHandler.Session, auth)

	// User directory; registration is public
	usersGroup := e.Group("/users")
	{
		usersGroup.POST("", r.userHandler.Register)
		usersGroup.GET("/:email", r.userHandler.GetByEmail, auth)
		usersGroup.PUT("/:email", r.userHandler.UpdateByEmail, auth)
		usersGroup.DELETE("/:email", r.userHandler.DeleteByEmail, auth)
		usersGroup.GET("/:user_id/cart", r.userHandler.GetCart, auth)
		usersGroup.GET("/:user_id/orders", r.userHandler.ListOrders, auth)
		usersGroup.GET("/:user_id/payment-methods", r.userHandler.ListPaymentMethods, auth)
		usersGroup.POST("/:user_id/payment-methods", r.userHandler.AddPaymentMethod, auth)
	}

	// Catalog reads are public; writes need a session
	productsGroup := e.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/categories", r.productHandler.ListCategories)
		productsGroup.GET("/category/:category", r.productHandler.ListByCategory)
		productsGroup.GET("/:product_id", r.productHandler.GetProduct)
		productsGroup.PUT("/:product_id", r.productHandler.UpdateProduct, auth)
	}

	cartGroup := e.Group("/cart")
	cartGroup.Use(auth)
	{
		cartGroup.POST("", r.cartHandler.CreateCart)
		cartGroup.GET("/:user_id", r.cartHandler.GetCartByUser)
		cartGroup.DELETE("/:user_id", r.cartHandler.DeleteCartByUser)
		cartGroup.POST("/:cart_id/items", r.cartHandler.AddItem)
		cartGroup.GET("/:cart_id/items", r.cartHandler.ListItems)
		cartGroup.PUT("/:cart_id/items/:product_id", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/:cart_id/items/:product_id", r.cartHandler.RemoveItem)
		cartGroup.POST("/:cart_id/checkout", r.cartHandler.Checkout)
	}

	ordersGroup := e.Group("/orders")
	ordersGroup.Use(auth)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("/user/:user_id", r.orderHandler.ListUserOrders)
		ordersGroup.GET("/:order_id", r.orderHandler.GetOrder)
		ordersGroup.GET("/:order_id/items", r.orderHandler.GetOrderItems)
		ordersGroup.GET("/:order_id/receipt", r.orderHandler.Receipt)
	}
}
