// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"backoffice/internal/delivery/http/middleware"
	"backoffice/internal/delivery/http/router/handler"
	"backoffice/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	CustomerHandler *handler.CustomerHandler
	OrderHandler    *handler.OrderHandler
	DiscountHandler *handler.DiscountHandler
	TaxHandler      *handler.TaxHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// Router holds all the handlers that need to be registered.
type Router struct {
	catalogHandler  *handler.CatalogHandler
	customerHandler *handler.CustomerHandler
	orderHandler    *handler.OrderHandler
	discountHandler *handler.DiscountHandler
	taxHandler      *handler.TaxHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *Router {
	return &Router{
		catalogHandler:  params.CatalogHandler,
		customerHandler: params.CustomerHandler,
		orderHandler:    params.OrderHandler,
		discountHandler: params.DiscountHandler,
		taxHandler:      params.TaxHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *Router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	admin := e.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))

	admin.GET("/catalog", r.catalogHandler.LoadCatalog)

	categories := admin.Group("/categories")
	{
		categories.GET("", r.catalogHandler.ListCategories)
		categories.POST("", r.catalogHandler.CreateCategory)
		categories.PUT("/:id", r.catalogHandler.UpdateCategory)
		categories.DELETE("/:id", r.catalogHandler.DeleteCategory)
		categories.GET("/:id/subcategories", r.catalogHandler.ListSubcategories)
		categories.POST("/:id/subcategories", r.catalogHandler.CreateSubcategory)
	}

	subcategories := admin.Group("/subcategories")
	{
		subcategories.PUT("/:id", r.catalogHandler.UpdateSubcategory)
		subcategories.DELETE("/:id", r.catalogHandler.DeleteSubcategory)
	}

	products := admin.Group("/products")
	{
		products.GET("", r.catalogHandler.ListProducts)
		products.POST("", r.catalogHandler.CreateProduct)
	}

	customers := admin.Group("/customers")
	{
		customers.GET("", r.customerHandler.ListCustomers)
		customers.POST("", r.customerHandler.CreateCustomer)
		customers.POST("/bulk-delete", r.customerHandler.BulkDelete)
		customers.GET("/:id", r.customerHandler.GetCustomer)
		customers.PATCH("/:id/notes", r.customerHandler.UpdateNotes)
		customers.DELETE("/:id", r.customerHandler.DeleteCustomer)
	}
	admin.PUT("/newsletter", r.customerHandler.SetNewsletter)

	orders := admin.Group("/orders")
	{
		orders.GET("", r.orderHandler.ListOrders)
		orders.PATCH("/:id/status", r.orderHandler.UpdateStatus)
	}

	discounts := admin.Group("/discount-codes")
	{
		discounts.GET("", r.discountHandler.ListDiscountCodes)
		discounts.POST("", r.discountHandler.CreateDiscountCode)
		discounts.POST("/apply", r.discountHandler.ApplyDiscountCode)
		discounts.PATCH("/:id/active", r.discountHandler.SetActive)
		discounts.DELETE("/:id", r.discountHandler.DeleteDiscountCode)
	}

	taxRates := admin.Group("/tax-rates")
	{
		taxRates.GET("", r.taxHandler.ListTaxRates)
		taxRates.PUT("", r.taxHandler.UpsertTaxRate)
		taxRates.DELETE("/:country", r.taxHandler.DeleteTaxRate)
	}

	admin.GET("/settings", r.taxHandler.GetSettings)
	admin.PUT("/settings", r.taxHandler.UpdateSettings)
}
