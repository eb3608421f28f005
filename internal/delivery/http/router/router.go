// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bookstore/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SaleHandler      *handler.SaleHandler
	BookHandler      *handler.BookHandler
	CustomerHandler  *handler.CustomerHandler
	InventoryHandler *handler.InventoryHandler
	PricingHandler   *handler.PricingHandler
	AuditHandler     *handler.AuditHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	saleHandler      *handler.SaleHandler
	bookHandler      *handler.BookHandler
	customerHandler  *handler.CustomerHandler
	inventoryHandler *handler.InventoryHandler
	pricingHandler   *handler.PricingHandler
	auditHandler     *handler.AuditHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		saleHandler:      params.SaleHandler,
		bookHandler:      params.BookHandler,
		customerHandler:  params.CustomerHandler,
		inventoryHandler: params.InventoryHandler,
		pricingHandler:   params.PricingHandler,
		auditHandler:     params.AuditHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Sale lifecycle: checkout, cancellation, lookups
	saleGroup := api.Group("/sales")
	{
		saleGroup.POST("/checkout", r.saleHandler.Checkout)
		saleGroup.POST("/:id/cancel", r.saleHandler.Cancel)
		saleGroup.GET("", r.saleHandler.List)
		saleGroup.GET("/:id", r.saleHandler.Get)
	}

	// Catalog management
	bookGroup := api.Group("/books")
	{
		bookGroup.POST("", r.bookHandler.Create)
		bookGroup.GET("", r.bookHandler.List)
		bookGroup.GET("/:id", r.bookHandler.Get)
		bookGroup.PATCH("/:id", r.bookHandler.Update)
		bookGroup.DELETE("/:id", r.bookHandler.Delete)
	}

	// Customer records
	customerGroup := api.Group("/customers")
	{
		customerGroup.POST("", r.customerHandler.Create)
		customerGroup.GET("", r.customerHandler.List)
		customerGroup.GET("/:id", r.customerHandler.Get)
	}

	// Inventory reports
	inventoryGroup := api.Group("/inventory")
	{
		inventoryGroup.GET("/status", r.inventoryHandler.Status)
		inventoryGroup.GET("/reorder", r.inventoryHandler.Reorder)
		inventoryGroup.GET("/low-stock", r.inventoryHandler.LowStock)
	}

	// Automated pricing jobs
	pricingGroup := api.Group("/pricing")
	{
		pricingGroup.POST("/dead-stock", r.pricingHandler.ApplyDeadStockDiscounts)
		pricingGroup.POST("/clear-discounts", r.pricingHandler.ClearDiscounts)
	}

	// Audit trail
	api.GET("/audit-logs", r.auditHandler.List)
}
