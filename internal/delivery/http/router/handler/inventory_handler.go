package handler

import (
	"log/slog"
	"net/http"

	"bookstore/internal/delivery/http/response"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// InventoryHandler holds dependencies for inventory reporting handlers.
type InventoryHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// Status handles the catalog-wide inventory counters request.
func (h *InventoryHandler) Status(c echo.Context) error {
	status, err := h.uc.InventoryStatus(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// Reorder handles the below-reorder-level listing.
func (h *InventoryHandler) Reorder(c echo.Context) error {
	books, page, err := h.uc.ReorderList(c.Request().Context(), paginationFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, books, page, "")
}

// LowStock handles the low-stock listing.
func (h *InventoryHandler) LowStock(c echo.Context) error {
	books, page, err := h.uc.LowStock(c.Request().Context(), paginationFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, books, page, "")
}
