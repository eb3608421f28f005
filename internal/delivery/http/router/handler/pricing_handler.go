package handler

import (
	"log/slog"
	"net/http"

	"bookstore/internal/delivery/http/response"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PricingHandler holds dependencies for the pricing job handlers.
type PricingHandler struct {
	uc     usecase.PricingUsecase
	logger *slog.Logger
}

// NewPricingHandler is the constructor for PricingHandler, injected by Fx.
func NewPricingHandler(uc usecase.PricingUsecase, logger *slog.Logger) *PricingHandler {
	return &PricingHandler{
		uc:     uc,
		logger: logger,
	}
}

// ApplyDeadStockDiscounts triggers a dead-stock pricing run.
func (h *PricingHandler) ApplyDeadStockDiscounts(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	result, err := h.uc.ApplyDeadStockDiscounts(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result.Discounted, "Dead-stock discounts applied")
}

// ClearDiscounts triggers a discount clearing run.
func (h *PricingHandler) ClearDiscounts(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	result, err := h.uc.ClearDiscounts(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result.Cleared, "Discounts cleared")
}
