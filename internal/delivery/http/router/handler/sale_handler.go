package handler

import (
	"log/slog"
	"net/http"
	"time"

	delivctx "bookstore/internal/delivery/context"
	"bookstore/internal/delivery/http/response"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SaleHandler holds dependencies for sale-related handlers.
type SaleHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler, injected by Fx.
func NewSaleHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: logger,
	}
}

// Checkout handles the checkout request.
func (h *SaleHandler) Checkout(c echo.Context) error {
	var input usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	input.RequestID = delivctx.GetRequestID(c)

	result, err := h.uc.Checkout(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result.Sale, "Sale completed successfully")
}

// Cancel handles the sale cancellation request.
func (h *SaleHandler) Cancel(c echo.Context) error {
	saleID, err := idParam(c)
	if err != nil {
		return err
	}
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	sale, err := h.uc.CancelSale(c.Request().Context(), saleID, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sale, "Sale cancelled successfully")
}

// Get handles a single sale lookup.
func (h *SaleHandler) Get(c echo.Context) error {
	saleID, err := idParam(c)
	if err != nil {
		return err
	}

	sale, err := h.uc.GetSale(c.Request().Context(), saleID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sale, "")
}

// List handles paginated sale listings with optional filters.
func (h *SaleHandler) List(c echo.Context) error {
	input := &usecase.SaleListInput{
		Pagination: paginationFromQuery(c),
	}

	if raw := c.QueryParam("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("customer_id must be a valid UUID")
		}
		input.CustomerID = &customerID
	}
	if raw := c.QueryParam("start_date"); raw != "" {
		start, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("start_date must be RFC 3339")
		}
		input.StartDate = &start
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		end, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("end_date must be RFC 3339")
		}
		input.EndDate = &end
	}

	sales, page, err := h.uc.ListSales(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, sales, page, "")
}
