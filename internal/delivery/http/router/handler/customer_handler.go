package handler

import (
	"log/slog"
	"net/http"

	"bookstore/internal/delivery/http/response"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for customer-related handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles registering a new customer.
func (h *CustomerHandler) Create(c echo.Context) error {
	var input usecase.CreateCustomerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	customer, err := h.uc.CreateCustomer(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, customer, "Customer created successfully")
}

// Get handles a single customer lookup including purchase history.
func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	customer, err := h.uc.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "")
}

// List handles paginated customer listings.
func (h *CustomerHandler) List(c echo.Context) error {
	customers, page, err := h.uc.ListCustomers(c.Request().Context(), paginationFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, customers, page, "")
}
