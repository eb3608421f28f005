package handler

import (
	"log/slog"
	"net/http"

	"bookstore/internal/delivery/http/response"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookHandler holds dependencies for catalog-related handlers.
type BookHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewBookHandler is the constructor for BookHandler, injected by Fx.
func NewBookHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *BookHandler {
	return &BookHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles adding a book to the catalog.
func (h *BookHandler) Create(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateBookInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	book, err := h.uc.CreateBook(c.Request().Context(), &input, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, book, "Book created successfully")
}

// Get handles a single book lookup.
func (h *BookHandler) Get(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	book, err := h.uc.GetBook(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "")
}

// List handles paginated catalog listings.
func (h *BookHandler) List(c echo.Context) error {
	books, page, err := h.uc.ListBooks(c.Request().Context(), paginationFromQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Page(c, books, page, "")
}

// Update handles a partial catalog update.
func (h *BookHandler) Update(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateBookInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid book input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	book, err := h.uc.UpdateBook(c.Request().Context(), id, &input, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, book, "Book updated successfully")
}

// Delete handles removing a book from the catalog.
func (h *BookHandler) Delete(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteBook(c.Request().Context(), id, actor); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Book deleted successfully")
}
