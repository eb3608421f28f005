package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrBookNotFound.WrapMessage("unknown book in checkout")

	assert.True(t, errors.Is(err, ErrBookNotFound))

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "BOOK_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "Book not found", appErr.Message())
}

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrValidationFailed.WithDetails("quantity must be at least 1")

	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
	assert.Equal(t, "quantity must be at least 1", err.Details())
	// The original keeps its empty details.
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestInsufficientStockError(t *testing.T) {
	err := NewInsufficientStockError("Dune", 2, 5)

	assert.Equal(t, http.StatusConflict, err.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_STOCK", err.ErrorCode())
	assert.Equal(t, `Insufficient stock for book "Dune". Available: 2, Requested: 5`, err.Message())
	assert.Equal(t, "Available: 2, Requested: 5", err.Details())

	wrapped := errors.Wrap(err, "failed to decrement stock")
	var stockErr *InsufficientStockError
	require.ErrorAs(t, wrapped, &stockErr)
	assert.Equal(t, 2, stockErr.Available)
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "update books")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "update books", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
