package validator

import (
	"testing"

	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_CreateBookInput_AcceptsZeroPrice(t *testing.T) {
	v := New()

	// Promotional giveaways are priced at zero and must pass validation.
	err := v.Validate(&usecase.CreateBookInput{
		Title:  "Dune",
		Author: "Frank Herbert",
		ISBN:   "9780441013593",
		Price:  0,
	})
	require.NoError(t, err)
}

func TestValidator_CreateBookInput_RejectsNegativePrice(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.CreateBookInput{
		Title:  "Dune",
		Author: "Frank Herbert",
		ISBN:   "9780441013593",
		Price:  -1.00,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestValidator_UpdateBookInput_RejectsNegativePrice(t *testing.T) {
	v := New()

	price := -0.01
	err := v.Validate(&usecase.UpdateBookInput{Price: &price})
	require.Error(t, err)
}

func TestValidator_CheckoutInput_RejectsNegativeAmounts(t *testing.T) {
	v := New()

	line := usecase.CheckoutItemInput{BookID: uuid.New(), Quantity: 1, UnitPrice: 5.00}

	err := v.Validate(&usecase.CheckoutInput{
		CashierID:   uuid.New(),
		Items:       []usecase.CheckoutItemInput{line},
		TotalAmount: -5.00,
	})
	require.Error(t, err)

	line.UnitPrice = -5.00
	err = v.Validate(&usecase.CheckoutInput{
		CashierID:   uuid.New(),
		Items:       []usecase.CheckoutItemInput{line},
		TotalAmount: 5.00,
	})
	require.Error(t, err)
}
