package usecase

import (
	"context"
	"time"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutItemInput is one requested line of a checkout. UnitPrice is the
// price the client believes it is paying; the server re-derives the effective
// price at decrement time and rejects any disagreement.
type CheckoutItemInput struct {
	BookID    uuid.UUID `json:"book_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
	UnitPrice float64   `json:"unit_price" validate:"min=0"`
}

// CheckoutInput carries a full checkout request. TotalAmount is recomputed
// server-side from the effective prices; a mismatch is a conflict, never a
// silently corrected charge.
type CheckoutInput struct {
	CashierID   uuid.UUID           `json:"cashier_id" validate:"required"`
	CustomerID  *uuid.UUID          `json:"customer_id,omitempty"`
	Items       []CheckoutItemInput `json:"items" validate:"required,min=1,dive"`
	TotalAmount float64             `json:"total_amount" validate:"min=0"`
	// RequestID propagates the request id into emitted events for tracing.
	RequestID string `json:"-"`
}

// CheckoutResult reports the outcome of a successful checkout.
type CheckoutResult struct {
	Sale *entity.Sale
	// LoyaltyApplied reports whether a loyalty accrual was recorded. It is
	// false for anonymous sales and for unknown customer ids.
	LoyaltyApplied bool
}

// SaleListInput narrows and paginates sale listings.
type SaleListInput struct {
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Pagination Pagination
}

// CheckoutUsecase coordinates the sale lifecycle: the atomic checkout
// transaction, cancellation with stock restoration, and sale lookups.
type CheckoutUsecase interface {
	// Checkout atomically records a sale: every line's stock decrement, the
	// sale document, and the loyalty accrual commit together or not at all.
	// A failure on any line leaves no trace of the attempt.
	Checkout(ctx context.Context, input *CheckoutInput) (*CheckoutResult, error)

	// CancelSale cancels a completed sale and restores the stock of each line.
	// Cancelling an already-cancelled sale is a conflict.
	CancelSale(ctx context.Context, saleID, performedBy uuid.UUID) (*entity.Sale, error)

	// GetSale retrieves a single sale with its items.
	GetSale(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error)

	// ListSales retrieves sales newest-first.
	ListSales(ctx context.Context, input *SaleListInput) ([]*entity.Sale, *PageInfo, error)
}
