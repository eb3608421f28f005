package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// DeadStockPricingResult reports one dead-stock discount run.
type DeadStockPricingResult struct {
	// Discounted lists the books that received a discount in this run.
	Discounted []*entity.Book
	// Skipped counts candidates that already carried a discount when the
	// guarded write ran, so a concurrent or repeated run changed nothing.
	Skipped int
}

// ClearDiscountsResult reports one discount-clearing run.
type ClearDiscountsResult struct {
	// Cleared lists the books whose discount was removed.
	Cleared []*entity.Book
}

// PricingUsecase runs the automated dead-stock pricing jobs. Both operations
// are idempotent: rerunning them changes nothing.
type PricingUsecase interface {
	// ApplyDeadStockDiscounts discounts every book unsold past the configured
	// threshold that does not already carry a discount.
	ApplyDeadStockDiscounts(ctx context.Context, performedBy uuid.UUID) (*DeadStockPricingResult, error)

	// ClearDiscounts removes every active discount.
	ClearDiscounts(ctx context.Context, performedBy uuid.UUID) (*ClearDiscountsResult, error)
}
