package repository

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSaleNotFound is a domain-specific error returned when a sale is not found.
var ErrSaleNotFound = errors.New("sale not found")

// SaleFilter narrows sale listings.
type SaleFilter struct {
	// CustomerID restricts results to one customer when set.
	CustomerID *uuid.UUID
	// StartDate and EndDate bound the sale creation time when set.
	StartDate *time.Time
	EndDate   *time.Time
}

// SaleRepository defines the standard operations for sale persistence. Sales are
// immutable after creation except for the guarded status transition.
type SaleRepository interface {
	// Create persists a new sale with its line items.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a single sale with its items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// List retrieves sales newest-first with the total count.
	List(ctx context.Context, filter SaleFilter, page, limit int) ([]*entity.Sale, int64, error)

	// UpdateStatus transitions a sale from one status to another. The transition
	// is guarded: it reports false without error when the sale is not currently
	// in the expected status, which prevents a cancellation from applying twice.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.SaleStatus) (bool, error)
}
