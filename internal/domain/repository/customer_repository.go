package repository

import (
	"context"
	"errors"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// LoyaltyAccrual describes the additive loyalty mutation for one completed sale.
type LoyaltyAccrual struct {
	// PointsEarned is added to the customer's membership points.
	PointsEarned int
	// ReaderScoreDelta is added to the customer's reader score.
	ReaderScoreDelta int
	// Purchase is appended to the customer's purchase history.
	Purchase entity.PurchaseRecord
}

// CustomerRepository defines the standard operations for customer persistence.
type CustomerRepository interface {
	// Create persists a new customer entity to the storage.
	Create(ctx context.Context, customer *entity.Customer) error

	// FindByID retrieves a single customer with their purchase history.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// List retrieves customers ordered by name with the total count.
	List(ctx context.Context, page, limit int) ([]*entity.Customer, int64, error)

	// ApplyLoyalty applies an additive loyalty accrual to a customer: increments
	// are pushed down as SQL arithmetic, never read-modify-write. Returns
	// ErrCustomerNotFound when the customer does not exist.
	ApplyLoyalty(ctx context.Context, id uuid.UUID, accrual *LoyaltyAccrual) error
}
