package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCustomerInput carries the fields for a new customer.
type CreateCustomerInput struct {
	Name  string  `json:"name" validate:"required"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// CustomerUsecase manages customer records. Loyalty counters are written only
// by the checkout path, never directly.
type CustomerUsecase interface {
	// CreateCustomer registers a new customer with zeroed loyalty counters.
	CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)

	// GetCustomer retrieves a customer with their purchase history.
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// ListCustomers retrieves customer pages ordered by name.
	ListCustomers(ctx context.Context, pagination Pagination) ([]*entity.Customer, *PageInfo, error)
}
