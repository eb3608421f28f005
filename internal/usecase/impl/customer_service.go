package impl

import (
	"context"
	"log/slog"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		txManager: txManager,
		logger:    logger,
	}
}

// CreateCustomer registers a new customer with zeroed loyalty counters.
func (srv *customerService) CreateCustomer(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:  input.Name,
		Email: input.Email,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewCustomerRepository().Create(ctx, customer)
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer with their purchase history.
func (srv *customerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCustomerRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound
			}

			return errors.Wrap(err, "failed to find customer")
		}
		customer = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// ListCustomers retrieves customer pages ordered by name.
func (srv *customerService) ListCustomers(ctx context.Context, pagination usecase.Pagination) ([]*entity.Customer, *usecase.PageInfo, error) {
	var (
		customers []*entity.Customer
		total     int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.NewCustomerRepository().List(ctx, pagination.Page, pagination.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list customers")
		}
		customers = found
		total = count

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return customers, usecase.NewPageInfo(total, pagination.Page, pagination.Limit), nil
}
