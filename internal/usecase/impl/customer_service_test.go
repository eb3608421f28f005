package impl

import (
	"context"
	"testing"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	mockRepo "bookstore/internal/mocks/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	customerRepo *mockRepo.MockCustomerRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)

	svc := NewCustomerService(txManager, testLogger())

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewCustomerRepository().Return(customerRepo)

	return customerServiceFixtures{
		service:      svc,
		txManager:    txManager,
		factory:      factory,
		customerRepo: customerRepo,
	}
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	fx.customerRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, customer *entity.Customer) {
			customer.ID = uuid.New()
		}).
		Return(nil)

	email := "ada@example.com"
	customer, err := fx.service.CreateCustomer(ctx, &usecase.CreateCustomerInput{
		Name:  "Ada Lovelace",
		Email: &email,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, customer.ID)
	assert.Zero(t, customer.MembershipPts)
	assert.Zero(t, customer.ReaderScore)
}

func TestCustomerService_GetCustomer(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.customerRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Customer{
			ID:            id,
			Name:          "Ada Lovelace",
			MembershipPts: 42,
			PurchaseHistory: []entity.PurchaseRecord{
				{SaleID: uuid.New(), TotalAmount: 29.97},
			},
		}, nil)

	customer, err := fx.service.GetCustomer(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 42, customer.MembershipPts)
	assert.Len(t, customer.PurchaseHistory, 1)
}

func TestCustomerService_GetCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.customerRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrCustomerNotFound)

	_, err := fx.service.GetCustomer(ctx, id)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CUSTOMER_NOT_FOUND", appErr.ErrorCode())
}

func TestCustomerService_ListCustomers(t *testing.T) {
	fx := createTestCustomerService(t)
	ctx := context.Background()

	fx.customerRepo.EXPECT().
		List(ctx, 2, 10).
		Return([]*entity.Customer{{Name: "Ada Lovelace"}}, int64(11), nil)

	customers, pageInfo, err := fx.service.ListCustomers(ctx, usecase.Pagination{Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, int64(11), pageInfo.Total)
	assert.Equal(t, 2, pageInfo.Pages)
}
