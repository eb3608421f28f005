package impl

import (
	"context"
	"testing"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/repository"
	mockRepo "bookstore/internal/mocks/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pricingServiceFixtures holds all test dependencies for pricing service tests.
type pricingServiceFixtures struct {
	service   usecase.PricingUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	bookRepo  *mockRepo.MockBookRepository
	auditRepo *mockRepo.MockAuditLogRepository
}

func createTestPricingService(t *testing.T) pricingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	bookRepo := mockRepo.NewMockBookRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)

	logger := testLogger()
	cfg := &config.PricingConfig{
		DeadStockAfter:  180 * 24 * time.Hour,
		DiscountPercent: 0.20,
	}
	svc := NewPricingService(txManager, NewAuditService(auditRepo, logger), cfg, logger)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewBookRepository().Return(bookRepo)

	return pricingServiceFixtures{
		service:   svc,
		txManager: txManager,
		factory:   factory,
		bookRepo:  bookRepo,
		auditRepo: auditRepo,
	}
}

func TestPricingService_ApplyDeadStockDiscounts(t *testing.T) {
	fx := createTestPricingService(t)
	ctx := context.Background()

	stale := &entity.Book{ID: uuid.New(), Title: "Old Atlas", Price: 49.99}
	raced := &entity.Book{ID: uuid.New(), Title: "Old Almanac", Price: 20.00}

	fx.bookRepo.EXPECT().
		FindDeadStock(ctx, mock.AnythingOfType("time.Time")).
		Run(func(_ context.Context, threshold time.Time) {
			// Threshold sits roughly DeadStockAfter in the past.
			assert.WithinDuration(t, time.Now().UTC().Add(-180*24*time.Hour), threshold, time.Minute)
		}).
		Return([]*entity.Book{stale, raced}, nil)

	fx.bookRepo.EXPECT().
		SetDiscountedPrice(ctx, stale.ID, 39.99).
		Return(true, nil)
	// A concurrent run already discounted this one; the guard misses.
	fx.bookRepo.EXPECT().
		SetDiscountedPrice(ctx, raced.ID, 16.00).
		Return(false, nil)

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, logEntry *entity.AuditLogEntry) {
			assert.Equal(t, "Book", logEntry.TargetCollection)
			assert.Equal(t, entity.AuditActionUpdate, logEntry.Action)
			assert.Equal(t, 39.99, logEntry.AfterValue["discountedPrice"])
		}).
		Return(nil).
		Times(1)

	result, err := fx.service.ApplyDeadStockDiscounts(ctx, uuid.New())
	require.NoError(t, err)

	require.Len(t, result.Discounted, 1)
	assert.Equal(t, stale.ID, result.Discounted[0].ID)
	require.NotNil(t, result.Discounted[0].DiscountedPrice)
	// 49.99 * 0.8 rounds to 39.99, not 39.992.
	assert.InDelta(t, 39.99, *result.Discounted[0].DiscountedPrice, 0.0001)
	assert.Equal(t, 1, result.Skipped)
}

func TestPricingService_ApplyDeadStockDiscounts_NoCandidates(t *testing.T) {
	fx := createTestPricingService(t)
	ctx := context.Background()

	fx.bookRepo.EXPECT().
		FindDeadStock(ctx, mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	result, err := fx.service.ApplyDeadStockDiscounts(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, result.Discounted)
	assert.Zero(t, result.Skipped)
}

func TestPricingService_ClearDiscounts(t *testing.T) {
	fx := createTestPricingService(t)
	ctx := context.Background()

	price := 39.99
	book := &entity.Book{ID: uuid.New(), Title: "Old Atlas", Price: 49.99, DiscountedPrice: &price}

	fx.bookRepo.EXPECT().
		FindDiscounted(ctx).
		Return([]*entity.Book{book}, nil)
	fx.bookRepo.EXPECT().
		ClearDiscountedPrice(ctx, book.ID).
		Return(true, nil)

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, logEntry *entity.AuditLogEntry) {
			assert.Nil(t, logEntry.AfterValue["discountedPrice"])
		}).
		Return(nil)

	result, err := fx.service.ClearDiscounts(ctx, uuid.New())
	require.NoError(t, err)
	require.Len(t, result.Cleared, 1)
	assert.Nil(t, result.Cleared[0].DiscountedPrice)
}
