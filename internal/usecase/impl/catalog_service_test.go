package impl

import (
	"context"
	"testing"

	"bookstore/config"
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

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service   usecase.CatalogUsecase
	txManager *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	bookRepo  *mockRepo.MockBookRepository
	auditRepo *mockRepo.MockAuditLogRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	bookRepo := mockRepo.NewMockBookRepository(t)
	auditRepo := mockRepo.NewMockAuditLogRepository(t)

	logger := testLogger()
	cfg := &config.InventoryConfig{LowStockThreshold: 5}
	svc := NewCatalogService(txManager, NewAuditService(auditRepo, logger), cfg, logger)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
	factory.EXPECT().NewBookRepository().Return(bookRepo)

	return catalogServiceFixtures{
		service:   svc,
		txManager: txManager,
		factory:   factory,
		bookRepo:  bookRepo,
		auditRepo: auditRepo,
	}
}

func TestCatalogService_CreateBook(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	actor := uuid.New()

	fx.bookRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Book")).
		Run(func(_ context.Context, book *entity.Book) {
			book.ID = uuid.New()
		}).
		Return(nil)

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, logEntry *entity.AuditLogEntry) {
			assert.Equal(t, entity.AuditActionInsert, logEntry.Action)
			assert.Equal(t, actor, logEntry.PerformedBy)
			assert.Equal(t, "Dune", logEntry.AfterValue["title"])
		}).
		Return(nil)

	book, err := fx.service.CreateBook(ctx, &usecase.CreateBookInput{
		Title:         "Dune",
		Author:        "Frank Herbert",
		ISBN:          "9780441013593",
		Price:         12.50,
		StockQuantity: 10,
		ReorderLevel:  3,
	}, actor)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, book.ID)
	assert.Equal(t, "Dune", book.Title)
}

func TestCatalogService_CreateBook_DuplicateISBN(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.bookRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Book")).
		Return(domainerrors.ErrISBNAlreadyExists)

	_, err := fx.service.CreateBook(ctx, &usecase.CreateBookInput{
		Title: "Dune",
		ISBN:  "9780441013593",
		Price: 12.50,
	}, uuid.New())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ISBN_ALREADY_EXISTS", appErr.ErrorCode())
}

func TestCatalogService_GetBook_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.bookRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrBookNotFound)

	_, err := fx.service.GetBook(ctx, id)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "BOOK_NOT_FOUND", appErr.ErrorCode())
}

func TestCatalogService_UpdateBook_PartialFields(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	existing := &entity.Book{
		ID:           id,
		Title:        "Dune",
		Author:       "Frank Herbert",
		ISBN:         "9780441013593",
		Price:        12.50,
		ReorderLevel: 3,
	}

	fx.bookRepo.EXPECT().
		FindByID(ctx, id).
		Return(existing, nil)
	fx.bookRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Book")).
		Run(func(_ context.Context, book *entity.Book) {
			assert.Equal(t, 15.00, book.Price)
			// Untouched fields carry through.
			assert.Equal(t, "Frank Herbert", book.Author)
		}).
		Return(nil)

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, logEntry *entity.AuditLogEntry) {
			assert.Equal(t, 12.50, logEntry.BeforeValue["price"])
			assert.Equal(t, 15.00, logEntry.AfterValue["price"])
		}).
		Return(nil)

	price := 15.00
	book, err := fx.service.UpdateBook(ctx, id, &usecase.UpdateBookInput{Price: &price}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 15.00, book.Price)
}

func TestCatalogService_DeleteBook(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.bookRepo.EXPECT().
		FindByID(ctx, id).
		Return(&entity.Book{ID: id, Title: "Dune", Price: 12.50}, nil)
	fx.bookRepo.EXPECT().
		Delete(ctx, id).
		Return(nil)

	fx.auditRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).
		Run(func(_ context.Context, logEntry *entity.AuditLogEntry) {
			assert.Equal(t, entity.AuditActionDelete, logEntry.Action)
			assert.Equal(t, "Dune", logEntry.BeforeValue["title"])
			assert.Nil(t, logEntry.AfterValue)
		}).
		Return(nil)

	require.NoError(t, fx.service.DeleteBook(ctx, id, uuid.New()))
}

func TestCatalogService_LowStock_UsesConfiguredThreshold(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.bookRepo.EXPECT().
		FindLowStock(ctx, 5, 1, 20).
		Return([]*entity.Book{{Title: "Dune", StockQuantity: 2}}, int64(1), nil)

	books, pageInfo, err := fx.service.LowStock(ctx, usecase.Pagination{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, int64(1), pageInfo.Total)
	assert.Equal(t, 1, pageInfo.Pages)
}

func TestCatalogService_InventoryStatus(t *testing.T) {
	fx := createTestCatalogService(t)
	ctx := context.Background()

	fx.bookRepo.EXPECT().
		InventoryStatus(ctx).
		Return(&repository.InventoryStatus{
			TotalBooks:          12,
			InStockBooks:        10,
			OutOfStockBooks:     2,
			BelowReorderBooks:   3,
			TotalInventoryValue: 2987.60,
		}, nil)

	status, err := fx.service.InventoryStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(12), status.TotalBooks)
	assert.Equal(t, int64(3), status.BelowReorderBooks)
}
