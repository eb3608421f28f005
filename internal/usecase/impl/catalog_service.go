package impl

import (
	"context"
	"log/slog"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager  repository.TransactionManager
	auditTrail usecase.AuditUsecase
	cfg        *config.InventoryConfig
	logger     *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	auditTrail usecase.AuditUsecase,
	cfg *config.InventoryConfig,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager:  txManager,
		auditTrail: auditTrail,
		cfg:        cfg,
		logger:     logger,
	}
}

// CreateBook adds a book to the catalog.
func (srv *catalogService) CreateBook(ctx context.Context, input *usecase.CreateBookInput, performedBy uuid.UUID) (*entity.Book, error) {
	book := &entity.Book{
		Title:         input.Title,
		Author:        input.Author,
		Genre:         input.Genre,
		ISBN:          input.ISBN,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		ReorderLevel:  input.ReorderLevel,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewBookRepository().Create(ctx, book)
	})
	if err != nil {
		return nil, err
	}

	bookID := book.ID
	srv.auditTrail.Record(ctx, &usecase.AuditRecord{
		TargetCollection: auditCollectionBook,
		Action:           entity.AuditActionInsert,
		PerformedBy:      performedBy,
		AfterValue: map[string]any{
			"title":         book.Title,
			"isbn":          book.ISBN,
			"price":         book.Price,
			"stockQuantity": book.StockQuantity,
		},
		TargetID: &bookID,
	})

	return book, nil
}

// GetBook retrieves a single book.
func (srv *catalogService) GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var book *entity.Book

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewBookRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound
			}

			return errors.Wrap(err, "failed to find book")
		}
		book = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return book, nil
}

// ListBooks retrieves catalog pages ordered by title.
func (srv *catalogService) ListBooks(ctx context.Context, pagination usecase.Pagination) ([]*entity.Book, *usecase.PageInfo, error) {
	var (
		books []*entity.Book
		total int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.NewBookRepository().List(ctx, pagination.Page, pagination.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list books")
		}
		books = found
		total = count

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return books, usecase.NewPageInfo(total, pagination.Page, pagination.Limit), nil
}

// UpdateBook applies a partial update to a book's catalog fields.
func (srv *catalogService) UpdateBook(ctx context.Context, id uuid.UUID, input *usecase.UpdateBookInput, performedBy uuid.UUID) (*entity.Book, error) {
	var (
		before map[string]any
		book   *entity.Book
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		found, err := bookRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound
			}

			return errors.Wrap(err, "failed to find book")
		}

		before = catalogSnapshot(found)

		if input.Title != nil {
			found.Title = *input.Title
		}
		if input.Author != nil {
			found.Author = *input.Author
		}
		if input.Genre != nil {
			found.Genre = input.Genre
		}
		if input.ISBN != nil {
			found.ISBN = *input.ISBN
		}
		if input.Price != nil {
			found.Price = *input.Price
		}
		if input.ReorderLevel != nil {
			found.ReorderLevel = *input.ReorderLevel
		}

		if err := bookRepo.Update(ctx, found); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound
			}

			return err
		}
		book = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	bookID := book.ID
	srv.auditTrail.Record(ctx, &usecase.AuditRecord{
		TargetCollection: auditCollectionBook,
		Action:           entity.AuditActionUpdate,
		PerformedBy:      performedBy,
		BeforeValue:      before,
		AfterValue:       catalogSnapshot(book),
		TargetID:         &bookID,
	})

	return book, nil
}

// DeleteBook removes a book from the catalog.
func (srv *catalogService) DeleteBook(ctx context.Context, id uuid.UUID, performedBy uuid.UUID) error {
	var before map[string]any

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		found, err := bookRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound
			}

			return errors.Wrap(err, "failed to find book")
		}
		before = catalogSnapshot(found)

		if err := bookRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrBookNotFound) {
				return domainerrors.ErrBookNotFound
			}

			return errors.Wrap(err, "failed to delete book")
		}

		return nil
	})
	if err != nil {
		return err
	}

	bookID := id
	srv.auditTrail.Record(ctx, &usecase.AuditRecord{
		TargetCollection: auditCollectionBook,
		Action:           entity.AuditActionDelete,
		PerformedBy:      performedBy,
		BeforeValue:      before,
		TargetID:         &bookID,
	})

	return nil
}

// ReorderList retrieves books whose stock has fallen below their reorder level.
func (srv *catalogService) ReorderList(ctx context.Context, pagination usecase.Pagination) ([]*entity.Book, *usecase.PageInfo, error) {
	var (
		books []*entity.Book
		total int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.NewBookRepository().FindBelowReorderLevel(ctx, pagination.Page, pagination.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list reorder books")
		}
		books = found
		total = count

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return books, usecase.NewPageInfo(total, pagination.Page, pagination.Limit), nil
}

// LowStock retrieves books at or below the configured low-stock threshold.
func (srv *catalogService) LowStock(ctx context.Context, pagination usecase.Pagination) ([]*entity.Book, *usecase.PageInfo, error) {
	var (
		books []*entity.Book
		total int64
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.NewBookRepository().FindLowStock(ctx, srv.cfg.LowStockThreshold, pagination.Page, pagination.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list low-stock books")
		}
		books = found
		total = count

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return books, usecase.NewPageInfo(total, pagination.Page, pagination.Limit), nil
}

// InventoryStatus aggregates catalog-wide inventory counters.
func (srv *catalogService) InventoryStatus(ctx context.Context) (*repository.InventoryStatus, error) {
	var status *repository.InventoryStatus

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewBookRepository().InventoryStatus(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to aggregate inventory status")
		}
		status = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return status, nil
}

// catalogSnapshot captures the audited catalog fields of a book.
func catalogSnapshot(book *entity.Book) map[string]any {
	return map[string]any{
		"title":        book.Title,
		"author":       book.Author,
		"isbn":         book.ISBN,
		"price":        book.Price,
		"reorderLevel": book.ReorderLevel,
	}
}
