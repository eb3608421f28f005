package postgres

import (
	"context"
	"time"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookRepository implements the repository.BookRepository interface.
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository is the constructor for bookRepository.
func NewBookRepository(db *gorm.DB) repository.BookRepository {
	return &bookRepository{
		db: db,
	}
}

// Create persists a new book.
func (repo *bookRepository) Create(ctx context.Context, book *entity.Book) error {
	bookM := fromBookDomain(book)

	if err := repo.db.WithContext(ctx).Create(bookM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrISBNAlreadyExists.WrapMessage("isbn must be unique")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid book data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create book")
	}

	// Update the entity with generated values
	book.ID = bookM.ID
	book.CreatedAt = bookM.CreatedAt
	book.UpdatedAt = bookM.UpdatedAt

	return nil
}

// FindByID retrieves a single book by its unique ID.
func (repo *bookRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error) {
	var bookM model.BookModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookNotFound
		}

		return nil, errors.Wrap(err, "failed to find book by ID")
	}

	return toBookDomain(&bookM), nil
}

// List retrieves books ordered by title with the total count.
func (repo *bookRepository) List(ctx context.Context, page, limit int) ([]*entity.Book, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count books")
	}

	var bookModels []*model.BookModel
	if err := repo.db.WithContext(ctx).
		Order("title ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list books")
	}

	return toBookDomainSlice(bookModels), total, nil
}

// Update modifies a book's catalog fields. Stock and discount fields are owned
// by their dedicated conditional operations and are not written here.
func (repo *bookRepository) Update(ctx context.Context, book *entity.Book) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", book.ID).
		Updates(map[string]any{
			"title":         book.Title,
			"author":        book.Author,
			"genre":         book.Genre,
			"isbn":          book.ISBN,
			"price":         book.Price,
			"reorder_level": book.ReorderLevel,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrISBNAlreadyExists.WrapMessage("isbn must be unique")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update book")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// Delete removes a book. Historical sale lines and audit entries keep the id.
func (repo *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete book")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBookNotFound
	}

	return nil
}

// DecrementStock atomically decrements stock and stamps the last-sold date.
// The availability check lives in the WHERE clause of the same UPDATE, so
// concurrent decrements on one book serialize on the row lock and the stock
// can never go negative: there is no check-then-write window.
func (repo *bookRepository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int, soldAt time.Time) (*repository.StockDecrement, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ? AND stock_quantity >= ?", id, quantity).
		Updates(map[string]any{
			"stock_quantity": gorm.Expr("stock_quantity - ?", quantity),
			"last_sold_date": soldAt,
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		// Condition missed: either the book does not exist or its stock is
		// short. A follow-up read disambiguates; within the enclosing
		// transaction the row state cannot improve, so the verdict is final.
		var bookM model.BookModel
		if err := repo.db.WithContext(ctx).
			Where("id = ?", id).
			First(&bookM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, repository.ErrBookNotFound
			}

			return nil, errors.Wrap(err, "failed to inspect book after decrement miss")
		}

		return nil, domainerrors.NewInsufficientStockError(bookM.Title, bookM.StockQuantity, quantity)
	}

	var updated model.BookModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&updated).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload book after decrement")
	}

	return &repository.StockDecrement{
		Book:          toBookDomain(&updated),
		PreviousStock: updated.StockQuantity + quantity,
	}, nil
}

// RestoreStock unconditionally adds quantity back to a book's stock.
func (repo *bookRepository) RestoreStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Book, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ?", id).
		Update("stock_quantity", gorm.Expr("stock_quantity + ?", quantity))

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to restore stock")
	}

	if result.RowsAffected == 0 {
		return nil, repository.ErrBookNotFound
	}

	var updated model.BookModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&updated).Error; err != nil {
		return nil, errors.Wrap(err, "failed to reload book after restore")
	}

	return toBookDomain(&updated), nil
}

// FindDeadStock retrieves undiscounted books unsold since the threshold.
func (repo *bookRepository) FindDeadStock(ctx context.Context, threshold time.Time) ([]*entity.Book, error) {
	var bookModels []*model.BookModel

	if err := repo.db.WithContext(ctx).
		Where("(last_sold_date IS NULL OR last_sold_date < ?) AND discounted_price IS NULL", threshold).
		Order("title ASC").
		Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find dead stock")
	}

	return toBookDomainSlice(bookModels), nil
}

// FindDiscounted retrieves every book that currently has a discount set.
func (repo *bookRepository) FindDiscounted(ctx context.Context) ([]*entity.Book, error) {
	var bookModels []*model.BookModel

	if err := repo.db.WithContext(ctx).
		Where("discounted_price IS NOT NULL").
		Order("title ASC").
		Find(&bookModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find discounted books")
	}

	return toBookDomainSlice(bookModels), nil
}

// SetDiscountedPrice sets the discount, guarded on none being set yet.
// The guard in the WHERE clause is what makes the dead-stock job idempotent.
func (repo *bookRepository) SetDiscountedPrice(ctx context.Context, id uuid.UUID, price float64) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ? AND discounted_price IS NULL", id).
		Update("discounted_price", price)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to set discounted price")
	}

	return result.RowsAffected > 0, nil
}

// ClearDiscountedPrice resets the discount to null.
func (repo *bookRepository) ClearDiscountedPrice(ctx context.Context, id uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("id = ? AND discounted_price IS NOT NULL", id).
		Update("discounted_price", nil)

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to clear discounted price")
	}

	return result.RowsAffected > 0, nil
}

// FindBelowReorderLevel retrieves books with stock below their reorder level.
func (repo *bookRepository) FindBelowReorderLevel(ctx context.Context, page, limit int) ([]*entity.Book, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("stock_quantity < reorder_level")

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count reorder books")
	}

	var bookModels []*model.BookModel
	if err := base.Session(&gorm.Session{}).
		Order("stock_quantity ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list reorder books")
	}

	return toBookDomainSlice(bookModels), total, nil
}

// FindLowStock retrieves books with stock at or below the threshold.
func (repo *bookRepository) FindLowStock(ctx context.Context, threshold, page, limit int) ([]*entity.Book, int64, error) {
	base := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Where("stock_quantity <= ?", threshold)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count low-stock books")
	}

	var bookModels []*model.BookModel
	if err := base.Session(&gorm.Session{}).
		Order("stock_quantity ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&bookModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list low-stock books")
	}

	return toBookDomainSlice(bookModels), total, nil
}

// InventoryStatus aggregates inventory counters across the whole catalog.
func (repo *bookRepository) InventoryStatus(ctx context.Context) (*repository.InventoryStatus, error) {
	var status repository.InventoryStatus

	counts := []struct {
		dest *int64
		cond string
	}{
		{&status.TotalBooks, ""},
		{&status.InStockBooks, "stock_quantity > 0"},
		{&status.OutOfStockBooks, "stock_quantity = 0"},
		{&status.BelowReorderBooks, "stock_quantity < reorder_level"},
	}

	for _, c := range counts {
		query := repo.db.WithContext(ctx).Model(&model.BookModel{})
		if c.cond != "" {
			query = query.Where(c.cond)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, errors.Wrap(err, "failed to count inventory")
		}
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.BookModel{}).
		Select("COALESCE(SUM(price * stock_quantity), 0)").
		Scan(&status.TotalInventoryValue).Error; err != nil {
		return nil, errors.Wrap(err, "failed to sum inventory value")
	}

	return &status, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toBookDomain converts a GORM BookModel to a domain Book entity.
func toBookDomain(data *model.BookModel) *entity.Book {
	if data == nil {
		return nil
	}

	return &entity.Book{
		ID:              data.ID,
		Title:           data.Title,
		Author:          data.Author,
		Genre:           data.Genre,
		ISBN:            data.ISBN,
		Price:           data.Price,
		DiscountedPrice: data.DiscountedPrice,
		StockQuantity:   data.StockQuantity,
		ReorderLevel:    data.ReorderLevel,
		LastSoldDate:    data.LastSoldDate,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromBookDomain converts a domain Book entity to a GORM BookModel for persistence.
func fromBookDomain(data *entity.Book) *model.BookModel {
	if data == nil {
		return nil
	}

	return &model.BookModel{
		ID:              data.ID,
		Title:           data.Title,
		Author:          data.Author,
		Genre:           data.Genre,
		ISBN:            data.ISBN,
		Price:           data.Price,
		DiscountedPrice: data.DiscountedPrice,
		StockQuantity:   data.StockQuantity,
		ReorderLevel:    data.ReorderLevel,
		LastSoldDate:    data.LastSoldDate,
	}
}

func toBookDomainSlice(data []*model.BookModel) []*entity.Book {
	books := make([]*entity.Book, 0, len(data))
	for _, bookM := range data {
		books = append(books, toBookDomain(bookM))
	}

	return books
}
