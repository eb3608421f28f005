package postgres

import (
	"context"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{
		db: db,
	}
}

// Create persists a sale together with its line items in one insert chain.
func (repo *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	saleM := fromSaleDomain(sale)

	if err := repo.db.WithContext(ctx).Create(saleM).Error; err != nil {
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid sale data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create sale")
	}

	sale.ID = saleM.ID
	sale.CreatedAt = saleM.CreatedAt
	sale.UpdatedAt = saleM.UpdatedAt

	return nil
}

// FindByID retrieves a sale with its items in request order.
func (repo *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var saleM model.SaleModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&saleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale by ID")
	}

	return toSaleDomain(&saleM), nil
}

// List retrieves sales newest-first with the total count for the filter.
func (repo *saleRepository) List(ctx context.Context, filter repository.SaleFilter, page, limit int) ([]*entity.Sale, int64, error) {
	base := repo.db.WithContext(ctx).Model(&model.SaleModel{})

	if filter.CustomerID != nil {
		base = base.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.StartDate != nil {
		base = base.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		base = base.Where("created_at <= ?", *filter.EndDate)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count sales")
	}

	var saleModels []*model.SaleModel
	if err := base.Session(&gorm.Session{}).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&saleModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(saleModels))
	for _, saleM := range saleModels {
		sales = append(sales, toSaleDomain(saleM))
	}

	return sales, total, nil
}

// UpdateStatus transitions a sale's status, guarded on the current status.
// Returning false with a nil error means the sale exists but was not in the
// expected status, which is how a double cancellation is detected.
func (repo *saleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.SaleStatus) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.SaleModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())

	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to update sale status")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.SaleModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return false, errors.Wrap(err, "failed to inspect sale after status miss")
		}
		if count == 0 {
			return false, repository.ErrSaleNotFound
		}

		return false, nil
	}

	return true, nil
}

// --- Mapper Functions ---

// toSaleDomain converts a GORM SaleModel to a domain Sale entity.
func toSaleDomain(data *model.SaleModel) *entity.Sale {
	if data == nil {
		return nil
	}

	items := make([]entity.SaleItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, entity.SaleItem{
			BookID:    itemM.BookID,
			Quantity:  itemM.Quantity,
			UnitPrice: itemM.UnitPrice,
		})
	}

	return &entity.Sale{
		ID:          data.ID,
		CashierID:   data.CashierID,
		CustomerID:  data.CustomerID,
		Items:       items,
		TotalAmount: data.TotalAmount,
		Status:      entity.SaleStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromSaleDomain converts a domain Sale entity to a GORM SaleModel for persistence.
func fromSaleDomain(data *entity.Sale) *model.SaleModel {
	if data == nil {
		return nil
	}

	items := make([]*model.SaleItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, &model.SaleItemModel{
			Position:  i,
			BookID:    item.BookID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return &model.SaleModel{
		ID:          data.ID,
		CashierID:   data.CashierID,
		CustomerID:  data.CustomerID,
		TotalAmount: data.TotalAmount,
		Status:      data.Status.String(),
		Items:       items,
	}
}
