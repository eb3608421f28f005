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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{
		db: db,
	}
}

// Create persists a new customer.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid customer data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindByID retrieves a customer with their purchase history, newest first.
func (repo *customerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Preload("PurchaseHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("purchase_date DESC")
		}).
		Where("id = ?", id).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by ID")
	}

	return toCustomerDomain(&customerM), nil
}

// List retrieves customers ordered by name with the total count.
func (repo *customerRepository) List(ctx context.Context, page, limit int) ([]*entity.Customer, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customers")
	}

	var customerModels []*model.CustomerModel
	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&customerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, total, nil
}

// ApplyLoyalty adds the accrual to the customer's counters and appends the
// purchase record. The increments are SQL arithmetic against the stored row,
// never a read-modify-write from the application side.
func (repo *customerRepository) ApplyLoyalty(ctx context.Context, id uuid.UUID, accrual *repository.LoyaltyAccrual) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"membership_pts": gorm.Expr("membership_pts + ?", accrual.PointsEarned),
			"reader_score":   gorm.Expr("reader_score + ?", accrual.ReaderScoreDelta),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to apply loyalty accrual")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	record := &model.PurchaseRecordModel{
		CustomerID:   id,
		SaleID:       accrual.Purchase.SaleID,
		TotalAmount:  accrual.Purchase.TotalAmount,
		PurchaseDate: accrual.Purchase.PurchaseDate,
	}
	if err := repo.db.WithContext(ctx).Create(record).Error; err != nil {
		return errors.Wrap(err, "failed to append purchase record")
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	history := make([]entity.PurchaseRecord, 0, len(data.PurchaseHistory))
	for _, recordM := range data.PurchaseHistory {
		history = append(history, entity.PurchaseRecord{
			SaleID:       recordM.SaleID,
			TotalAmount:  recordM.TotalAmount,
			PurchaseDate: recordM.PurchaseDate,
		})
	}

	return &entity.Customer{
		ID:              data.ID,
		Name:            data.Name,
		Email:           data.Email,
		MembershipPts:   data.MembershipPts,
		ReaderScore:     data.ReaderScore,
		PurchaseHistory: history,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		MembershipPts: data.MembershipPts,
		ReaderScore:   data.ReaderScore,
	}
}
