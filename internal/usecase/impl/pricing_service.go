package impl

import (
	"context"
	"log/slog"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// pricingService implements the PricingUsecase interface.
type pricingService struct {
	txManager  repository.TransactionManager
	auditTrail usecase.AuditUsecase
	cfg        *config.PricingConfig
	logger     *slog.Logger
}

// NewPricingService is the constructor for pricingService.
func NewPricingService(
	txManager repository.TransactionManager,
	auditTrail usecase.AuditUsecase,
	cfg *config.PricingConfig,
	logger *slog.Logger,
) usecase.PricingUsecase {
	return &pricingService{
		txManager:  txManager,
		auditTrail: auditTrail,
		cfg:        cfg,
		logger:     logger,
	}
}

// ApplyDeadStockDiscounts discounts every book unsold past the configured
// threshold. Idempotence comes from the guarded write: a book that already
// carries a discount is never re-discounted, so repeated or concurrent runs
// cannot compound the markdown.
func (srv *pricingService) ApplyDeadStockDiscounts(ctx context.Context, performedBy uuid.UUID) (*usecase.DeadStockPricingResult, error) {
	threshold := time.Now().UTC().Add(-srv.cfg.DeadStockAfter)
	result := &usecase.DeadStockPricingResult{}

	var records []*usecase.AuditRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		candidates, err := bookRepo.FindDeadStock(ctx, threshold)
		if err != nil {
			return errors.Wrap(err, "failed to find dead stock")
		}

		for _, book := range candidates {
			discounted := roundCurrency(book.Price * (1 - srv.cfg.DiscountPercent))

			applied, err := bookRepo.SetDiscountedPrice(ctx, book.ID, discounted)
			if err != nil {
				return errors.Wrap(err, "failed to set discounted price")
			}
			if !applied {
				result.Skipped++

				continue
			}

			book.DiscountedPrice = &discounted
			result.Discounted = append(result.Discounted, book)

			bookID := book.ID
			records = append(records, &usecase.AuditRecord{
				TargetCollection: auditCollectionBook,
				Action:           entity.AuditActionUpdate,
				PerformedBy:      performedBy,
				BeforeValue:      map[string]any{"discountedPrice": nil},
				AfterValue:       map[string]any{"discountedPrice": discounted},
				TargetID:         &bookID,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Dead-stock pricing run finished",
		slog.Int("discounted", len(result.Discounted)),
		slog.Int("skipped", result.Skipped),
	)
	srv.auditTrail.Record(ctx, records...)

	return result, nil
}

// ClearDiscounts removes every active discount.
func (srv *pricingService) ClearDiscounts(ctx context.Context, performedBy uuid.UUID) (*usecase.ClearDiscountsResult, error) {
	result := &usecase.ClearDiscountsResult{}

	var records []*usecase.AuditRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookRepo := repoFactory.NewBookRepository()

		discounted, err := bookRepo.FindDiscounted(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to find discounted books")
		}

		for _, book := range discounted {
			cleared, err := bookRepo.ClearDiscountedPrice(ctx, book.ID)
			if err != nil {
				return errors.Wrap(err, "failed to clear discounted price")
			}
			if !cleared {
				continue
			}

			previous := book.DiscountedPrice
			book.DiscountedPrice = nil
			result.Cleared = append(result.Cleared, book)

			bookID := book.ID
			records = append(records, &usecase.AuditRecord{
				TargetCollection: auditCollectionBook,
				Action:           entity.AuditActionUpdate,
				PerformedBy:      performedBy,
				BeforeValue:      map[string]any{"discountedPrice": previous},
				AfterValue:       map[string]any{"discountedPrice": nil},
				TargetID:         &bookID,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Discount clearing run finished",
		slog.Int("cleared", len(result.Cleared)),
	)
	srv.auditTrail.Record(ctx, records...)

	return result, nil
}
