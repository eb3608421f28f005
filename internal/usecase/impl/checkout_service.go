package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"bookstore/config"
	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/domain/service"
	"bookstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// auditCollectionBook and friends name the audited entity types.
const (
	auditCollectionBook = "Book"
	auditCollectionSale = "Sale"
)

// checkoutService implements the CheckoutUsecase interface. Checkout is the
// consistency-critical path of the system: every stock decrement, the sale
// document and the loyalty accrual must commit atomically.
type checkoutService struct {
	txManager  repository.TransactionManager
	auditTrail usecase.AuditUsecase
	publisher  service.EventPublisher
	cfg        *config.CheckoutConfig
	logger     *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	txManager repository.TransactionManager,
	auditTrail usecase.AuditUsecase,
	publisher service.EventPublisher,
	cfg *config.CheckoutConfig,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager:  txManager,
		auditTrail: auditTrail,
		publisher:  publisher,
		cfg:        cfg,
		logger:     logger,
	}
}

// stockChange captures one line's stock movement for post-commit auditing.
type stockChange struct {
	bookID       uuid.UUID
	prevStock    int
	newStock     int
	prevLastSold *time.Time
	soldAt       time.Time
}

// Checkout atomically records a sale. Each line's availability check and
// decrement are a single conditional write, so two cashiers racing over the
// last copies cannot both win. When the storage layer loses a serialization
// race the whole transaction is retried a bounded number of times.
func (srv *checkoutService) Checkout(ctx context.Context, input *usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	if err := validateCheckoutInput(input); err != nil {
		return nil, err
	}

	var (
		sale           *entity.Sale
		changes        []stockChange
		loyaltyApplied bool
	)

	run := func() error {
		sale = nil
		changes = nil
		loyaltyApplied = false

		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			bookRepo := repoFactory.NewBookRepository()
			soldAt := time.Now().UTC()

			// 1. Decrement stock line by line. The first line that cannot be
			// satisfied aborts the transaction and undoes every earlier line.
			items := make([]entity.SaleItem, 0, len(input.Items))
			var total float64
			for _, line := range input.Items {
				dec, err := bookRepo.DecrementStock(ctx, line.BookID, line.Quantity, soldAt)
				if err != nil {
					if errors.Is(err, repository.ErrBookNotFound) {
						return domainerrors.ErrBookNotFound.WrapMessage("unknown book in checkout")
					}

					return errors.Wrap(err, "failed to decrement stock")
				}

				// The submitted price is advisory: the charge comes from the
				// book's effective price at decrement time, and a stale quote
				// aborts rather than silently repricing the cart.
				unitPrice := dec.Book.EffectivePrice()
				if roundCurrency(line.UnitPrice) != roundCurrency(unitPrice) {
					return domainerrors.ErrPriceMismatch.WithDetails(fmt.Sprintf(
						"book %q: submitted %.2f, effective price %.2f",
						dec.Book.Title, line.UnitPrice, unitPrice))
				}
				items = append(items, entity.SaleItem{
					BookID:    line.BookID,
					Quantity:  line.Quantity,
					UnitPrice: unitPrice,
				})
				total += unitPrice * float64(line.Quantity)

				changes = append(changes, stockChange{
					bookID:       dec.Book.ID,
					prevStock:    dec.PreviousStock,
					newStock:     dec.Book.StockQuantity,
					prevLastSold: nil,
					soldAt:       soldAt,
				})
			}

			total = roundCurrency(total)
			if total != roundCurrency(input.TotalAmount) {
				return domainerrors.ErrPriceMismatch.WithDetails(fmt.Sprintf(
					"submitted total %.2f, computed total %.2f",
					input.TotalAmount, total))
			}

			// 2. Record the sale document.
			saleRepo := repoFactory.NewSaleRepository()
			sale = &entity.Sale{
				CashierID:   input.CashierID,
				CustomerID:  input.CustomerID,
				Items:       items,
				TotalAmount: total,
				Status:      entity.SaleStatusCompleted,
			}
			if err := saleRepo.Create(ctx, sale); err != nil {
				return errors.Wrap(err, "failed to create sale")
			}

			// 3. Accrue loyalty in the same transaction. An unknown customer
			// id is tolerated: the sale still counts, the accrual is skipped.
			if input.CustomerID != nil {
				customerRepo := repoFactory.NewCustomerRepository()
				accrual := loyaltyAccrualFor(sale)
				if err := customerRepo.ApplyLoyalty(ctx, *input.CustomerID, accrual); err != nil {
					if errors.Is(err, repository.ErrCustomerNotFound) {
						srv.logger.Debug("Checkout references unknown customer, skipping loyalty",
							slog.String("customer_id", input.CustomerID.String()),
						)

						return nil
					}

					return errors.Wrap(err, "failed to apply loyalty accrual")
				}
				loyaltyApplied = true
			}

			return nil
		})
	}

	if err := srv.runWithRetry(ctx, run); err != nil {
		return nil, err
	}

	srv.recordCheckoutAudits(ctx, input, sale, changes)
	srv.publishSaleEvent(ctx, service.SaleEventCompleted, input.RequestID, sale)

	return &usecase.CheckoutResult{
		Sale:           sale,
		LoyaltyApplied: loyaltyApplied,
	}, nil
}

// CancelSale cancels a completed sale and restores the stock of each line.
func (srv *checkoutService) CancelSale(ctx context.Context, saleID, performedBy uuid.UUID) (*entity.Sale, error) {
	var (
		sale     *entity.Sale
		restored []*entity.Book
	)

	run := func() error {
		sale = nil
		restored = nil

		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			saleRepo := repoFactory.NewSaleRepository()

			found, err := saleRepo.FindByID(ctx, saleID)
			if err != nil {
				if errors.Is(err, repository.ErrSaleNotFound) {
					return domainerrors.ErrSaleNotFound
				}

				return errors.Wrap(err, "failed to find sale")
			}
			if found.Status == entity.SaleStatusCancelled {
				return domainerrors.ErrSaleAlreadyCancelled
			}

			// The guarded transition is the single gate: losing the race to a
			// concurrent cancellation lands here rather than restoring twice.
			transitioned, err := saleRepo.UpdateStatus(ctx, saleID, found.Status, entity.SaleStatusCancelled)
			if err != nil {
				return errors.Wrap(err, "failed to cancel sale")
			}
			if !transitioned {
				return domainerrors.ErrSaleAlreadyCancelled
			}

			// Restore stock per line. A book deleted since the sale simply no
			// longer has stock to restore.
			bookRepo := repoFactory.NewBookRepository()
			for _, item := range found.Items {
				book, err := bookRepo.RestoreStock(ctx, item.BookID, item.Quantity)
				if err != nil {
					if errors.Is(err, repository.ErrBookNotFound) {
						srv.logger.Warn("Cancelled sale references deleted book, skipping restore",
							slog.String("book_id", item.BookID.String()),
						)

						continue
					}

					return errors.Wrap(err, "failed to restore stock")
				}
				restored = append(restored, book)
			}

			found.Status = entity.SaleStatusCancelled
			sale = found

			return nil
		})
	}

	if err := srv.runWithRetry(ctx, run); err != nil {
		return nil, err
	}

	srv.recordCancellationAudits(ctx, performedBy, sale, restored)
	srv.publishSaleEvent(ctx, service.SaleEventCancelled, "", sale)

	return sale, nil
}

// GetSale retrieves a single sale with its items.
func (srv *checkoutService) GetSale(ctx context.Context, saleID uuid.UUID) (*entity.Sale, error) {
	var sale *entity.Sale

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewSaleRepository().FindByID(ctx, saleID)
		if err != nil {
			if errors.Is(err, repository.ErrSaleNotFound) {
				return domainerrors.ErrSaleNotFound
			}

			return errors.Wrap(err, "failed to find sale")
		}
		sale = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sale, nil
}

// ListSales retrieves sales newest-first.
func (srv *checkoutService) ListSales(ctx context.Context, input *usecase.SaleListInput) ([]*entity.Sale, *usecase.PageInfo, error) {
	var (
		sales []*entity.Sale
		total int64
	)

	filter := repository.SaleFilter{
		CustomerID: input.CustomerID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, count, err := repoFactory.NewSaleRepository().List(ctx, filter, input.Pagination.Page, input.Pagination.Limit)
		if err != nil {
			return errors.Wrap(err, "failed to list sales")
		}
		sales = found
		total = count

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return sales, usecase.NewPageInfo(total, input.Pagination.Page, input.Pagination.Limit), nil
}

// runWithRetry executes fn, retrying a bounded number of times when the
// storage layer reports a serialization failure. Any other error, including a
// business conflict like insufficient stock, is returned on the first attempt.
func (srv *checkoutService) runWithRetry(ctx context.Context, fn func() error) error {
	maxAttempts := srv.cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = fn()
		if err == nil || !errors.Is(err, repository.ErrSerializationFailure) {
			return err
		}

		if attempt == maxAttempts {
			break
		}

		srv.logger.Debug("Transaction lost serialization race, retrying",
			slog.Int("attempt", attempt),
		)

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "checkout cancelled while retrying")
		case <-time.After(srv.cfg.RetryDelay * time.Duration(attempt)):
		}
	}

	return domainerrors.ErrTransactionFailed.WrapMessage("retries exhausted")
}

// recordCheckoutAudits appends the audit entries for one committed checkout.
// Entries are written after commit: the audit trail describes mutations that
// actually happened, and an audit failure must never unwind a paid sale.
func (srv *checkoutService) recordCheckoutAudits(ctx context.Context, input *usecase.CheckoutInput, sale *entity.Sale, changes []stockChange) {
	records := make([]*usecase.AuditRecord, 0, len(changes)+1)

	for _, change := range changes {
		bookID := change.bookID
		records = append(records, &usecase.AuditRecord{
			TargetCollection: auditCollectionBook,
			Action:           entity.AuditActionUpdate,
			PerformedBy:      input.CashierID,
			BeforeValue: map[string]any{
				"stockQuantity": change.prevStock,
				"lastSoldDate":  change.prevLastSold,
			},
			AfterValue: map[string]any{
				"stockQuantity": change.newStock,
				"lastSoldDate":  change.soldAt,
			},
			TargetID: &bookID,
		})
	}

	saleID := sale.ID
	records = append(records, &usecase.AuditRecord{
		TargetCollection: auditCollectionSale,
		Action:           entity.AuditActionInsert,
		PerformedBy:      input.CashierID,
		AfterValue: map[string]any{
			"totalAmount": sale.TotalAmount,
			"status":      sale.Status.String(),
			"itemCount":   len(sale.Items),
		},
		TargetID: &saleID,
	})

	srv.auditTrail.Record(ctx, records...)
}

// recordCancellationAudits appends the audit entries for one committed cancellation.
func (srv *checkoutService) recordCancellationAudits(ctx context.Context, performedBy uuid.UUID, sale *entity.Sale, restored []*entity.Book) {
	records := make([]*usecase.AuditRecord, 0, len(restored)+1)

	saleID := sale.ID
	records = append(records, &usecase.AuditRecord{
		TargetCollection: auditCollectionSale,
		Action:           entity.AuditActionUpdate,
		PerformedBy:      performedBy,
		BeforeValue:      map[string]any{"status": entity.SaleStatusCompleted.String()},
		AfterValue:       map[string]any{"status": entity.SaleStatusCancelled.String()},
		TargetID:         &saleID,
	})

	for _, book := range restored {
		bookID := book.ID
		records = append(records, &usecase.AuditRecord{
			TargetCollection: auditCollectionBook,
			Action:           entity.AuditActionUpdate,
			PerformedBy:      performedBy,
			AfterValue:       map[string]any{"stockQuantity": book.StockQuantity},
			TargetID:         &bookID,
		})
	}

	srv.auditTrail.Record(ctx, records...)
}

// publishSaleEvent emits a sale lifecycle event, best-effort.
func (srv *checkoutService) publishSaleEvent(ctx context.Context, eventType, requestID string, sale *entity.Sale) {
	event := &service.SaleEvent{
		RequestID:   requestID,
		Type:        eventType,
		SaleID:      sale.ID.String(),
		CashierID:   sale.CashierID.String(),
		TotalAmount: sale.TotalAmount,
		ItemCount:   len(sale.Items),
		OccurredAt:  time.Now().UTC(),
	}
	if sale.CustomerID != nil {
		event.CustomerID = sale.CustomerID.String()
	}

	if err := srv.publisher.PublishSaleEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish sale event",
			slog.String("type", eventType),
			slog.String("sale_id", event.SaleID),
			slog.Any("error", err),
		)
	}
}

// validateCheckoutInput rejects requests no transaction attempt should see.
func validateCheckoutInput(input *usecase.CheckoutInput) error {
	if input.CashierID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WrapMessage("cashier id is required")
	}
	if len(input.Items) == 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("checkout requires at least one item")
	}
	for _, line := range input.Items {
		if line.BookID == uuid.Nil {
			return domainerrors.ErrValidationFailed.WrapMessage("item book id is required")
		}
		if line.Quantity < 1 {
			return domainerrors.ErrValidationFailed.WrapMessage("item quantity must be at least 1")
		}
		if line.UnitPrice < 0 {
			return domainerrors.ErrValidationFailed.WrapMessage("item unit price must not be negative")
		}
	}
	if input.TotalAmount < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("total amount must not be negative")
	}

	return nil
}

// roundCurrency rounds to two decimal places, half away from zero.
func roundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}
