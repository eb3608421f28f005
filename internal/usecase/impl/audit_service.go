// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"bookstore/internal/domain/entity"
	domainerrors "bookstore/internal/domain/errors"
	"bookstore/internal/domain/repository"
	"bookstore/internal/usecase"

	"github.com/pkg/errors"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	auditRepo repository.AuditLogRepository
	logger    *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(
	auditRepo repository.AuditLogRepository,
	logger *slog.Logger,
) usecase.AuditUsecase {
	return &auditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record appends audit entries for an already-committed mutation. Appends run
// outside the mutation's transaction: the mutation has already been paid for,
// so a failing append is logged and swallowed rather than surfaced.
func (srv *auditService) Record(ctx context.Context, records ...*usecase.AuditRecord) {
	for _, record := range records {
		entry := &entity.AuditLogEntry{
			TargetCollection: record.TargetCollection,
			Action:           record.Action,
			PerformedBy:      record.PerformedBy,
			BeforeValue:      record.BeforeValue,
			AfterValue:       record.AfterValue,
			TargetID:         record.TargetID,
		}

		if err := srv.auditRepo.Create(ctx, entry); err != nil {
			srv.logger.Warn("Failed to record audit entry",
				slog.String("target_collection", record.TargetCollection),
				slog.String("action", record.Action.String()),
				slog.Any("error", err),
			)
		}
	}
}

// Query retrieves audit entries newest-first.
func (srv *auditService) Query(ctx context.Context, input *usecase.AuditQueryInput) ([]*entity.AuditLogEntry, *usecase.PageInfo, error) {
	if input.Action != "" && !input.Action.IsValid() {
		return nil, nil, domainerrors.ErrValidationFailed.WrapMessage("unknown audit action")
	}

	filter := repository.AuditLogFilter{
		TargetCollection: input.TargetCollection,
		Action:           input.Action,
	}

	entries, total, err := srv.auditRepo.List(ctx, filter, input.Pagination.Page, input.Pagination.Limit)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to query audit trail")
	}

	return entries, usecase.NewPageInfo(total, input.Pagination.Page, input.Pagination.Limit), nil
}
