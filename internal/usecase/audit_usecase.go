package usecase

import (
	"context"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditRecord describes one mutation to append to the audit trail.
type AuditRecord struct {
	TargetCollection string
	Action           entity.AuditAction
	PerformedBy      uuid.UUID
	BeforeValue      map[string]any
	AfterValue       map[string]any
	TargetID         *uuid.UUID
}

// AuditQueryInput narrows and paginates audit-trail listings.
type AuditQueryInput struct {
	TargetCollection string             `json:"target_collection,omitempty"`
	Action           entity.AuditAction `json:"action,omitempty"`
	Pagination       Pagination
}

// AuditUsecase is the append-only audit trail. Recording is best-effort: a
// failed append is logged and swallowed so it can never fail the operation
// being audited.
type AuditUsecase interface {
	// Record appends audit entries for an already-committed mutation. Failures
	// are logged, never returned.
	Record(ctx context.Context, records ...*AuditRecord)

	// Query retrieves audit entries newest-first.
	Query(ctx context.Context, input *AuditQueryInput) ([]*entity.AuditLogEntry, *PageInfo, error)
}
