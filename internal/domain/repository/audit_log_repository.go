package repository

import (
	"context"

	"bookstore/internal/domain/entity"
)

// AuditLogFilter narrows audit-log listings.
type AuditLogFilter struct {
	// TargetCollection restricts results to one entity type when non-empty.
	TargetCollection string
	// Action restricts results to one mutation kind when non-empty.
	Action entity.AuditAction
}

// AuditLogRepository defines the operations for the append-only audit trail.
// Entries are never updated or deleted.
type AuditLogRepository interface {
	// Create appends one audit entry.
	Create(ctx context.Context, entry *entity.AuditLogEntry) error

	// List retrieves audit entries newest-first with the total count.
	List(ctx context.Context, filter AuditLogFilter, page, limit int) ([]*entity.AuditLogEntry, int64, error)
}
