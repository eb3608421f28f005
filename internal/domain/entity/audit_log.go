package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the kind of mutation an audit entry records.
type AuditAction string

const (
	// AuditActionInsert records the creation of a document.
	AuditActionInsert AuditAction = "Insert"
	// AuditActionUpdate records a modification of a document.
	AuditActionUpdate AuditAction = "Update"
	// AuditActionDelete records the removal of a document.
	AuditActionDelete AuditAction = "Delete"
)

// String returns the string representation of the AuditAction.
func (a AuditAction) String() string {
	return string(a)
}

// IsValid checks if the AuditAction is a valid value.
func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionInsert, AuditActionUpdate, AuditActionDelete:
		return true
	default:
		return false
	}
}

// AuditLogEntry is one append-only record of a mutation, kept for traceability.
// The target reference is loosely typed on purpose: audit entries must survive
// even if the document they describe is later deleted.
type AuditLogEntry struct {
	ID               uuid.UUID      `json:"id"`                     // The unique identifier for the entry.
	TargetCollection string         `json:"target_collection"`     // Name of the affected entity type, e.g. "Book" or "Sale".
	Action           AuditAction    `json:"action"`                 // The kind of mutation recorded.
	PerformedBy      uuid.UUID      `json:"performed_by"`           // The actor that performed the mutation.
	BeforeValue      map[string]any `json:"before_value,omitempty"` // Snapshot of the relevant fields before the change. Nil for inserts.
	AfterValue       map[string]any `json:"after_value,omitempty"`  // Snapshot of the relevant fields after the change. Nil for deletes.
	TargetID         *uuid.UUID     `json:"target_id,omitempty"`    // The mutated document, when identifiable.
	CreatedAt        time.Time      `json:"created_at"`             // When the entry was recorded.
}
