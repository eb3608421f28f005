package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLogModel mirrors the 'audit_logs' table. Rows are append-only and carry
// no foreign keys: an audit entry must outlive the document it describes.
type AuditLogModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TargetCollection string          `gorm:"type:varchar(100);not null;index"`
	Action           string          `gorm:"type:varchar(20);not null;index"`
	PerformedBy      uuid.UUID       `gorm:"type:uuid;not null"`
	BeforeValue      json.RawMessage `gorm:"type:jsonb"`
	AfterValue       json.RawMessage `gorm:"type:jsonb"`
	TargetID         *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt        time.Time       `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
