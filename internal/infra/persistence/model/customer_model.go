package model

import (
	"time"

	"github.com/google/uuid"
)

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	ID              uuid.UUID               `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name            string                  `gorm:"type:varchar(255);not null;index"`
	Email           *string                 `gorm:"type:varchar(255)"`
	MembershipPts   int                     `gorm:"not null;default:0;check:membership_pts >= 0"`
	ReaderScore     int                     `gorm:"not null;default:0;check:reader_score >= 0"`
	PurchaseHistory []*PurchaseRecordModel  `gorm:"foreignKey:CustomerID"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// PurchaseRecordModel mirrors the 'purchase_records' table, the append-only
// purchase history of a customer.
type PurchaseRecordModel struct {
	CustomerID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	SaleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	TotalAmount  float64   `gorm:"type:numeric(10,2);not null"`
	PurchaseDate time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseRecordModel) TableName() string {
	return "purchase_records"
}
