package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleModel mirrors the 'sales' table. A sale row is immutable after insert
// except for the guarded status transition.
type SaleModel struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CashierID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	CustomerID  *uuid.UUID       `gorm:"type:uuid;index"`
	TotalAmount float64          `gorm:"type:numeric(10,2);not null"`
	Status      string           `gorm:"type:varchar(20);not null;default:Completed"`
	Items       []*SaleItemModel `gorm:"foreignKey:SaleID"`
	CreatedAt   time.Time        `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel mirrors the 'sale_items' table. Position preserves request
// order. BookID is intentionally not a foreign key: historical sale lines must
// survive catalog deletions.
type SaleItemModel struct {
	SaleID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position  int       `gorm:"primaryKey"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity  int       `gorm:"not null;check:quantity >= 1"`
	UnitPrice float64   `gorm:"type:numeric(10,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SaleItemModel) TableName() string {
	return "sale_items"
}
