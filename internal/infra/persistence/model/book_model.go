// Package model contains the GORM persistence models mirroring the database
// tables. They are kept separate from domain entities; mapper functions in the
// postgres package translate between the two.
package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// The CHECK constraint on stock_quantity is a second line of defence behind the
// conditional decrement; it should never fire.
type BookModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title           string    `gorm:"type:varchar(255);not null;index"`
	Author          string    `gorm:"type:varchar(255);not null"`
	Genre           *string   `gorm:"type:varchar(100)"`
	ISBN            string    `gorm:"column:isbn;type:varchar(20);unique;not null"`
	Price           float64   `gorm:"type:numeric(10,2);not null"`
	DiscountedPrice *float64  `gorm:"type:numeric(10,2)"`
	StockQuantity   int       `gorm:"not null;check:stock_quantity >= 0"`
	ReorderLevel    int       `gorm:"not null"`
	LastSoldDate    *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}
