// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a single title in the catalog together with its inventory state.
// Stock mutations go through the checkout and cancellation paths only; the pricing
// engine owns DiscountedPrice.
type Book struct {
	ID              uuid.UUID  `json:"id"`                         // The unique identifier for the book.
	Title           string     `json:"title"`                      // The book's display title.
	Author          string     `json:"author"`                     // The author's name.
	Genre           *string    `json:"genre,omitempty"`            // Optional genre classification.
	ISBN            string     `json:"isbn"`                       // International Standard Book Number, unique across the catalog.
	Price           float64    `json:"price"`                      // The list price. Never negative.
	DiscountedPrice *float64   `json:"discounted_price,omitempty"` // The dead-stock discount price. Nil when no discount is active; never above Price.
	StockQuantity   int        `json:"stock_quantity"`             // Units on hand. Invariant: never negative.
	ReorderLevel    int        `json:"reorder_level"`              // Stock threshold below which restocking is recommended.
	LastSoldDate    *time.Time `json:"last_sold_date,omitempty"`   // When a unit was last sold. Nil for titles that have never sold.
	CreatedAt       time.Time  `json:"created_at"`                 // Timestamp of when this book was added to the catalog.
	UpdatedAt       time.Time  `json:"updated_at"`                 // Timestamp of the last modification to this book.
}

// EffectivePrice returns the price actually charged for the book:
// the discounted price when one is set, otherwise the list price.
func (b *Book) EffectivePrice() float64 {
	if b.DiscountedPrice != nil {
		return *b.DiscountedPrice
	}

	return b.Price
}

// BelowReorderLevel reports whether the book's stock has dropped below its
// configured reorder threshold.
func (b *Book) BelowReorderLevel() bool {
	return b.StockQuantity < b.ReorderLevel
}
