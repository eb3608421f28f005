// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"bookstore/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookNotFound is a domain-specific error returned when a book is not found.
var ErrBookNotFound = errors.New("book not found")

// StockDecrement reports the outcome of a successful conditional stock decrement.
type StockDecrement struct {
	// Book is the book state after the decrement, including the stamped last-sold date.
	Book *entity.Book
	// PreviousStock is the stock quantity immediately before the decrement.
	PreviousStock int
}

// InventoryStatus aggregates catalog-wide inventory counters.
type InventoryStatus struct {
	TotalBooks          int64
	InStockBooks        int64
	OutOfStockBooks     int64
	BelowReorderBooks   int64
	TotalInventoryValue float64
}

// BookRepository defines the standard operations for book persistence, including
// the atomic stock primitives the checkout path depends on.
type BookRepository interface {
	// Create persists a new book entity to the storage.
	Create(ctx context.Context, book *entity.Book) error

	// FindByID retrieves a single book by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// List retrieves books ordered by title, newest page first, with the total count.
	List(ctx context.Context, page, limit int) ([]*entity.Book, int64, error)

	// Update modifies an existing book's catalog fields.
	Update(ctx context.Context, book *entity.Book) error

	// Delete removes a book by its ID. Historical sale lines keep their book id.
	Delete(ctx context.Context, id uuid.UUID) error

	// DecrementStock atomically decrements a book's stock by quantity and stamps
	// its last-sold date, but only when the resulting quantity stays non-negative.
	// The check and the write are a single conditional statement: there is no
	// window in which a concurrent decrement could drive stock negative.
	// Returns ErrBookNotFound for an unknown id and an
	// errors.InsufficientStockError conflict when the condition misses.
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int, soldAt time.Time) (*StockDecrement, error)

	// RestoreStock unconditionally adds quantity back to a book's stock,
	// returning the updated book. Used by sale cancellation.
	RestoreStock(ctx context.Context, id uuid.UUID, quantity int) (*entity.Book, error)

	// FindDeadStock retrieves books whose last-sold date is null or older than
	// the threshold and that carry no discount yet.
	FindDeadStock(ctx context.Context, threshold time.Time) ([]*entity.Book, error)

	// FindDiscounted retrieves every book that currently has a discounted price set.
	FindDiscounted(ctx context.Context) ([]*entity.Book, error)

	// SetDiscountedPrice sets the discounted price of a book, guarded on no
	// discount being set yet. Returns false without error when the guard misses,
	// which is what makes the dead-stock job idempotent.
	SetDiscountedPrice(ctx context.Context, id uuid.UUID, price float64) (bool, error)

	// ClearDiscountedPrice resets a book's discounted price to null. Returns
	// false without error when the book had no discount.
	ClearDiscountedPrice(ctx context.Context, id uuid.UUID) (bool, error)

	// FindBelowReorderLevel retrieves books with stock below their reorder level,
	// lowest stock first, with the total count.
	FindBelowReorderLevel(ctx context.Context, page, limit int) ([]*entity.Book, int64, error)

	// FindLowStock retrieves books with stock at or below the given threshold,
	// lowest stock first, with the total count.
	FindLowStock(ctx context.Context, threshold, page, limit int) ([]*entity.Book, int64, error)

	// InventoryStatus aggregates inventory counters across the whole catalog.
	InventoryStatus(ctx context.Context) (*InventoryStatus, error)
}
