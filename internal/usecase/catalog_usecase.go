package usecase

import (
	"context"

	"bookstore/internal/domain/entity"
	"bookstore/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateBookInput carries the fields for a new catalog entry.
type CreateBookInput struct {
	Title         string  `json:"title" validate:"required"`
	Author        string  `json:"author" validate:"required"`
	Genre         *string `json:"genre,omitempty"`
	ISBN          string  `json:"isbn" validate:"required"`
	Price         float64 `json:"price" validate:"min=0"`
	StockQuantity int     `json:"stock_quantity" validate:"min=0"`
	ReorderLevel  int     `json:"reorder_level" validate:"min=0"`
}

// UpdateBookInput carries a partial catalog update. Nil fields are left as-is.
// Stock and discount are owned by checkout and pricing and cannot be set here.
type UpdateBookInput struct {
	Title        *string  `json:"title,omitempty"`
	Author       *string  `json:"author,omitempty"`
	Genre        *string  `json:"genre,omitempty"`
	ISBN         *string  `json:"isbn,omitempty"`
	Price        *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	ReorderLevel *int     `json:"reorder_level,omitempty" validate:"omitempty,min=0"`
}

// CatalogUsecase manages the book catalog and its inventory views.
type CatalogUsecase interface {
	// CreateBook adds a book to the catalog.
	CreateBook(ctx context.Context, input *CreateBookInput, performedBy uuid.UUID) (*entity.Book, error)

	// GetBook retrieves a single book.
	GetBook(ctx context.Context, id uuid.UUID) (*entity.Book, error)

	// ListBooks retrieves catalog pages ordered by title.
	ListBooks(ctx context.Context, pagination Pagination) ([]*entity.Book, *PageInfo, error)

	// UpdateBook applies a partial update to a book's catalog fields.
	UpdateBook(ctx context.Context, id uuid.UUID, input *UpdateBookInput, performedBy uuid.UUID) (*entity.Book, error)

	// DeleteBook removes a book from the catalog. Historical sale lines and
	// audit entries keep referring to the removed id.
	DeleteBook(ctx context.Context, id uuid.UUID, performedBy uuid.UUID) error

	// ReorderList retrieves books whose stock has fallen below their reorder level.
	ReorderList(ctx context.Context, pagination Pagination) ([]*entity.Book, *PageInfo, error)

	// LowStock retrieves books at or below the configured low-stock threshold.
	LowStock(ctx context.Context, pagination Pagination) ([]*entity.Book, *PageInfo, error)

	// InventoryStatus aggregates catalog-wide inventory counters.
	InventoryStatus(ctx context.Context) (*repository.InventoryStatus, error)
}
