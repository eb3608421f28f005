package entity

import (
	"time"

	"github.com/google/uuid"
)

// SaleStatus represents the lifecycle state of a sale record.
type SaleStatus string

const (
	// SaleStatusCompleted indicates a finalized sale. The default for every checkout.
	SaleStatusCompleted SaleStatus = "Completed"
	// SaleStatusPending indicates a sale awaiting completion.
	SaleStatusPending SaleStatus = "Pending"
	// SaleStatusCancelled indicates a sale that was reversed and its stock restored.
	SaleStatusCancelled SaleStatus = "Cancelled"
)

// String returns the string representation of the SaleStatus.
func (s SaleStatus) String() string {
	return string(s)
}

// IsValid checks if the SaleStatus is a valid value.
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusCompleted, SaleStatusPending, SaleStatusCancelled:
		return true
	default:
		return false
	}
}

// Sale is the immutable record of one checkout. Apart from the
// Completed -> Cancelled transition, a sale never changes after creation.
type Sale struct {
	ID          uuid.UUID  `json:"id"`                    // The unique identifier for the sale.
	CashierID   uuid.UUID  `json:"cashier_id"`            // The cashier that performed the checkout. Required.
	CustomerID  *uuid.UUID `json:"customer_id,omitempty"` // The customer buying, when known. Nil for anonymous walk-ins.
	Items       []SaleItem `json:"items"`                 // The ordered line items, in request order.
	TotalAmount float64    `json:"total_amount"`          // The total charged. Never negative.
	Status      SaleStatus `json:"status"`                // The lifecycle state. Defaults to Completed.
	CreatedAt   time.Time  `json:"created_at"`            // Timestamp of when the sale was recorded.
	UpdatedAt   time.Time  `json:"updated_at"`            // Timestamp of the last state transition.
}

// SaleItem is a single line of a sale. The book reference is intentionally loose:
// historical sales survive catalog deletions.
type SaleItem struct {
	BookID    uuid.UUID `json:"book_id"`    // The book sold on this line.
	Quantity  int       `json:"quantity"`   // Units sold. At least 1.
	UnitPrice float64   `json:"unit_price"` // Price per unit at the time of sale. Never negative.
}

// DistinctItemCount returns the number of distinct lines in the sale,
// which is what the reader score accrues on.
func (s *Sale) DistinctItemCount() int {
	return len(s.Items)
}
