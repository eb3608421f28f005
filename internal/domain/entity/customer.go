package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a known buyer with loyalty state. Loyalty fields are only ever
// mutated additively by completed checkouts.
type Customer struct {
	ID              uuid.UUID        `json:"id"`              // The unique identifier for the customer.
	Name            string           `json:"name"`            // The customer's display name.
	Email           *string          `json:"email,omitempty"` // Optional contact email.
	MembershipPts   int              `json:"membership_pts"`  // Accrued membership points. Never negative.
	ReaderScore     int              `json:"reader_score"`    // Accrued reader score. Never negative.
	PurchaseHistory []PurchaseRecord `json:"purchase_history"` // Append-only history of completed purchases, newest last.
	CreatedAt       time.Time        `json:"created_at"`      // Timestamp of when the customer was registered.
	UpdatedAt       time.Time        `json:"updated_at"`      // Timestamp of the last modification to this customer.
}

// PurchaseRecord is one entry of a customer's purchase history.
type PurchaseRecord struct {
	SaleID       uuid.UUID `json:"sale_id"`       // The sale this record points at.
	TotalAmount  float64   `json:"total_amount"`  // The total the customer paid.
	PurchaseDate time.Time `json:"purchase_date"` // When the purchase happened.
}
