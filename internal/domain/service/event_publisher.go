// Package service defines domain-level service interfaces implemented by the
// infrastructure layer.
package service

import (
	"context"
	"time"
)

// Sale event types published on the bus.
const (
	SaleEventCompleted = "sale.completed"
	SaleEventCancelled = "sale.cancelled"
)

// SaleEvent represents a sale lifecycle event consumed by downstream systems
// (receipt mailers, reporting pipelines). It is emitted after commit and is
// strictly best-effort: a publish failure never fails the sale.
type SaleEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	Type        string    `json:"type"`                 // One of the SaleEvent* constants
	SaleID      string    `json:"sale_id"`
	CashierID   string    `json:"cashier_id"`
	CustomerID  string    `json:"customer_id,omitempty"`
	TotalAmount float64   `json:"total_amount"`
	ItemCount   int       `json:"item_count"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishSaleEvent publishes a sale lifecycle event for async processing
	PublishSaleEvent(ctx context.Context, event *SaleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
