package service

import (
	"context"
)

// Event type names carried in message attributes.
const (
	EventTypeOrderPlaced = "order.placed"
)

// OrderPlacedEvent is published after a checkout or order creation commits.
type OrderPlacedEvent struct {
	RequestID   string           `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string           `json:"order_id"`
	UserID      string           `json:"user_id"`
	TotalAmount string           `json:"total_amount"`
	OrderDate   string           `json:"order_date"`
	Items       []OrderEventItem `json:"items"`
}

// OrderEventItem is one line of a placed order.
type OrderEventItem struct {
	ProductID int64  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order event for downstream consumers
	PublishOrderPlaced(ctx context.Context, event *OrderPlacedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
