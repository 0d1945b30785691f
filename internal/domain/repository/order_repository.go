package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders. Orders are never updated after creation.
type OrderRepository interface {
	// Create inserts the order header and sets its ID and date.
	Create(ctx context.Context, order *entity.Order) error

	// CreateItems inserts the order's lines.
	CreateItems(ctx context.Context, orderID uuid.UUID, items []*entity.OrderItem) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListItems(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderItem, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
