package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckoutInput turns a cart into an order.
type CheckoutInput struct {
	CartID          uuid.UUID
	UserID          uuid.UUID
	PaymentMethodID uuid.UUID
}

// CreateOrderInput places an order without a cart. Prices are resolved server-side.
type CreateOrderInput struct {
	UserID          uuid.UUID
	PaymentMethodID uuid.UUID
	Items           []entity.LineRequest
}

// OrderUsecase places and reads orders.
type OrderUsecase interface {
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	GetOrder(ctx context.Context, actorID, orderID uuid.UUID) (*entity.Order, error)
	GetOrderItems(ctx context.Context, actorID, orderID uuid.UUID) ([]*entity.OrderItem, error)
	ListUserOrders(ctx context.Context, actorID, userID uuid.UUID) ([]*entity.Order, error)

	// ReceiptQR renders a PNG QR code for the order receipt.
	ReceiptQR(ctx context.Context, actorID, orderID uuid.UUID) ([]byte, error)
}
