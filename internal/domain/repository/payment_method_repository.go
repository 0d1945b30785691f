package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPaymentMethodNotFound is returned when a payment method does not exist.
var ErrPaymentMethodNotFound = errors.New("payment method not found")

// PaymentMethodRepository persists stored payment methods.
type PaymentMethodRepository interface {
	Create(ctx context.Context, method *entity.PaymentMethod) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentMethod, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.PaymentMethod, error)
}
