package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// PaymentGateway authorizes a charge before an order is written.
type PaymentGateway interface {
	Authorize(ctx context.Context, req *entity.PaymentRequest) (*entity.PaymentAuthorization, error)
}
