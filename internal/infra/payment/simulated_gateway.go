// Package payment holds the payment gateway used at checkout.
package payment

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

// simulatedGateway approves every well-formed request. No money moves.
type simulatedGateway struct {
	logger *slog.Logger
}

// NewSimulatedGateway creates the development payment gateway.
func NewSimulatedGateway(logger *slog.Logger) service.PaymentGateway {
	return &simulatedGateway{logger: logger}
}

// Authorize approves the request unless it names no payment method or a negative amount.
func (g *simulatedGateway) Authorize(ctx context.Context, req *entity.PaymentRequest) (*entity.PaymentAuthorization, error) {
	if req == nil || req.PaymentMethodID == uuid.Nil || req.Amount.IsNegative() {
		return &entity.PaymentAuthorization{Approved: false}, nil
	}

	auth := &entity.PaymentAuthorization{
		Approved:      true,
		TransactionID: "sim_" + uuid.NewString(),
	}

	deliverycontext.GetLoggerOrDefault(ctx, g.logger).Debug("Simulated payment authorized",
		slog.String("reference", req.Reference),
		slog.String("amount", req.Amount.StringFixed(2)),
		slog.String("transaction_id", auth.TransactionID),
	)

	return auth, nil
}
