package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderEventServiceParams holds dependencies for the order event consumer, injected by Fx.
type OrderEventServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Logger    *slog.Logger
}

type orderEventService struct {
	orderRepo repository.OrderRepository
	logger    *slog.Logger
}

// NewOrderEventService is the constructor for orderEventService.
func NewOrderEventService(params OrderEventServiceParams) usecase.OrderEventUsecase {
	return &orderEventService{
		orderRepo: params.OrderRepo,
		logger:    params.Logger,
	}
}

func (srv *orderEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *orderEventService) HandleOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error {
	orderID, err := uuid.Parse(event.OrderID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("order_id is not a UUID")
	}

	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return translate(err, "failed to load order for event")
	}

	if order.UserID.String() != event.UserID {
		return domainerrors.ErrConflict.WithDetails("event user does not own the order")
	}

	// Stored orders are immutable, so a differing total means the event is stale or forged.
	eventTotal, err := decimal.NewFromString(event.TotalAmount)
	if err != nil || !eventTotal.Equal(order.TotalAmount) {
		srv.log(ctx).Warn("Order event total does not match stored order",
			slog.String("order_id", event.OrderID),
			slog.String("event_total", event.TotalAmount),
			slog.String("stored_total", order.TotalAmount.StringFixed(2)),
		)

		return domainerrors.ErrConflict.WithDetails("event total does not match order")
	}

	srv.log(ctx).Info("Order confirmed",
		slog.String("order_id", order.ID.String()),
		slog.String("user_id", order.UserID.String()),
		slog.String("total_amount", order.TotalAmount.StringFixed(2)),
		slog.Int("item_count", len(event.Items)),
	)

	return nil
}
