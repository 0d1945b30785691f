package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newOrderPlacedEvent(order *entity.Order) *service.OrderPlacedEvent {
	return &service.OrderPlacedEvent{
		OrderID:     order.ID.String(),
		UserID:      order.UserID.String(),
		TotalAmount: order.TotalAmount.StringFixed(2),
		Items:       []service.OrderEventItem{{ProductID: 1, Quantity: 2, UnitPrice: "10.65"}},
	}
}

func TestOrderEventService_HandleOrderPlaced(t *testing.T) {
	ctx := context.Background()
	order := &entity.Order{ID: uuid.New(), UserID: uuid.New(), TotalAmount: decimal.RequireFromString("21.30")}

	t.Run("confirms matching order", func(t *testing.T) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		srv := NewOrderEventService(OrderEventServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		assert.NoError(t, srv.HandleOrderPlaced(ctx, newOrderPlacedEvent(order)))
	})

	t.Run("malformed id is permanent", func(t *testing.T) {
		srv := NewOrderEventService(OrderEventServiceParams{OrderRepo: mockRepo.NewMockOrderRepository(t), Logger: newDiscardLogger()})

		err := srv.HandleOrderPlaced(ctx, &service.OrderPlacedEvent{OrderID: "nope"})

		assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
	})

	t.Run("unknown order is permanent", func(t *testing.T) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		srv := NewOrderEventService(OrderEventServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(nil, repository.ErrOrderNotFound)

		err := srv.HandleOrderPlaced(ctx, newOrderPlacedEvent(order))

		assert.True(t, domainerrors.IsKind(err, domainerrors.KindNotFound))
	})

	t.Run("store failure is transient", func(t *testing.T) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		srv := NewOrderEventService(OrderEventServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(nil, errors.New("connection reset"))

		err := srv.HandleOrderPlaced(ctx, newOrderPlacedEvent(order))

		assert.True(t, domainerrors.IsKind(err, domainerrors.KindInternal))
	})

	t.Run("total mismatch is a conflict", func(t *testing.T) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		srv := NewOrderEventService(OrderEventServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})
		event := newOrderPlacedEvent(order)
		event.TotalAmount = "0.01"

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		err := srv.HandleOrderPlaced(ctx, event)

		assert.True(t, domainerrors.IsKind(err, domainerrors.KindConflict))
	})

	t.Run("foreign user is a conflict", func(t *testing.T) {
		orderRepo := mockRepo.NewMockOrderRepository(t)
		srv := NewOrderEventService(OrderEventServiceParams{OrderRepo: orderRepo, Logger: newDiscardLogger()})
		event := newOrderPlacedEvent(order)
		event.UserID = uuid.NewString()

		orderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

		err := srv.HandleOrderPlaced(ctx, event)

		assert.True(t, domainerrors.IsKind(err, domainerrors.KindConflict))
	})
}
