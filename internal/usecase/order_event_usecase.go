package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// OrderEventUsecase consumes order events delivered by the message queue.
type OrderEventUsecase interface {
	// HandleOrderPlaced confirms a placed order against the store. Errors of
	// kind internal are transient; any other error means the event can never
	// succeed and should be acknowledged.
	HandleOrderPlaced(ctx context.Context, event *service.OrderPlacedEvent) error
}
