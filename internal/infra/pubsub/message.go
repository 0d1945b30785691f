package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// outboundMessage is an order event serialised the same way for every provider,
// so the worker decodes local pushes and Google pushes with one code path.
type outboundMessage struct {
	data       []byte
	attributes map[string]string
}

func encodeOrderPlaced(event *service.OrderPlacedEvent) (*outboundMessage, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order event")
	}

	attributes := map[string]string{
		"event_type": service.EventTypeOrderPlaced,
		"order_id":   event.OrderID,
		"user_id":    event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &outboundMessage{data: data, attributes: attributes}, nil
}

// noopPublisher drops events. Used when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishOrderPlaced(_ context.Context, event *service.OrderPlacedEvent) error {
	p.logger.Debug("Order event dropped, no publisher configured", slog.String("order_id", event.OrderID))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
