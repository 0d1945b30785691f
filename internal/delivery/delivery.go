// Package delivery defines the contract shared by every inbound server.
package delivery

import "context"

// Delivery is a long-running inbound adapter started by the fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
