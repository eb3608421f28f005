// Package delivery defines the inbound transport abstraction. Each delivery
// (HTTP today) is started by the application entrypoint and stopped through
// its lifecycle hooks.
package delivery

import "context"

// Delivery is a long-running inbound server.
type Delivery interface {
	// Serve blocks serving requests until the delivery is shut down.
	Serve(ctx context.Context) error
}
