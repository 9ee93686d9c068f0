// Package delivery defines the inbound transport contract served by the
// application entrypoint.
package delivery

import "context"

// Delivery is implemented by every transport the application can serve.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
