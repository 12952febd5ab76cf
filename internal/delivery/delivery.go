// Package delivery defines the inbound adapters started by the binaries.
package delivery

import "context"

// Delivery is a long-running inbound adapter such as an HTTP server or a queue consumer.
// Serve blocks until the adapter stops; a clean shutdown returns nil.
type Delivery interface {
	Serve(ctx context.Context) error
}
