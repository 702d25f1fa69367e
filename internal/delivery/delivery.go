// Package delivery defines the contract every inbound transport
// implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...). Serve
// blocks until the transport stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
