// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a long-running entrypoint (HTTP server, worker) started by main.
type Delivery interface {
	Serve(ctx context.Context) error
}
