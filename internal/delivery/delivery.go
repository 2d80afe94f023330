// Package delivery defines the contract every transport entry point
// implements so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP today).
type Delivery interface {
	// Serve blocks until the server stops or ctx is cancelled.
	Serve(ctx context.Context) error
}
