// Package delivery defines the contract every transport implementation
// (HTTP, workers) fulfils so the application can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves until its context is
// cancelled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
