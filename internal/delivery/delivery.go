// Package delivery holds the long-running entry points (HTTP servers, brokers, schedulers).
package delivery

import "context"

// Delivery is a blocking listener started by the binaries.
type Delivery interface {
	Serve(ctx context.Context) error
}
