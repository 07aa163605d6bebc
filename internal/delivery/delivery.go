// Package delivery holds the servers that expose the use cases: the public API and the artifact worker.
package delivery

import "context"

// Delivery is a server started by the fx application. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
