// Package workers runs the background jobs of the client next to the
// terminal UI: the session watchdog and the optional metrics endpoint.
//
// Every job implements [Worker]. A [Workers] aggregate runs them together
// and stops them all when the context passed to Run is cancelled.
package workers

import "context"

// Worker is a background job bound to the lifetime of ctx.
//
// Run blocks until ctx is cancelled or the job fails. Returning nil after
// cancellation is a clean stop.
type Worker interface {
	Run(ctx context.Context) error
}
