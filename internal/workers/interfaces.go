// Package workers runs background jobs of the client, such as the periodic
// timeline snapshot, under one cancellable context.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// finishes on its own.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// WorkerFunc adapts a plain function to [Worker].
type WorkerFunc func(ctx context.Context)

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) { f(ctx) }
