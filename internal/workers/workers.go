package workers

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc"
)

// Workers runs a fixed set of workers concurrently.
type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     *conc.WaitGroup
}

func New(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Start launches every worker in its own goroutine. A second Start while
// running is a no-op.
func (w *Workers) Start(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg = conc.NewWaitGroup()
	for _, worker := range w.workers {
		w.wg.Go(func() { worker.Run(runCtx) })
	}
}

// Stop cancels the workers and waits for them to return. Panics raised by a
// worker are re-raised here. Safe to call when not running.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel, wg := w.cancel, w.wg
	w.cancel, w.wg = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	wg.Wait()
}

// Run starts the workers and blocks until ctx is done.
func (w *Workers) Run(ctx context.Context) {
	w.Start(ctx)
	<-ctx.Done()
	w.Stop()
}
