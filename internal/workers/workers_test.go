// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingWorker counts how many times Run was entered and blocks until its
// context is cancelled.
type countingWorker struct {
	runs    atomic.Int64
	stopped atomic.Int64
}

func (w *countingWorker) Run(ctx context.Context) {
	w.runs.Add(1)
	<-ctx.Done()
	w.stopped.Add(1)
}

// ── Workers ─────────────────────────────────────────────────────────────────

func TestWorkers_StartStop_AllWorkersRun(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := New(w1, w2, w3)

	ws.Start(context.Background())
	require.Eventually(t, func() bool {
		return w1.runs.Load() == 1 && w2.runs.Load() == 1 && w3.runs.Load() == 1
	}, time.Second, 5*time.Millisecond)

	ws.Stop()
	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int64(1), w.stopped.Load(), "worker[%d] should be stopped", i)
	}
}

func TestWorkers_Start_Twice_IsNoop(t *testing.T) {
	w := &countingWorker{}
	ws := New(w)

	ws.Start(context.Background())
	ws.Start(context.Background())
	require.Eventually(t, func() bool { return w.runs.Load() >= 1 }, time.Second, 5*time.Millisecond)
	ws.Stop()

	assert.Equal(t, int64(1), w.runs.Load())
}

func TestWorkers_Stop_BeforeStart_NoPanic(t *testing.T) {
	ws := New(&countingWorker{})
	assert.NotPanics(t, ws.Stop)
}

func TestWorkers_Empty(t *testing.T) {
	ws := New()
	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

func TestWorkers_Run_ReturnsOnCancel(t *testing.T) {
	w := &countingWorker{}
	ws := New(w)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return w.runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, int64(1), w.stopped.Load())
}

func TestWorkers_Restart(t *testing.T) {
	w := &countingWorker{}
	ws := New(w)

	ws.Start(context.Background())
	require.Eventually(t, func() bool { return w.runs.Load() == 1 }, time.Second, 5*time.Millisecond)
	ws.Stop()
	ws.Start(context.Background())
	require.Eventually(t, func() bool { return w.runs.Load() == 2 }, time.Second, 5*time.Millisecond)
	ws.Stop()

	assert.Equal(t, int64(2), w.stopped.Load())
}

func TestWorkerFunc(t *testing.T) {
	var called atomic.Bool
	WorkerFunc(func(context.Context) { called.Store(true) }).Run(context.Background())
	assert.True(t, called.Load())
}

// ── Ticker ──────────────────────────────────────────────────────────────────

func TestTicker_CallsFnRepeatedly(t *testing.T) {
	var calls atomic.Int64
	tk := NewTicker("test", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	}, nil)

	ws := New(tk)
	ws.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	ws.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no ticks after Stop")
}

func TestTicker_ErrorDoesNotStop(t *testing.T) {
	var calls atomic.Int64
	tk := NewTicker("failing", 10*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("boom")
	}, nil)

	ws := New(tk)
	ws.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	ws.Stop()
}

func TestTicker_DefaultInterval(t *testing.T) {
	tk := NewTicker("default", 0, func(context.Context) error { return nil }, nil)
	assert.Equal(t, DefaultTickInterval, tk.Interval())
}
