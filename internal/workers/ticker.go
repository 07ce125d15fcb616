// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/tootline/internal/logger"
)

// DefaultTickInterval is used when a Ticker is built with a non-positive
// interval.
const DefaultTickInterval = time.Minute

// Ticker calls fn every interval until its context is cancelled. Errors are
// logged and do not stop the ticker.
type Ticker struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	logger   *logger.Logger
}

func NewTicker(name string, interval time.Duration, fn func(ctx context.Context) error, log *logger.Logger) *Ticker {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Ticker{name: name, interval: interval, fn: fn, logger: log}
}

func (t *Ticker) Interval() time.Duration { return t.interval }

func (t *Ticker) Run(ctx context.Context) {
	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
			if err := t.fn(ctx); err != nil && ctx.Err() == nil {
				t.logger.Err(err).Str("worker", t.name).Msg("tick failed")
			}
		}
	}
}
