// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package timeline

import (
	"context"

	"github.com/MKhiriev/tootline/internal/logger"
)

// DefaultPageSize is used when Options.PageSize is not positive.
const DefaultPageSize = 20

// FetchFunc loads one page of items ordered newest first. An empty cursor
// requests the first page; otherwise cursor is the id of the last item
// currently held and the page must contain items strictly older than it.
// A page shorter than the configured page size ends pagination.
type FetchFunc[T any] func(ctx context.Context, cursor string) ([]T, error)

// LiveSource pushes newly created items. Subscribe must return a function
// that removes exactly the registered handler.
type LiveSource[T any] interface {
	Subscribe(handler func(T)) (unsubscribe func())
}

// LiveSourceFunc adapts a plain function to [LiveSource].
type LiveSourceFunc[T any] func(handler func(T)) (unsubscribe func())

// Subscribe calls f(handler).
func (f LiveSourceFunc[T]) Subscribe(handler func(T)) func() {
	return f(handler)
}

// Options configures a [List].
type Options[T any] struct {
	// Fetch is required.
	Fetch FetchFunc[T]
	// GetID is required.
	GetID func(T) string
	// PageSize defaults to DefaultPageSize.
	PageSize int
	// Live is optional.
	Live LiveSource[T]
	// Logger defaults to logger.Nop().
	Logger *logger.Logger
	// OnChange is called with a fresh snapshot after every state change.
	// It is invoked without the list lock held and may call back into the list.
	OnChange func(Snapshot[T])
}

// State is the pagination state of a list.
type State int

const (
	// StateIdle means no fetch is in flight and more pages may exist.
	StateIdle State = iota
	// StateLoading means a fetch is in flight.
	StateLoading
	// StateExhausted means the last page was short; only Refresh fetches again.
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent copy of the list state.
type Snapshot[T any] struct {
	Items   []T
	Loading bool
	HasMore bool
	State   State
}
