// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package timeline

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/tootline/internal/logger"
)

// List is an incremental, duplicate-free list synchronizer.
type List[T any] struct {
	fetch    FetchFunc[T]
	getID    func(T) string
	pageSize int
	live     LiveSource[T]
	log      *logger.Logger
	onChange func(Snapshot[T])

	mu          sync.Mutex
	items       []T
	ids         map[string]struct{}
	loading     bool
	hasMore     bool
	generation  uint64
	closed      bool
	unsubscribe func()
}

// New creates an empty list. It returns ErrInvalidOptions when Fetch or
// GetID is nil.
func New[T any](opts Options[T]) (*List[T], error) {
	if opts.Fetch == nil || opts.GetID == nil {
		return nil, fmt.Errorf("%w: fetch and id extractor are required", ErrInvalidOptions)
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &List[T]{
		fetch:    opts.Fetch,
		getID:    opts.GetID,
		pageSize: pageSize,
		live:     opts.Live,
		log:      log,
		onChange: opts.OnChange,
		ids:      make(map[string]struct{}),
		hasMore:  true,
	}, nil
}

// Start subscribes to the live source, if any, and loads the first page.
// Live items that arrive before the first page are kept unless the page
// replaces them.
func (l *List[T]) Start(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	subscribe := l.live != nil && l.unsubscribe == nil
	l.mu.Unlock()

	if subscribe {
		unsubscribe := l.live.Subscribe(func(item T) { l.Prepend(item) })

		l.mu.Lock()
		switch {
		case l.closed:
			l.mu.Unlock()
			unsubscribe()
			return ErrClosed
		case l.unsubscribe != nil:
			l.mu.Unlock()
			unsubscribe()
		default:
			l.unsubscribe = unsubscribe
			l.mu.Unlock()
		}
	}

	return l.Refresh(ctx)
}

// Close unsubscribes from the live source and freezes the list. Results of
// fetches still in flight are dropped. Close is idempotent.
func (l *List[T]) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.generation++
	l.loading = false
	unsubscribe := l.unsubscribe
	l.unsubscribe = nil
	l.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Refresh replaces the list with a freshly fetched first page. Any load-more
// in flight is superseded and its result discarded.
func (l *List[T]) Refresh(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.generation++
	gen := l.generation
	l.loading = true
	l.hasMore = true
	l.mu.Unlock()
	l.notify()

	page, err := l.fetchPage(ctx, gen, "")
	if err != nil {
		return err
	}

	l.mu.Lock()
	if gen != l.generation {
		l.mu.Unlock()
		l.log.Debug().Uint64("generation", gen).Msg("dropping stale refresh result")
		return nil
	}
	l.items = l.items[:0:0]
	l.ids = make(map[string]struct{}, len(page))
	l.appendUnique(page)
	l.hasMore = len(page) >= l.pageSize
	l.mu.Unlock()
	l.notify()

	return nil
}

// LoadMore appends the next page. It does nothing when pagination is
// exhausted or another fetch is in flight; the call is ignored, not queued.
func (l *List[T]) LoadMore(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	if l.loading || !l.hasMore {
		l.mu.Unlock()
		return nil
	}
	var cursor string
	if n := len(l.items); n > 0 {
		cursor = l.getID(l.items[n-1])
	}
	gen := l.generation
	l.loading = true
	l.mu.Unlock()
	l.notify()

	page, err := l.fetchPage(ctx, gen, cursor)
	if err != nil {
		return err
	}

	l.mu.Lock()
	if gen != l.generation {
		l.mu.Unlock()
		l.log.Debug().Uint64("generation", gen).Str("cursor", cursor).Msg("dropping stale page")
		return nil
	}
	added := l.appendUnique(page)
	if len(page) < l.pageSize {
		l.hasMore = false
	}
	l.mu.Unlock()
	l.notify()

	l.log.Debug().Str("cursor", cursor).Int("fetched", len(page)).Int("added", added).Msg("page appended")
	return nil
}

// fetchPage runs the fetch without the lock. The loading flag is always
// cleared for the generation that set it, whatever the outcome.
func (l *List[T]) fetchPage(ctx context.Context, gen uint64, cursor string) (page []T, err error) {
	defer func() {
		l.mu.Lock()
		current := gen == l.generation
		if current {
			l.loading = false
		}
		l.mu.Unlock()
		if current && err != nil {
			l.notify()
		}
	}()

	page, err = l.fetch(ctx, cursor)
	if err != nil {
		l.log.Error().Err(err).Str("cursor", cursor).Msg("fetch failed")
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	return page, nil
}

// appendUnique appends the items whose id is not held yet. Caller holds mu.
func (l *List[T]) appendUnique(page []T) int {
	added := 0
	for _, item := range page {
		id := l.getID(item)
		if _, ok := l.ids[id]; ok {
			continue
		}
		l.ids[id] = struct{}{}
		l.items = append(l.items, item)
		added++
	}
	return added
}

// Prepend inserts a live item at the head. It returns false when the list
// is closed or already holds an item with the same id.
func (l *List[T]) Prepend(item T) bool {
	id := l.getID(item)

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	if _, ok := l.ids[id]; ok {
		l.mu.Unlock()
		return false
	}
	l.ids[id] = struct{}{}
	l.items = append(l.items, item)
	copy(l.items[1:], l.items[:len(l.items)-1])
	l.items[0] = item
	l.mu.Unlock()
	l.notify()

	return true
}

// Update replaces the item with the given id, keeping its position. It
// returns false when no such item exists or when the replacement carries an
// id already held by another item.
func (l *List[T]) Update(id string, item T) bool {
	newID := l.getID(item)

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	i := l.indexOf(id)
	if i < 0 {
		l.mu.Unlock()
		return false
	}
	if newID != id {
		if _, taken := l.ids[newID]; taken {
			l.mu.Unlock()
			return false
		}
		delete(l.ids, id)
		l.ids[newID] = struct{}{}
	}
	l.items[i] = item
	l.mu.Unlock()
	l.notify()

	return true
}

// Remove deletes the item with the given id. Removing an absent id is a no-op.
func (l *List[T]) Remove(id string) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	i := l.indexOf(id)
	if i < 0 {
		l.mu.Unlock()
		return false
	}
	delete(l.ids, id)
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.mu.Unlock()
	l.notify()

	return true
}

// indexOf returns the position of id or -1. Caller holds mu.
func (l *List[T]) indexOf(id string) int {
	if _, ok := l.ids[id]; !ok {
		return -1
	}
	for i, item := range l.items {
		if l.getID(item) == id {
			return i
		}
	}
	return -1
}

// Items returns a copy of the held items.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of held items.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Get returns the item with the given id.
func (l *List[T]) Get(id string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.indexOf(id); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// Snapshot returns a consistent copy of the list state.
func (l *List[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *List[T]) snapshotLocked() Snapshot[T] {
	items := make([]T, len(l.items))
	copy(items, l.items)

	state := StateIdle
	switch {
	case l.loading:
		state = StateLoading
	case !l.hasMore:
		state = StateExhausted
	}

	return Snapshot[T]{
		Items:   items,
		Loading: l.loading,
		HasMore: l.hasMore,
		State:   state,
	}
}

// ShouldLoadMore reports whether a viewer positioned at visibleIndex has
// come within lookahead items of the end and a load-more would fetch.
func (l *List[T]) ShouldLoadMore(visibleIndex, lookahead int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || l.loading || !l.hasMore {
		return false
	}
	return visibleIndex >= len(l.items)-lookahead
}

// Seed fills an empty list with cached items before the first fetch. It is a
// no-op once the list holds anything or while a fetch is in flight.
func (l *List[T]) Seed(items []T) int {
	l.mu.Lock()
	if l.closed || l.loading || len(l.items) > 0 {
		l.mu.Unlock()
		return 0
	}
	added := l.appendUnique(items)
	l.mu.Unlock()
	if added > 0 {
		l.notify()
	}
	return added
}

func (l *List[T]) notify() {
	if l.onChange == nil {
		return
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.onChange(snap)
}
