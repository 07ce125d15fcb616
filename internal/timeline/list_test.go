package timeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string
	Text string
}

func itemID(it item) string { return it.ID }

func items(ids ...string) []item {
	out := make([]item, 0, len(ids))
	for _, id := range ids {
		out = append(out, item{ID: id})
	}
	return out
}

func ids(list []item) []string {
	out := make([]string, 0, len(list))
	for _, it := range list {
		out = append(out, it.ID)
	}
	return out
}

// fakeFetcher serves pages keyed by cursor. A gate registered for a cursor
// blocks the fetch until the gate is closed.
type fakeFetcher struct {
	mu      sync.Mutex
	pages   map[string][]item
	errs    map[string]error
	gates   map[string]chan struct{}
	calls   []string
	entered chan string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		pages:   make(map[string][]item),
		errs:    make(map[string]error),
		gates:   make(map[string]chan struct{}),
		entered: make(chan string, 16),
	}
}

func (f *fakeFetcher) fetch(ctx context.Context, cursor string) ([]item, error) {
	f.mu.Lock()
	f.calls = append(f.calls, cursor)
	gate := f.gates[cursor]
	page, err := f.pages[cursor], f.errs[cursor]
	f.mu.Unlock()

	f.entered <- cursor
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return page, err
}

func (f *fakeFetcher) set(cursor string, page []item) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[cursor] = page
}

func (f *fakeFetcher) block(cursor string) chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	gate := make(chan struct{})
	f.gates[cursor] = gate
	return gate
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func waitEntered(t *testing.T, f *fakeFetcher, cursor string) {
	t.Helper()
	for {
		select {
		case got := <-f.entered:
			if got == cursor {
				return
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("fetch with cursor %q was not started", cursor)
		}
	}
}

// fakeLive records subscribers and lets a test push items.
type fakeLive struct {
	mu           sync.Mutex
	handlers     map[int]func(item)
	next         int
	unsubscribed int
}

func newFakeLive() *fakeLive {
	return &fakeLive{handlers: make(map[int]func(item))}
}

func (s *fakeLive) Subscribe(handler func(item)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.handlers[id] = handler
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.handlers[id]; ok {
			delete(s.handlers, id)
			s.unsubscribed++
		}
	}
}

func (s *fakeLive) push(it item) {
	s.mu.Lock()
	handlers := make([]func(item), 0, len(s.handlers))
	for _, h := range s.handlers {
		handlers = append(handlers, h)
	}
	s.mu.Unlock()
	for _, h := range handlers {
		h(it)
	}
}

func newTestList(t *testing.T, f *fakeFetcher, pageSize int) *List[item] {
	t.Helper()
	l, err := New(Options[item]{Fetch: f.fetch, GetID: itemID, PageSize: pageSize})
	require.NoError(t, err)
	return l
}

func TestNew_Validation(t *testing.T) {
	_, err := New(Options[item]{GetID: itemID})
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = New(Options[item]{Fetch: newFakeFetcher().fetch})
	assert.ErrorIs(t, err, ErrInvalidOptions)

	l, err := New(Options[item]{Fetch: newFakeFetcher().fetch, GetID: itemID})
	require.NoError(t, err)
	assert.Equal(t, DefaultPageSize, l.pageSize)

	snap := l.Snapshot()
	assert.Empty(t, snap.Items)
	assert.True(t, snap.HasMore)
	assert.False(t, snap.Loading)
	assert.Equal(t, StateIdle, snap.State)
}

func TestList_PaginatesUntilShortPage(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B", "C"))
	f.set("C", items("D", "E"))
	l := newTestList(t, f, 3)
	ctx := context.Background()

	require.NoError(t, l.Refresh(ctx))
	assert.Equal(t, []string{"A", "B", "C"}, ids(l.Items()))
	assert.True(t, l.Snapshot().HasMore)

	require.NoError(t, l.LoadMore(ctx))
	snap := l.Snapshot()
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, ids(snap.Items))
	assert.False(t, snap.HasMore)
	assert.Equal(t, StateExhausted, snap.State)

	require.NoError(t, l.LoadMore(ctx))
	assert.Equal(t, 2, f.callCount())
	assert.Equal(t, []string{"", "C"}, f.calls)
}

func TestList_LoadMoreDeduplicates(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B", "C"))
	f.set("C", items("C", "B", "D"))
	l := newTestList(t, f, 3)
	ctx := context.Background()

	require.NoError(t, l.Refresh(ctx))
	require.NoError(t, l.LoadMore(ctx))

	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(l.Items()))
	assert.True(t, l.Snapshot().HasMore)
}

func TestList_RefreshDeduplicatesWithinPage(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "A", "B"))
	l := newTestList(t, f, 3)

	require.NoError(t, l.Refresh(context.Background()))
	assert.Equal(t, []string{"A", "B"}, ids(l.Items()))
}

func TestList_Prepend(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B"))
	l := newTestList(t, f, 3)
	require.NoError(t, l.Refresh(context.Background()))
	before := l.Snapshot()

	assert.True(t, l.Prepend(item{ID: "X"}))
	assert.False(t, l.Prepend(item{ID: "A"}))

	after := l.Snapshot()
	assert.Equal(t, []string{"X", "A", "B"}, ids(after.Items))
	assert.Equal(t, before.HasMore, after.HasMore)
	assert.Equal(t, before.Loading, after.Loading)
}

func TestList_Update(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B", "C"))
	l := newTestList(t, f, 3)
	require.NoError(t, l.Refresh(context.Background()))

	assert.True(t, l.Update("B", item{ID: "B", Text: "edited"}))
	got, ok := l.Get("B")
	require.True(t, ok)
	assert.Equal(t, "edited", got.Text)
	assert.Equal(t, []string{"A", "B", "C"}, ids(l.Items()))

	assert.False(t, l.Update("Z", item{ID: "Z"}))
	assert.Equal(t, 3, l.Len())

	assert.False(t, l.Update("B", item{ID: "C"}), "replacement must not duplicate another id")

	assert.True(t, l.Update("B", item{ID: "B2"}))
	assert.Equal(t, []string{"A", "B2", "C"}, ids(l.Items()))
	_, ok = l.Get("B")
	assert.False(t, ok)
}

func TestList_RemoveIsIdempotent(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B", "C"))
	l := newTestList(t, f, 3)
	require.NoError(t, l.Refresh(context.Background()))

	assert.True(t, l.Remove("B"))
	assert.False(t, l.Remove("B"))
	assert.False(t, l.Remove("Z"))
	assert.Equal(t, []string{"A", "C"}, ids(l.Items()))

	assert.True(t, l.Prepend(item{ID: "B"}), "a removed id may come back")
	assert.Equal(t, []string{"B", "A", "C"}, ids(l.Items()))
}

func TestList_LoadMoreIgnoredWhileLoading(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B", "C"))
	f.set("C", items("D", "E", "F"))
	l := newTestList(t, f, 3)
	ctx := context.Background()
	require.NoError(t, l.Refresh(ctx))
	waitEntered(t, f, "")

	gate := f.block("C")
	done := make(chan error, 1)
	go func() { done <- l.LoadMore(ctx) }()
	waitEntered(t, f, "C")

	assert.True(t, l.Snapshot().Loading)
	assert.Equal(t, StateLoading, l.Snapshot().State)
	assert.False(t, l.ShouldLoadMore(2, 5))
	require.NoError(t, l.LoadMore(ctx))
	assert.Equal(t, 2, f.callCount())

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, ids(l.Items()))
	assert.False(t, l.Snapshot().Loading)
}

func TestList_RefreshResetsExhausted(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A"))
	l := newTestList(t, f, 3)
	ctx := context.Background()

	require.NoError(t, l.Refresh(ctx))
	assert.Equal(t, StateExhausted, l.Snapshot().State)

	f.set("", items("N", "A", "B"))
	require.NoError(t, l.Refresh(ctx))
	snap := l.Snapshot()
	assert.Equal(t, []string{"N", "A", "B"}, ids(snap.Items))
	assert.True(t, snap.HasMore)
	assert.False(t, snap.Loading)
}

func TestList_RefreshReplacesLivePrepends(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B", "C"))
	l := newTestList(t, f, 3)
	ctx := context.Background()
	require.NoError(t, l.Refresh(ctx))
	l.Prepend(item{ID: "X"})

	require.NoError(t, l.Refresh(ctx))
	assert.Equal(t, []string{"A", "B", "C"}, ids(l.Items()))
}

func TestList_StaleLoadMoreDiscardedAfterRefresh(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B", "C"))
	f.set("C", items("D", "E", "F"))
	l := newTestList(t, f, 3)
	ctx := context.Background()
	require.NoError(t, l.Refresh(ctx))
	waitEntered(t, f, "")

	gate := f.block("C")
	done := make(chan error, 1)
	go func() { done <- l.LoadMore(ctx) }()
	waitEntered(t, f, "C")

	f.set("", items("N", "M", "A"))
	require.NoError(t, l.Refresh(ctx))
	waitEntered(t, f, "")

	close(gate)
	require.NoError(t, <-done)

	snap := l.Snapshot()
	assert.Equal(t, []string{"N", "M", "A"}, ids(snap.Items))
	assert.False(t, snap.Loading)
	assert.True(t, snap.HasMore)
}

func TestList_FetchErrorResetsLoading(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B", "C"))
	l := newTestList(t, f, 3)
	ctx := context.Background()
	require.NoError(t, l.Refresh(ctx))

	boom := errors.New("boom")
	f.mu.Lock()
	f.errs["C"] = boom
	f.mu.Unlock()

	err := l.LoadMore(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.ErrorIs(t, err, boom)

	snap := l.Snapshot()
	assert.False(t, snap.Loading)
	assert.True(t, snap.HasMore)
	assert.Equal(t, []string{"A", "B", "C"}, ids(snap.Items))

	f.mu.Lock()
	delete(f.errs, "C")
	f.mu.Unlock()
	f.set("C", items("D"))
	require.NoError(t, l.LoadMore(ctx))
	assert.Equal(t, []string{"A", "B", "C", "D"}, ids(l.Items()))
}

func TestList_RefreshErrorKeepsItems(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A"))
	l := newTestList(t, f, 3)
	ctx := context.Background()
	require.NoError(t, l.Refresh(ctx))

	f.mu.Lock()
	f.errs[""] = errors.New("offline")
	f.mu.Unlock()

	err := l.Refresh(ctx)
	assert.ErrorIs(t, err, ErrFetchFailed)
	snap := l.Snapshot()
	assert.Equal(t, []string{"A"}, ids(snap.Items))
	assert.False(t, snap.Loading)
}

func TestList_CloseDropsLateResults(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B", "C"))
	f.set("C", items("D", "E", "F"))
	live := newFakeLive()
	l, err := New(Options[item]{Fetch: f.fetch, GetID: itemID, PageSize: 3, Live: live})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, l.Start(ctx))
	waitEntered(t, f, "")

	gate := f.block("C")
	done := make(chan error, 1)
	go func() { done <- l.LoadMore(ctx) }()
	waitEntered(t, f, "C")

	l.Close()
	l.Close()
	close(gate)
	require.NoError(t, <-done)

	assert.Equal(t, []string{"A", "B", "C"}, ids(l.Items()))
	assert.Equal(t, 1, live.unsubscribed)

	live.push(item{ID: "X"})
	assert.Equal(t, 3, l.Len())
	assert.False(t, l.Prepend(item{ID: "Y"}))
	assert.False(t, l.Remove("A"))
	assert.False(t, l.Update("A", item{ID: "A"}))
	assert.ErrorIs(t, l.Refresh(ctx), ErrClosed)
	assert.ErrorIs(t, l.LoadMore(ctx), ErrClosed)
	assert.ErrorIs(t, l.Start(ctx), ErrClosed)
}

func TestList_StartSubscribesOnce(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B"))
	live := newFakeLive()
	l, err := New(Options[item]{Fetch: f.fetch, GetID: itemID, PageSize: 3, Live: live})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, l.Start(ctx))
	require.NoError(t, l.Start(ctx))
	assert.Len(t, live.handlers, 1)

	live.push(item{ID: "X"})
	live.push(item{ID: "X"})
	assert.Equal(t, []string{"X", "A", "B"}, ids(l.Items()))

	l.Close()
	assert.Empty(t, live.handlers)
}

func TestList_LiveSourceFunc(t *testing.T) {
	var handler func(item)
	unsubscribed := false
	src := LiveSourceFunc[item](func(h func(item)) func() {
		handler = h
		return func() { unsubscribed = true }
	})

	f := newFakeFetcher()
	l, err := New(Options[item]{Fetch: f.fetch, GetID: itemID, Live: src})
	require.NoError(t, err)
	require.NoError(t, l.Start(context.Background()))

	handler(item{ID: "X"})
	assert.Equal(t, []string{"X"}, ids(l.Items()))
	l.Close()
	assert.True(t, unsubscribed)
}

func TestList_ShouldLoadMore(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B", "C", "D", "E", "F", "G", "H", "I", "J"))
	l := newTestList(t, f, 10)
	require.NoError(t, l.Refresh(context.Background()))

	assert.False(t, l.ShouldLoadMore(0, 5))
	assert.False(t, l.ShouldLoadMore(4, 5))
	assert.True(t, l.ShouldLoadMore(5, 5))
	assert.True(t, l.ShouldLoadMore(9, 1))
	assert.False(t, l.ShouldLoadMore(8, 1))

	f.set("J", items("K"))
	require.NoError(t, l.LoadMore(context.Background()))
	assert.False(t, l.ShouldLoadMore(10, 5), "exhausted list never asks for more")
}

func TestList_OnChange(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B"))

	var (
		mu    sync.Mutex
		snaps []Snapshot[item]
	)
	l, err := New(Options[item]{
		Fetch:    f.fetch,
		GetID:    itemID,
		PageSize: 3,
		OnChange: func(s Snapshot[item]) {
			mu.Lock()
			defer mu.Unlock()
			snaps = append(snaps, s)
		},
	})
	require.NoError(t, err)

	require.NoError(t, l.Refresh(context.Background()))
	l.Prepend(item{ID: "X"})
	l.Remove("missing")

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, snaps, 3)
	assert.True(t, snaps[0].Loading)
	assert.Equal(t, StateLoading, snaps[0].State)
	assert.Equal(t, []string{"A", "B"}, ids(snaps[1].Items))
	assert.Equal(t, StateExhausted, snaps[1].State)
	assert.Equal(t, []string{"X", "A", "B"}, ids(snaps[2].Items))
}

func TestList_Seed(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("N", "A"))
	l := newTestList(t, f, 3)

	assert.Equal(t, 2, l.Seed(items("A", "B", "A")))
	assert.Equal(t, []string{"A", "B"}, ids(l.Items()))
	assert.Zero(t, l.Seed(items("C")))

	require.NoError(t, l.Refresh(context.Background()))
	assert.Equal(t, []string{"N", "A"}, ids(l.Items()))
}

func TestList_SeedIgnoredWhileLoading(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("N"))
	l := newTestList(t, f, 3)
	ctx := context.Background()

	gate := f.block("")
	done := make(chan error, 1)
	go func() { done <- l.Refresh(ctx) }()
	waitEntered(t, f, "")

	assert.Zero(t, l.Seed(items("A", "B")))
	assert.Empty(t, l.Items())

	close(gate)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"N"}, ids(l.Items()))
}

func TestList_ConcurrentMutations(t *testing.T) {
	f := newFakeFetcher()
	f.set("", items("A", "B", "C"))
	l := newTestList(t, f, 3)
	require.NoError(t, l.Refresh(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() { defer wg.Done(); l.Prepend(item{ID: "X"}) }()
		go func() { defer wg.Done(); l.Update("B", item{ID: "B", Text: "u"}) }()
		go func() { defer wg.Done(); _ = l.Items() }()
	}
	wg.Wait()

	assert.Equal(t, []string{"X", "A", "B", "C"}, ids(l.Items()))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "exhausted", StateExhausted.String())
	assert.Equal(t, "unknown", State(42).String())
}
