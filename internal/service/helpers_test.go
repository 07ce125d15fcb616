package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/tootline/models"
)

func statuses(ids ...string) []models.Status {
	out := make([]models.Status, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Status{ID: id})
	}
	return out
}

func statusIDs(list []models.Status) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}

// fakeChannel is an in-memory LiveChannel.
type fakeChannel struct {
	mu       sync.Mutex
	handlers map[string]map[int]func([]byte)
	next     int
	started  int
	closed   int
	startErr error
}

func newFakeChannel() *fakeChannel {
	return &fakeChannel{handlers: make(map[string]map[int]func([]byte))}
}

func (c *fakeChannel) On(event string, handler func([]byte)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handlers[event] == nil {
		c.handlers[event] = make(map[int]func([]byte))
	}
	id := c.next
	c.next++
	c.handlers[event][id] = handler
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.handlers[event], id)
	}
}

func (c *fakeChannel) emit(event string, payload string) {
	c.mu.Lock()
	hs := make([]func([]byte), 0, len(c.handlers[event]))
	for _, h := range c.handlers[event] {
		hs = append(hs, h)
	}
	c.mu.Unlock()
	for _, h := range hs {
		h([]byte(payload))
	}
}

func (c *fakeChannel) listeners() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, hs := range c.handlers {
		n += len(hs)
	}
	return n
}

func (c *fakeChannel) Start(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started++
	return c.startErr
}

func (c *fakeChannel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
}

// fakeTracker records Track and Untrack calls.
type fakeTracker struct {
	mu        sync.Mutex
	tracked   map[string]ItemsSource
	untracked []string
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{tracked: make(map[string]ItemsSource)}
}

func (t *fakeTracker) Track(key string, src ItemsSource) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tracked[key] = src
}

func (t *fakeTracker) Untrack(key string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.tracked, key)
	t.untracked = append(t.untracked, key)
}

func (t *fakeTracker) SaveAll(context.Context) error        { return nil }
func (t *fakeTracker) Start(context.Context, time.Duration) {}
func (t *fakeTracker) Stop()                                {}

type fixedID string

func (f fixedID) Generate() string { return string(f) }
