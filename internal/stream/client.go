// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package stream implements the live channel: a WebSocket client for the
// instance streaming API that fans decoded events out to subscribers.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/models"
	"github.com/gorilla/websocket"
)

// ConnectionState is the state of the streaming connection.
type ConnectionState int32

const (
	StateDisconnected ConnectionState = iota
	StateConnecting
	StateConnected
	StateReconnecting
	StateClosed
)

func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateReconnecting:
		return "reconnecting"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Config holds streaming client configuration.
type Config struct {
	// BaseURL is the instance or streaming server address. http(s) schemes
	// are turned into ws(s).
	BaseURL string
	// Stream is the stream name, e.g. "user", "public:local", "hashtag".
	Stream string
	// Tag is required for the "hashtag" stream.
	Tag   string
	Token string

	ConnectTimeout     time.Duration
	ReconnectBaseDelay time.Duration
	ReconnectMaxDelay  time.Duration
}

// DefaultConfig returns the reconnect and timeout settings used by the client.
func DefaultConfig() Config {
	return Config{
		ConnectTimeout:     15 * time.Second,
		ReconnectBaseDelay: 2 * time.Second,
		ReconnectMaxDelay:  time.Minute,
	}
}

// Client manages a single streaming connection and reconnects until Close.
type Client struct {
	cfg    Config
	dialer *websocket.Dialer
	log    *logger.Logger

	state atomic.Int32

	listenersMu sync.RWMutex
	listeners   map[string]map[uint64]func([]byte)
	nextID      uint64

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewClient creates a disconnected client.
func NewClient(cfg Config, log *logger.Logger) *Client {
	def := DefaultConfig()
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = def.ConnectTimeout
	}
	if cfg.ReconnectBaseDelay <= 0 {
		cfg.ReconnectBaseDelay = def.ReconnectBaseDelay
	}
	if cfg.ReconnectMaxDelay < cfg.ReconnectBaseDelay {
		cfg.ReconnectMaxDelay = max(def.ReconnectMaxDelay, cfg.ReconnectBaseDelay)
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Client{
		cfg:       cfg,
		dialer:    &websocket.Dialer{HandshakeTimeout: cfg.ConnectTimeout, Proxy: http.ProxyFromEnvironment},
		log:       log.WithComponent("stream"),
		listeners: make(map[string]map[uint64]func([]byte)),
	}
}

// StreamURL builds the streaming endpoint address for cfg.
func StreamURL(cfg Config) (string, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		return "", ErrEmptyURL
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse streaming url: %w", err)
	}

	switch u.Scheme {
	case "https", "wss":
		u.Scheme = "wss"
	case "http", "ws":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/api/v1/streaming"
	q := url.Values{}
	q.Set("stream", cfg.Stream)
	if cfg.Tag != "" {
		q.Set("tag", cfg.Tag)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// State returns the current connection state.
func (c *Client) State() ConnectionState {
	return ConnectionState(c.state.Load())
}

func (c *Client) setState(s ConnectionState) {
	c.state.Store(int32(s))
}

// On subscribes handler to event. Handlers run on the read goroutine in the
// order frames arrive and receive the raw payload. The returned function
// removes exactly this handler.
func (c *Client) On(event string, handler func(payload []byte)) (off func()) {
	c.listenersMu.Lock()
	c.nextID++
	id := c.nextID
	if c.listeners[event] == nil {
		c.listeners[event] = make(map[uint64]func([]byte))
	}
	c.listeners[event][id] = handler
	c.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.listenersMu.Lock()
			defer c.listenersMu.Unlock()
			delete(c.listeners[event], id)
			if len(c.listeners[event]) == 0 {
				delete(c.listeners, event)
			}
		})
	}
}

// Listeners returns the number of handlers registered for event.
func (c *Client) Listeners(event string) int {
	c.listenersMu.RLock()
	defer c.listenersMu.RUnlock()
	return len(c.listeners[event])
}

// Start connects in the background and keeps reconnecting with capped
// exponential backoff until ctx is done or Close is called.
func (c *Client) Start(ctx context.Context) error {
	target, err := StreamURL(c.cfg)
	if err != nil {
		return err
	}

	c.runMu.Lock()
	defer c.runMu.Unlock()
	if c.done != nil {
		return ErrAlreadyStarted
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.run(runCtx, target, c.done)

	return nil
}

// Close stops the connection loop and waits for it to exit.
func (c *Client) Close() {
	c.runMu.Lock()
	cancel, done := c.cancel, c.done
	c.runMu.Unlock()

	if cancel == nil {
		c.setState(StateClosed)
		return
	}
	cancel()
	<-done
}

func (c *Client) run(ctx context.Context, target string, done chan struct{}) {
	defer close(done)
	defer c.setState(StateClosed)

	delay := c.cfg.ReconnectBaseDelay
	for attempt := 0; ; attempt++ {
		if attempt == 0 {
			c.setState(StateConnecting)
		} else {
			c.setState(StateReconnecting)
		}

		conn, err := c.dial(ctx, target)
		if err == nil {
			c.setState(StateConnected)
			c.log.Debug().Str("stream", c.cfg.Stream).Msg("streaming connected")
			delay = c.cfg.ReconnectBaseDelay
			err = c.readLoop(ctx, conn)
		}
		if ctx.Err() != nil {
			return
		}

		wait := delay + rand.N(delay/2+1)
		c.log.Warn().Err(err).Dur("wait", wait).Str("stream", c.cfg.Stream).Msg("streaming disconnected, reconnecting")

		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}
		delay = min(delay*2, c.cfg.ReconnectMaxDelay)
	}
}

func (c *Client) dial(ctx context.Context, target string) (*websocket.Conn, error) {
	header := http.Header{}
	if c.cfg.Token != "" {
		header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	conn, resp, err := c.dialer.DialContext(ctx, target, header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("dial streaming api: %s: %w", resp.Status, err)
		}
		return nil, fmt.Errorf("dial streaming api: %w", err)
	}

	return conn, nil
}

// readLoop dispatches frames until the connection fails or ctx is done.
func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			conn.Close()
		case <-stop:
			conn.Close()
		}
	}()

	for {
		var ev models.StreamEvent
		if err := conn.ReadJSON(&ev); err != nil {
			if _, ok := err.(*json.SyntaxError); ok {
				c.log.Debug().Err(err).Msg("skipping malformed frame")
				continue
			}
			return fmt.Errorf("read streaming frame: %w", err)
		}
		c.dispatch(ev)
	}
}

func (c *Client) dispatch(ev models.StreamEvent) {
	c.listenersMu.RLock()
	handlers := make([]func([]byte), 0, len(c.listeners[ev.Event]))
	for _, h := range c.listeners[ev.Event] {
		handlers = append(handlers, h)
	}
	c.listenersMu.RUnlock()

	payload := []byte(ev.Payload)
	for _, h := range handlers {
		h(payload)
	}
}
