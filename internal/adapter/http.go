package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/tootline/internal/config"
	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/internal/utils"
	"github.com/go-resty/resty/v2"
)

type httpInstanceAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPInstanceAdapter constructs the REST implementation of
// [InstanceAdapter]. It normalises and validates cfg.URL, configures the
// underlying HTTP client with the resolved base URL, request timeout and
// userAgent, and stores cfg.AccessToken as the bearer token.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewHTTPInstanceAdapter(cfg config.Instance, userAgent string, log *logger.Logger) (InstanceAdapter, error) {
	baseURL, err := NormalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid instance url: %w", err)
	}

	client := utils.NewHTTPClient(userAgent)
	client.SetBaseURL(baseURL)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	a := &httpInstanceAdapter{client: client, logger: log.WithComponent("adapter")}
	withLogging(client.Client, a.logger)
	a.SetToken(cfg.AccessToken)

	return a, nil
}

// NormalizeBaseURL trims raw, defaults the scheme to https and strips any
// trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", fmt.Errorf("missing host in %q", raw)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpInstanceAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpInstanceAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpInstanceAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// execute sends req and decodes a successful JSON response into out. A nil
// out discards the body.
func (h *httpInstanceAdapter) execute(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("instance rejected request")
		return err
	}
	if out == nil {
		return nil
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// pageQuery converts page params into Mastodon's limit/max_id parameters.
func pageQuery(limit int, maxID string) url.Values {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if maxID != "" {
		q.Set("max_id", maxID)
	}
	return q
}
