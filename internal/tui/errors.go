// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/tootline/internal/adapter"
)

var ErrNoServices = errors.New("tui: services are required")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "The access token was rejected by the instance"
	case errors.Is(err, adapter.ErrRateLimited):
		return "Rate limited, try again in a moment"
	case errors.Is(err, adapter.ErrNotFound):
		return "Not found (it may have been deleted)"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the instance is unavailable"
	}

	return err.Error()
}
