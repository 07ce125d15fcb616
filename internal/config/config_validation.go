// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks that the merged configuration can be used at startup.
func (cfg *StructuredConfig) validate() error {
	u, err := url.Parse(strings.TrimSpace(cfg.Instance.URL))
	if cfg.Instance.URL == "" || err != nil || u.Host == "" {
		return fmt.Errorf("%w: instance url %q", ErrInvalidInstanceConfigs, cfg.Instance.URL)
	}
	if cfg.Instance.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidInstanceConfigs)
	}

	if cfg.Timeline.PageSize < 1 || cfg.Timeline.PageSize > MaxPageSize {
		return fmt.Errorf("%w: page size %d", ErrInvalidTimelineConfigs, cfg.Timeline.PageSize)
	}
	if cfg.Timeline.Lookahead < 0 {
		return fmt.Errorf("%w: lookahead %d", ErrInvalidTimelineConfigs, cfg.Timeline.Lookahead)
	}
	switch cfg.Timeline.Default {
	case "home", "local", "public":
	default:
		return fmt.Errorf("%w: timeline %q", ErrInvalidTimelineConfigs, cfg.Timeline.Default)
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SnapshotInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
