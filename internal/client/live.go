// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"

	"github.com/MKhiriev/tootline/internal/config"
	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/internal/service"
	"github.com/MKhiriev/tootline/internal/stream"
	"github.com/MKhiriev/tootline/models"
)

// NewLiveChannelFactory returns a factory that opens one streaming
// connection per live feed of the configured instance.
func NewLiveChannelFactory(cfg config.Instance, log *logger.Logger) service.LiveChannelFactory {
	base := cfg.StreamingURL
	if base == "" {
		base = cfg.URL
	}

	return func(ref models.TimelineRef) (service.LiveChannel, error) {
		sc := stream.DefaultConfig()
		sc.BaseURL = base
		sc.Stream = ref.StreamName()
		sc.Token = cfg.AccessToken
		if ref.Kind == models.TimelineHashtag {
			sc.Tag = ref.Arg
		}
		if sc.Stream == "" {
			return nil, fmt.Errorf("%w: %s", service.ErrUnsupportedTimeline, ref.Key())
		}
		if _, err := stream.StreamURL(sc); err != nil {
			return nil, err
		}

		return stream.NewClient(sc, log), nil
	}
}
