// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/tootline/internal/logger"
)

// withLogging registers a response hook that logs every completed call to
// the instance at debug level.
func withLogging(client *resty.Client, log *logger.Logger) {
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int64("size", resp.Size()).
			Send()
		return nil
	})
}
