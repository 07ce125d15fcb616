// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Streaming API event names.
const (
	EventUpdate       = "update"
	EventDelete       = "delete"
	EventStatusUpdate = "status.update"
	EventNotification = "notification"
)

// StreamEvent is a frame received from the streaming API. Payload is itself
// a JSON document encoded as a string (or a bare id for "delete").
type StreamEvent struct {
	Stream  []string `json:"stream,omitempty"`
	Event   string   `json:"event"`
	Payload string   `json:"payload"`
}
