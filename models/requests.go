// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// PageParams selects a page of a paginated collection. An empty MaxID asks
// for the newest page.
type PageParams struct {
	Limit int
	MaxID string
}

// StatusRequest is the body used to publish or edit a status.
type StatusRequest struct {
	Status      string       `json:"status"`
	InReplyToID string       `json:"in_reply_to_id,omitempty"`
	MediaIDs    []string     `json:"media_ids,omitempty"`
	Sensitive   bool         `json:"sensitive,omitempty"`
	SpoilerText string       `json:"spoiler_text,omitempty"`
	Visibility  Visibility   `json:"visibility,omitempty"`
	Language    string       `json:"language,omitempty"`
	Poll        *PollRequest `json:"poll,omitempty"`
}

// PollRequest describes a poll created together with a status.
type PollRequest struct {
	Options []string `json:"options"`
	// ExpiresIn is the poll duration in seconds.
	ExpiresIn int  `json:"expires_in"`
	Multiple  bool `json:"multiple,omitempty"`
}

// PollDurations lists the poll lifetimes offered when composing.
var PollDurations = []time.Duration{
	5 * time.Minute,
	30 * time.Minute,
	time.Hour,
	6 * time.Hour,
	24 * time.Hour,
	3 * 24 * time.Hour,
	7 * 24 * time.Hour,
}

// VoteRequest is the body of a poll vote.
type VoteRequest struct {
	Choices []int `json:"choices"`
}
