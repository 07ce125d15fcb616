// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Poll is attached to a status.
type Poll struct {
	ID          string       `json:"id"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"`
	Expired     bool         `json:"expired"`
	Multiple    bool         `json:"multiple"`
	VotesCount  int          `json:"votes_count"`
	VotersCount *int         `json:"voters_count,omitempty"`
	Voted       bool         `json:"voted"`
	OwnVotes    []int        `json:"own_votes"`
	Options     []PollOption `json:"options"`
}

// PollOption is a single answer of a poll.
type PollOption struct {
	Title      string `json:"title"`
	VotesCount *int   `json:"votes_count,omitempty"`
}

// Percent returns the share of votes for option i rounded down, or 0 when
// nobody voted yet or the count is hidden.
func (p Poll) Percent(i int) int {
	if i < 0 || i >= len(p.Options) || p.VotesCount == 0 || p.Options[i].VotesCount == nil {
		return 0
	}
	return *p.Options[i].VotesCount * 100 / p.VotesCount
}

// Closed reports whether p no longer accepts votes from the current user.
func (p Poll) Closed() bool {
	return p.Voted || p.Expired
}
