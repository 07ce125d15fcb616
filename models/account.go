// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is a user profile on some instance of the network.
type Account struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Acct        string    `json:"acct"`
	DisplayName string    `json:"display_name"`
	Note        string    `json:"note"`
	URL         string    `json:"url"`
	Avatar      string    `json:"avatar"`
	Header      string    `json:"header"`
	Bot         bool      `json:"bot"`
	Locked      bool      `json:"locked"`
	CreatedAt   time.Time `json:"created_at"`

	FollowersCount int `json:"followers_count"`
	FollowingCount int `json:"following_count"`
	StatusesCount  int `json:"statuses_count"`

	Fields []Field `json:"fields"`
	Emojis []Emoji `json:"emojis"`
}

// Field is a profile metadata entry.
type Field struct {
	Name       string     `json:"name"`
	Value      string     `json:"value"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

// DisplayNameOrUsername returns the display name, falling back to the
// username when the account has not set one.
func (a Account) DisplayNameOrUsername() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return a.Username
}

// AccountID extracts the identifier of a. It is the identity function used
// by account lists.
func AccountID(a Account) string {
	return a.ID
}

// Relationship describes how the authenticated user relates to an account.
type Relationship struct {
	ID         string `json:"id"`
	Following  bool   `json:"following"`
	FollowedBy bool   `json:"followed_by"`
	Blocking   bool   `json:"blocking"`
	Muting     bool   `json:"muting"`
	Requested  bool   `json:"requested"`
}
