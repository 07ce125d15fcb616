// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Visibility is the audience of a status as understood by the instance.
type Visibility string

const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
	VisibilityDirect   Visibility = "direct"
)

// Valid reports whether v is one of the visibilities accepted by the instance.
// The empty value is valid and means "use the account default".
func (v Visibility) Valid() bool {
	switch v {
	case "", VisibilityPublic, VisibilityUnlisted, VisibilityPrivate, VisibilityDirect:
		return true
	default:
		return false
	}
}

// Status is a single post on a timeline. A boost is a Status whose Reblog
// field points at the boosted post.
type Status struct {
	// ID is the instance-local identifier. Timelines are paginated by it.
	ID  string `json:"id"`
	URI string `json:"uri"`
	URL string `json:"url,omitempty"`

	// Content is the rendered HTML body of the status.
	Content     string     `json:"content"`
	SpoilerText string     `json:"spoiler_text"`
	Visibility  Visibility `json:"visibility"`
	Language    string     `json:"language,omitempty"`
	Sensitive   bool       `json:"sensitive"`
	CreatedAt   time.Time  `json:"created_at"`
	EditedAt    *time.Time `json:"edited_at,omitempty"`

	InReplyToID        string `json:"in_reply_to_id,omitempty"`
	InReplyToAccountID string `json:"in_reply_to_account_id,omitempty"`

	Account Account `json:"account"`
	Reblog  *Status `json:"reblog,omitempty"`

	RepliesCount    int `json:"replies_count"`
	ReblogsCount    int `json:"reblogs_count"`
	FavouritesCount int `json:"favourites_count"`

	Favourited bool `json:"favourited"`
	Reblogged  bool `json:"reblogged"`
	Bookmarked bool `json:"bookmarked"`

	MediaAttachments []MediaAttachment `json:"media_attachments"`
	Poll             *Poll             `json:"poll,omitempty"`
	Mentions         []Mention         `json:"mentions"`
	Tags             []Tag             `json:"tags"`
	Emojis           []Emoji           `json:"emojis"`
}

// Target returns the status that user actions apply to: the boosted status
// for a boost, the status itself otherwise.
func (s *Status) Target() *Status {
	if s.Reblog != nil {
		return s.Reblog
	}
	return s
}

// StatusID extracts the identifier of s. It is the identity function used by
// status timelines.
func StatusID(s Status) string {
	return s.ID
}

// Mention is an account mentioned in a status.
type Mention struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Acct     string `json:"acct"`
	URL      string `json:"url"`
}

// Tag is a hashtag used in a status or returned by search.
type Tag struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Emoji is a custom emoji defined by the instance.
type Emoji struct {
	Shortcode       string `json:"shortcode"`
	URL             string `json:"url"`
	StaticURL       string `json:"static_url"`
	VisibleInPicker bool   `json:"visible_in_picker"`
}

// Context holds the thread around a status.
type Context struct {
	Ancestors   []Status `json:"ancestors"`
	Descendants []Status `json:"descendants"`
}

// SearchResults is the response of the v2 search endpoint.
type SearchResults struct {
	Accounts []Account `json:"accounts"`
	Statuses []Status  `json:"statuses"`
	Hashtags []Tag     `json:"hashtags"`
}
