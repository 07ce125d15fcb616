// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TimelineKind names a feed the client can display.
type TimelineKind string

const (
	TimelineHome      TimelineKind = "home"
	TimelineLocal     TimelineKind = "local"
	TimelinePublic    TimelineKind = "public"
	TimelineHashtag   TimelineKind = "hashtag"
	TimelineAccount   TimelineKind = "account"
	TimelineThread    TimelineKind = "thread"
	TimelineFollowers TimelineKind = "followers"
	TimelineFollowing TimelineKind = "following"
)

// TimelineRef identifies a concrete feed: its kind plus the hashtag, account
// or status it is scoped to.
type TimelineRef struct {
	Kind TimelineKind
	// Arg is the hashtag name, account id or root status id.
	Arg string
}

// Key returns a stable string usable as a cache key.
func (r TimelineRef) Key() string {
	if r.Arg == "" {
		return string(r.Kind)
	}
	return string(r.Kind) + ":" + r.Arg
}

// Streamable reports whether the instance pushes new statuses for r.
func (r TimelineRef) Streamable() bool {
	switch r.Kind {
	case TimelineHome, TimelineLocal, TimelinePublic, TimelineHashtag:
		return true
	default:
		return false
	}
}

// StreamName returns the streaming API stream name for r.
func (r TimelineRef) StreamName() string {
	switch r.Kind {
	case TimelineHome:
		return "user"
	case TimelineLocal:
		return "public:local"
	case TimelinePublic:
		return "public"
	case TimelineHashtag:
		return "hashtag"
	default:
		return ""
	}
}
