package service

import (
	"context"
	"time"

	"github.com/MKhiriev/tootline/internal/stream"
	"github.com/MKhiriev/tootline/internal/timeline"
	"github.com/MKhiriev/tootline/models"
)

// TimelineService builds lists for every kind of timeline the client shows.
type TimelineService interface {
	// PageSize is the number of items requested per page.
	PageSize() int

	// StatusFetcher returns the page fetcher of a status timeline.
	// Thread fetchers return the descendants of ref.Arg on the first page and
	// an empty page afterwards.
	StatusFetcher(ref models.TimelineRef) (timeline.FetchFunc[models.Status], error)

	// AccountFetcher returns the page fetcher of a followers or following list.
	AccountFetcher(ref models.TimelineRef) (timeline.FetchFunc[models.Account], error)

	// OpenFeed builds a feed for ref, seeded from the stored snapshot and, for
	// streamable timelines, attached to a live channel. The feed is idle until
	// Start is called.
	OpenFeed(ctx context.Context, ref models.TimelineRef, onChange func(timeline.Snapshot[models.Status])) (*Feed, error)

	// OpenAccountList builds an unstarted list of followers or following.
	OpenAccountList(ref models.TimelineRef, onChange func(timeline.Snapshot[models.Account])) (*timeline.List[models.Account], error)
}

// StatusService performs actions on single statuses.
type StatusService interface {
	// ToggleFavourite, ToggleReblog and ToggleBookmark act on the status
	// target (the boosted status for boosts) and pick the verb from the
	// current flag. The returned status has the same shape as s.
	ToggleFavourite(ctx context.Context, s models.Status) (models.Status, error)
	ToggleReblog(ctx context.Context, s models.Status) (models.Status, error)
	ToggleBookmark(ctx context.Context, s models.Status) (models.Status, error)

	Delete(ctx context.Context, id string) error

	// Refresh reloads a status from the instance.
	Refresh(ctx context.Context, id string) (models.Status, error)

	// Post validates and publishes a new status under a fresh idempotency key.
	Post(ctx context.Context, req models.StatusRequest) (models.Status, error)

	// ReplyDraft prefills a reply to the target of s.
	ReplyDraft(s models.Status) models.StatusRequest
	// Reply publishes req as a reply to the target of s.
	Reply(ctx context.Context, s models.Status, req models.StatusRequest) (models.Status, error)

	// EditDraft prefills an edit of s with its plain text.
	EditDraft(s models.Status) models.StatusRequest
	Edit(ctx context.Context, id string, req models.StatusRequest) (models.Status, error)

	// Vote validates choices against poll and submits them.
	Vote(ctx context.Context, poll models.Poll, choices []int) (models.Poll, error)
}

// MediaService uploads attachments for the composer.
type MediaService interface {
	// Upload sends every file concurrently and returns the attachments in
	// input order. It fails if any upload fails.
	Upload(ctx context.Context, files ...models.MediaUpload) ([]models.MediaAttachment, error)
}

// SuggestionService completes the word being typed in the composer.
type SuggestionService interface {
	// Suggest returns up to MaxSuggestions completions for token, whose first
	// rune selects the provider. Unknown triggers and empty queries yield no
	// suggestions.
	Suggest(ctx context.Context, token string) ([]string, error)
	// Triggers lists the registered trigger runes.
	Triggers() []rune
}

// AccountService looks up accounts and manages follows.
type AccountService interface {
	Me(ctx context.Context) (models.Account, error)
	Lookup(ctx context.Context, acct string) (models.Account, error)
	Relationship(ctx context.Context, id string) (models.Relationship, error)
	// ToggleFollow follows or unfollows id depending on the current
	// relationship and returns the new one.
	ToggleFollow(ctx context.Context, id string) (models.Relationship, error)
}

// SnapshotJob persists the head of tracked feeds on an interval.
type SnapshotJob interface {
	Track(key string, src ItemsSource)
	Untrack(key string)
	// SaveAll stores the head of every tracked feed once.
	SaveAll(ctx context.Context) error
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// ItemsSource is the part of a feed the snapshot job reads.
type ItemsSource interface {
	Items() []models.Status
}

// LiveChannel is a per-timeline streaming connection.
type LiveChannel interface {
	stream.Subscriber
	Start(ctx context.Context) error
	Close()
}

// LiveChannelFactory opens the live channel of a streamable timeline.
type LiveChannelFactory func(ref models.TimelineRef) (LiveChannel, error)

// IDGenerator produces idempotency keys.
type IDGenerator interface {
	Generate() string
}
