// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/tootline/internal/adapter"
	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/internal/store"
	"github.com/MKhiriev/tootline/internal/stream"
	"github.com/MKhiriev/tootline/internal/timeline"
	"github.com/MKhiriev/tootline/models"
)

type timelineService struct {
	adapter   adapter.InstanceAdapter
	snapshots store.SnapshotRepository
	live      LiveChannelFactory
	tracker   SnapshotJob
	pageSize  int
	logger    *logger.Logger
}

// NewTimelineService builds a TimelineService. snapshots, live and tracker
// are optional.
func NewTimelineService(
	instance adapter.InstanceAdapter,
	snapshots store.SnapshotRepository,
	live LiveChannelFactory,
	tracker SnapshotJob,
	pageSize int,
	log *logger.Logger,
) TimelineService {
	if pageSize <= 0 {
		pageSize = timeline.DefaultPageSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &timelineService{
		adapter:   instance,
		snapshots: snapshots,
		live:      live,
		tracker:   tracker,
		pageSize:  pageSize,
		logger:    log.WithComponent("timeline"),
	}
}

func (t *timelineService) PageSize() int {
	return t.pageSize
}

func (t *timelineService) page(cursor string) models.PageParams {
	return models.PageParams{Limit: t.pageSize, MaxID: cursor}
}

func (t *timelineService) StatusFetcher(ref models.TimelineRef) (timeline.FetchFunc[models.Status], error) {
	switch ref.Kind {
	case models.TimelineHome:
		return func(ctx context.Context, cursor string) ([]models.Status, error) {
			return t.adapter.HomeTimeline(ctx, t.page(cursor))
		}, nil
	case models.TimelineLocal:
		return func(ctx context.Context, cursor string) ([]models.Status, error) {
			return t.adapter.LocalTimeline(ctx, t.page(cursor))
		}, nil
	case models.TimelinePublic:
		return func(ctx context.Context, cursor string) ([]models.Status, error) {
			return t.adapter.PublicTimeline(ctx, t.page(cursor))
		}, nil
	}

	if ref.Arg == "" {
		if !isStatusKind(ref.Kind) {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedTimeline, ref.Kind)
		}
		return nil, fmt.Errorf("%w: %s", ErrMissingTimelineArg, ref.Kind)
	}

	switch ref.Kind {
	case models.TimelineHashtag:
		return func(ctx context.Context, cursor string) ([]models.Status, error) {
			return t.adapter.TagTimeline(ctx, ref.Arg, t.page(cursor))
		}, nil
	case models.TimelineAccount:
		return func(ctx context.Context, cursor string) ([]models.Status, error) {
			return t.adapter.AccountStatuses(ctx, ref.Arg, t.page(cursor))
		}, nil
	case models.TimelineThread:
		return func(ctx context.Context, cursor string) ([]models.Status, error) {
			if cursor != "" {
				return nil, nil
			}
			thread, err := t.adapter.StatusContext(ctx, ref.Arg)
			if err != nil {
				return nil, err
			}
			return thread.Descendants, nil
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTimeline, ref.Kind)
	}
}

func isStatusKind(kind models.TimelineKind) bool {
	switch kind {
	case models.TimelineHashtag, models.TimelineAccount, models.TimelineThread:
		return true
	default:
		return false
	}
}

func (t *timelineService) AccountFetcher(ref models.TimelineRef) (timeline.FetchFunc[models.Account], error) {
	var list func(ctx context.Context, id string, page models.PageParams) ([]models.Account, error)
	switch ref.Kind {
	case models.TimelineFollowers:
		list = t.adapter.Followers
	case models.TimelineFollowing:
		list = t.adapter.Following
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedTimeline, ref.Kind)
	}
	if ref.Arg == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingTimelineArg, ref.Kind)
	}

	return func(ctx context.Context, cursor string) ([]models.Account, error) {
		return list(ctx, ref.Arg, t.page(cursor))
	}, nil
}

func (t *timelineService) OpenFeed(ctx context.Context, ref models.TimelineRef, onChange func(timeline.Snapshot[models.Status])) (*Feed, error) {
	fetch, err := t.StatusFetcher(ref)
	if err != nil {
		return nil, err
	}
	log := t.logger.With().Str("timeline", ref.Key()).Logger()
	feedLog := &logger.Logger{Logger: log}

	var channel LiveChannel
	if ref.Streamable() && t.live != nil {
		channel, err = t.live(ref)
		if err != nil {
			feedLog.Warn().Err(err).Msg("live channel unavailable, feed will only refresh on demand")
			channel = nil
		}
	}

	opts := timeline.Options[models.Status]{
		Fetch:    fetch,
		GetID:    models.StatusID,
		PageSize: t.pageSize,
		Logger:   feedLog,
		OnChange: onChange,
	}
	if channel != nil {
		opts.Live = stream.NewStatusSource(channel, models.EventUpdate, feedLog)
	}

	list, err := timeline.New(opts)
	if err != nil {
		if channel != nil {
			channel.Close()
		}
		return nil, err
	}

	feed := &Feed{List: list, ref: ref, channel: channel}
	if channel != nil {
		feed.offs = append(feed.offs,
			stream.NewDeleteSource(channel).Subscribe(func(id string) { list.Remove(id) }),
			stream.NewStatusSource(channel, models.EventStatusUpdate, feedLog).Subscribe(feed.applyEdit),
		)
	}

	if ref.Kind != models.TimelineThread {
		t.seed(ctx, feed, feedLog)
		if t.tracker != nil {
			t.tracker.Track(ref.Key(), feed)
			feed.untrack = func() { t.tracker.Untrack(ref.Key()) }
		}
	}

	return feed, nil
}

// applyEdit replaces the edited status wherever the feed shows it, directly
// or inside a boost.
func (f *Feed) applyEdit(s models.Status) {
	f.Update(s.ID, s)
	for _, item := range f.Items() {
		if item.Reblog == nil || item.Reblog.ID != s.ID {
			continue
		}
		edited := s
		item.Reblog = &edited
		f.Update(item.ID, item)
	}
}

func (t *timelineService) seed(ctx context.Context, feed *Feed, log *logger.Logger) {
	if t.snapshots == nil {
		return
	}
	cached, err := t.snapshots.LoadSnapshot(ctx, feed.ref.Key())
	if err != nil {
		log.Warn().Err(err).Msg("cannot load timeline snapshot")
		return
	}
	if n := feed.Seed(cached); n > 0 {
		log.Debug().Int("items", n).Msg("feed seeded from snapshot")
	}
}

func (t *timelineService) OpenAccountList(ref models.TimelineRef, onChange func(timeline.Snapshot[models.Account])) (*timeline.List[models.Account], error) {
	fetch, err := t.AccountFetcher(ref)
	if err != nil {
		return nil, err
	}
	return timeline.New(timeline.Options[models.Account]{
		Fetch:    fetch,
		GetID:    models.AccountID,
		PageSize: t.pageSize,
		Logger:   t.logger,
		OnChange: onChange,
	})
}

// Feed is a status list bound to one timeline and its live channel.
type Feed struct {
	*timeline.List[models.Status]

	ref     models.TimelineRef
	channel LiveChannel
	offs    []func()
	untrack func()

	closeOnce sync.Once
}

func (f *Feed) Ref() models.TimelineRef {
	return f.ref
}

// Live reports whether the feed is attached to a live channel.
func (f *Feed) Live() bool {
	return f.channel != nil
}

// Start connects the live channel, if any, and loads the first page.
func (f *Feed) Start(ctx context.Context) error {
	if f.channel != nil {
		if err := f.channel.Start(ctx); err != nil {
			return fmt.Errorf("start live channel: %w", err)
		}
	}
	return f.List.Start(ctx)
}

// Close detaches the feed from the live channel, closes the channel and
// stops tracking the feed for snapshots.
func (f *Feed) Close() {
	f.closeOnce.Do(func() {
		f.List.Close()
		for _, off := range f.offs {
			off()
		}
		if f.channel != nil {
			f.channel.Close()
		}
		if f.untrack != nil {
			f.untrack()
		}
	})
}
