// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to talk to a Mastodon
// compatible instance.
//
// The primary abstraction is [InstanceAdapter], which decouples the service
// layer from the REST API. The package ships a resty based implementation
// ([NewHTTPInstanceAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/tootline/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/instance_adapter_mock.go -package=mock

// InstanceAdapter defines communication with the instance REST API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
//
// Timeline methods return statuses newest first. PageParams.MaxID selects
// statuses strictly older than the given id.
type InstanceAdapter interface {
	// SetToken stores the bearer token attached to every request.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	HomeTimeline(ctx context.Context, page models.PageParams) ([]models.Status, error)
	LocalTimeline(ctx context.Context, page models.PageParams) ([]models.Status, error)
	PublicTimeline(ctx context.Context, page models.PageParams) ([]models.Status, error)
	TagTimeline(ctx context.Context, tag string, page models.PageParams) ([]models.Status, error)
	AccountStatuses(ctx context.Context, accountID string, page models.PageParams) ([]models.Status, error)

	// StatusContext returns the ancestors and descendants of a status.
	StatusContext(ctx context.Context, id string) (models.Context, error)
	GetStatus(ctx context.Context, id string) (models.Status, error)

	// PostStatus publishes a status. A non-empty idempotencyKey makes retries
	// of the same request create a single status.
	PostStatus(ctx context.Context, req models.StatusRequest, idempotencyKey string) (models.Status, error)
	EditStatus(ctx context.Context, id string, req models.StatusRequest) (models.Status, error)
	DeleteStatus(ctx context.Context, id string) error

	// Toggles return the updated status as seen by the instance.
	Favourite(ctx context.Context, id string) (models.Status, error)
	Unfavourite(ctx context.Context, id string) (models.Status, error)
	Reblog(ctx context.Context, id string) (models.Status, error)
	Unreblog(ctx context.Context, id string) (models.Status, error)
	Bookmark(ctx context.Context, id string) (models.Status, error)
	Unbookmark(ctx context.Context, id string) (models.Status, error)

	VotePoll(ctx context.Context, pollID string, choices []int) (models.Poll, error)

	VerifyCredentials(ctx context.Context) (models.Account, error)
	LookupAccount(ctx context.Context, acct string) (models.Account, error)
	Relationships(ctx context.Context, ids []string) ([]models.Relationship, error)
	Follow(ctx context.Context, id string) (models.Relationship, error)
	Unfollow(ctx context.Context, id string) (models.Relationship, error)
	Followers(ctx context.Context, id string, page models.PageParams) ([]models.Account, error)
	Following(ctx context.Context, id string, page models.PageParams) ([]models.Account, error)

	// Search queries accounts, statuses or hashtags. An empty kind searches
	// all three.
	Search(ctx context.Context, query, kind string, limit int) (models.SearchResults, error)
	CustomEmojis(ctx context.Context) ([]models.Emoji, error)

	// UploadMedia uploads a file and returns the attachment to reference in
	// StatusRequest.MediaIDs.
	UploadMedia(ctx context.Context, fileName string, r io.Reader, description string) (models.MediaAttachment, error)
}
