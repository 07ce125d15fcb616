package adapter

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/MKhiriev/tootline/models"
)

func statusPath(id string) string {
	return "/api/v1/statuses/" + url.PathEscape(id)
}

// StatusContext implements [InstanceAdapter]. GET /api/v1/statuses/:id/context.
func (h *httpInstanceAdapter) StatusContext(ctx context.Context, id string) (models.Context, error) {
	var thread models.Context
	err := h.execute(h.authedRequest(ctx), http.MethodGet, statusPath(id)+"/context", &thread)
	return thread, err
}

// GetStatus implements [InstanceAdapter]. GET /api/v1/statuses/:id.
func (h *httpInstanceAdapter) GetStatus(ctx context.Context, id string) (models.Status, error) {
	var status models.Status
	err := h.execute(h.authedRequest(ctx), http.MethodGet, statusPath(id), &status)
	return status, err
}

// PostStatus implements [InstanceAdapter]. POST /api/v1/statuses with an
// Idempotency-Key header when idempotencyKey is set.
func (h *httpInstanceAdapter) PostStatus(ctx context.Context, sr models.StatusRequest, idempotencyKey string) (models.Status, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sr)
	if idempotencyKey != "" {
		req.SetHeader("Idempotency-Key", idempotencyKey)
	}

	var status models.Status
	err := h.execute(req, http.MethodPost, "/api/v1/statuses", &status)
	return status, err
}

// EditStatus implements [InstanceAdapter]. PUT /api/v1/statuses/:id.
func (h *httpInstanceAdapter) EditStatus(ctx context.Context, id string, sr models.StatusRequest) (models.Status, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(sr)

	var status models.Status
	err := h.execute(req, http.MethodPut, statusPath(id), &status)
	return status, err
}

// DeleteStatus implements [InstanceAdapter]. DELETE /api/v1/statuses/:id.
func (h *httpInstanceAdapter) DeleteStatus(ctx context.Context, id string) error {
	return h.execute(h.authedRequest(ctx), http.MethodDelete, statusPath(id), nil)
}

func (h *httpInstanceAdapter) statusAction(ctx context.Context, id, action string) (models.Status, error) {
	var status models.Status
	err := h.execute(h.authedRequest(ctx), http.MethodPost, statusPath(id)+"/"+action, &status)
	return status, err
}

func (h *httpInstanceAdapter) Favourite(ctx context.Context, id string) (models.Status, error) {
	return h.statusAction(ctx, id, "favourite")
}

func (h *httpInstanceAdapter) Unfavourite(ctx context.Context, id string) (models.Status, error) {
	return h.statusAction(ctx, id, "unfavourite")
}

// Reblog returns the wrapper status the instance creates for the boost.
func (h *httpInstanceAdapter) Reblog(ctx context.Context, id string) (models.Status, error) {
	return h.statusAction(ctx, id, "reblog")
}

func (h *httpInstanceAdapter) Unreblog(ctx context.Context, id string) (models.Status, error) {
	return h.statusAction(ctx, id, "unreblog")
}

func (h *httpInstanceAdapter) Bookmark(ctx context.Context, id string) (models.Status, error) {
	return h.statusAction(ctx, id, "bookmark")
}

func (h *httpInstanceAdapter) Unbookmark(ctx context.Context, id string) (models.Status, error) {
	return h.statusAction(ctx, id, "unbookmark")
}

// VotePoll implements [InstanceAdapter]. POST /api/v1/polls/:id/votes.
func (h *httpInstanceAdapter) VotePoll(ctx context.Context, pollID string, choices []int) (models.Poll, error) {
	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.VoteRequest{Choices: choices})

	var poll models.Poll
	err := h.execute(req, http.MethodPost, "/api/v1/polls/"+url.PathEscape(pollID)+"/votes", &poll)
	return poll, err
}

// UploadMedia implements [InstanceAdapter]. POST /api/v2/media as multipart
// form data.
func (h *httpInstanceAdapter) UploadMedia(ctx context.Context, fileName string, r io.Reader, description string) (models.MediaAttachment, error) {
	req := h.authedRequest(ctx).SetFileReader("file", fileName, r)
	if description != "" {
		req.SetFormData(map[string]string{"description": description})
	}

	var media models.MediaAttachment
	err := h.execute(req, http.MethodPost, "/api/v2/media", &media)
	return media, err
}
