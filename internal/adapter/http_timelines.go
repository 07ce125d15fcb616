package adapter

import (
	"context"
	"net/http"
	"net/url"

	"github.com/MKhiriev/tootline/models"
)

func (h *httpInstanceAdapter) timeline(ctx context.Context, path string, q url.Values) ([]models.Status, error) {
	var statuses []models.Status
	req := h.authedRequest(ctx).SetQueryParamsFromValues(q)
	if err := h.execute(req, http.MethodGet, path, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// HomeTimeline implements [InstanceAdapter]. GET /api/v1/timelines/home.
func (h *httpInstanceAdapter) HomeTimeline(ctx context.Context, page models.PageParams) ([]models.Status, error) {
	return h.timeline(ctx, "/api/v1/timelines/home", pageQuery(page.Limit, page.MaxID))
}

// LocalTimeline implements [InstanceAdapter]. GET /api/v1/timelines/public?local=true.
func (h *httpInstanceAdapter) LocalTimeline(ctx context.Context, page models.PageParams) ([]models.Status, error) {
	q := pageQuery(page.Limit, page.MaxID)
	q.Set("local", "true")
	return h.timeline(ctx, "/api/v1/timelines/public", q)
}

// PublicTimeline implements [InstanceAdapter]. GET /api/v1/timelines/public.
func (h *httpInstanceAdapter) PublicTimeline(ctx context.Context, page models.PageParams) ([]models.Status, error) {
	return h.timeline(ctx, "/api/v1/timelines/public", pageQuery(page.Limit, page.MaxID))
}

// TagTimeline implements [InstanceAdapter]. GET /api/v1/timelines/tag/:tag.
func (h *httpInstanceAdapter) TagTimeline(ctx context.Context, tag string, page models.PageParams) ([]models.Status, error) {
	return h.timeline(ctx, "/api/v1/timelines/tag/"+url.PathEscape(tag), pageQuery(page.Limit, page.MaxID))
}

// AccountStatuses implements [InstanceAdapter]. GET /api/v1/accounts/:id/statuses.
func (h *httpInstanceAdapter) AccountStatuses(ctx context.Context, accountID string, page models.PageParams) ([]models.Status, error) {
	return h.timeline(ctx, "/api/v1/accounts/"+url.PathEscape(accountID)+"/statuses", pageQuery(page.Limit, page.MaxID))
}
