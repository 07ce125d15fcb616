package adapter

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/tootline/models"
)

func accountPath(id string) string {
	return "/api/v1/accounts/" + url.PathEscape(id)
}

// VerifyCredentials implements [InstanceAdapter]. GET /api/v1/accounts/verify_credentials.
func (h *httpInstanceAdapter) VerifyCredentials(ctx context.Context) (models.Account, error) {
	var account models.Account
	err := h.execute(h.authedRequest(ctx), http.MethodGet, "/api/v1/accounts/verify_credentials", &account)
	return account, err
}

// LookupAccount implements [InstanceAdapter]. GET /api/v1/accounts/lookup?acct=.
func (h *httpInstanceAdapter) LookupAccount(ctx context.Context, acct string) (models.Account, error) {
	var account models.Account
	req := h.authedRequest(ctx).SetQueryParam("acct", acct)
	err := h.execute(req, http.MethodGet, "/api/v1/accounts/lookup", &account)
	return account, err
}

// Relationships implements [InstanceAdapter]. GET /api/v1/accounts/relationships?id[]=.
func (h *httpInstanceAdapter) Relationships(ctx context.Context, ids []string) ([]models.Relationship, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rels []models.Relationship
	req := h.authedRequest(ctx).SetQueryParamsFromValues(url.Values{"id[]": ids})
	if err := h.execute(req, http.MethodGet, "/api/v1/accounts/relationships", &rels); err != nil {
		return nil, err
	}
	return rels, nil
}

func (h *httpInstanceAdapter) Follow(ctx context.Context, id string) (models.Relationship, error) {
	var rel models.Relationship
	err := h.execute(h.authedRequest(ctx), http.MethodPost, accountPath(id)+"/follow", &rel)
	return rel, err
}

func (h *httpInstanceAdapter) Unfollow(ctx context.Context, id string) (models.Relationship, error) {
	var rel models.Relationship
	err := h.execute(h.authedRequest(ctx), http.MethodPost, accountPath(id)+"/unfollow", &rel)
	return rel, err
}

func (h *httpInstanceAdapter) accountList(ctx context.Context, path string, page models.PageParams) ([]models.Account, error) {
	var accounts []models.Account
	req := h.authedRequest(ctx).SetQueryParamsFromValues(pageQuery(page.Limit, page.MaxID))
	if err := h.execute(req, http.MethodGet, path, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Followers implements [InstanceAdapter]. GET /api/v1/accounts/:id/followers.
func (h *httpInstanceAdapter) Followers(ctx context.Context, id string, page models.PageParams) ([]models.Account, error) {
	return h.accountList(ctx, accountPath(id)+"/followers", page)
}

// Following implements [InstanceAdapter]. GET /api/v1/accounts/:id/following.
func (h *httpInstanceAdapter) Following(ctx context.Context, id string, page models.PageParams) ([]models.Account, error) {
	return h.accountList(ctx, accountPath(id)+"/following", page)
}

// Search implements [InstanceAdapter]. GET /api/v2/search.
func (h *httpInstanceAdapter) Search(ctx context.Context, query, kind string, limit int) (models.SearchResults, error) {
	q := url.Values{"q": {query}}
	if kind != "" {
		q.Set("type", kind)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var results models.SearchResults
	err := h.execute(h.authedRequest(ctx).SetQueryParamsFromValues(q), http.MethodGet, "/api/v2/search", &results)
	return results, err
}

// CustomEmojis implements [InstanceAdapter]. GET /api/v1/custom_emojis.
func (h *httpInstanceAdapter) CustomEmojis(ctx context.Context) ([]models.Emoji, error) {
	var emojis []models.Emoji
	if err := h.execute(h.authedRequest(ctx), http.MethodGet, "/api/v1/custom_emojis", &emojis); err != nil {
		return nil, err
	}
	return emojis, nil
}
