// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/tootline/internal/config"
	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInstance is a chi router standing in for the instance REST API.
type fakeInstance struct {
	chi.Router
	srv *httptest.Server
}

func newFakeInstance(t *testing.T) *fakeInstance {
	t.Helper()
	f := &fakeInstance{Router: chi.NewRouter()}
	f.srv = httptest.NewServer(f)
	t.Cleanup(f.srv.Close)
	return f
}

func newTestAdapter(t *testing.T, serverURL string) *httpInstanceAdapter {
	t.Helper()
	a, err := NewHTTPInstanceAdapter(config.Instance{
		URL:            serverURL,
		AccessToken:    "secret-token",
		RequestTimeout: 5 * time.Second,
	}, "tootline/test", logger.Nop())
	require.NoError(t, err)

	h := a.(*httpInstanceAdapter)
	h.client.SetRetryCount(0)
	return h
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func statuses(ids ...string) []models.Status {
	out := make([]models.Status, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Status{ID: id, Content: "<p>" + id + "</p>"})
	}
	return out
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "mastodon.social", want: "https://mastodon.social"},
		{in: "  https://example.social/ ", want: "https://example.social"},
		{in: "http://127.0.0.1:3000", want: "http://127.0.0.1:3000"},
		{in: "", wantErr: true},
		{in: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPInstanceAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPInstanceAdapter(config.Instance{}, "", logger.Nop())
	assert.Error(t, err)
}

func TestToken_SetAndTrim(t *testing.T) {
	a := newTestAdapter(t, "https://example.social")
	assert.Equal(t, "secret-token", a.Token())
	a.SetToken("  other  ")
	assert.Equal(t, "other", a.Token())
}

// ── timelines ────────────────────────────────────────────────────────────────

func TestHomeTimeline_SendsPagingAndAuth(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/timelines/home", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "tootline/test", r.Header.Get("User-Agent"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		assert.Equal(t, "C", r.URL.Query().Get("max_id"))
		writeJSON(t, w, http.StatusOK, statuses("B", "A"))
	})

	a := newTestAdapter(t, f.srv.URL)
	got, err := a.HomeTimeline(context.Background(), models.PageParams{Limit: 3, MaxID: "C"})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].ID)
}

func TestHomeTimeline_FirstPageOmitsMaxID(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/timelines/home", func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.URL.Query()["max_id"]
		assert.False(t, ok)
		writeJSON(t, w, http.StatusOK, []models.Status{})
	})

	got, err := newTestAdapter(t, f.srv.URL).HomeTimeline(context.Background(), models.PageParams{Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalAndPublicTimeline(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/timelines/public", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("local") == "true" {
			writeJSON(t, w, http.StatusOK, statuses("local"))
			return
		}
		writeJSON(t, w, http.StatusOK, statuses("federated"))
	})
	a := newTestAdapter(t, f.srv.URL)

	local, err := a.LocalTimeline(context.Background(), models.PageParams{})
	require.NoError(t, err)
	assert.Equal(t, "local", local[0].ID)

	public, err := a.PublicTimeline(context.Background(), models.PageParams{})
	require.NoError(t, err)
	assert.Equal(t, "federated", public[0].ID)
}

func TestTagTimeline_EscapesTag(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/timelines/tag/{tag}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "golang", chi.URLParam(r, "tag"))
		writeJSON(t, w, http.StatusOK, statuses("T"))
	})

	got, err := newTestAdapter(t, f.srv.URL).TagTimeline(context.Background(), "golang", models.PageParams{Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, "T", got[0].ID)
}

func TestAccountStatuses(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/accounts/{id}/statuses", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "42", chi.URLParam(r, "id"))
		writeJSON(t, w, http.StatusOK, statuses("S"))
	})

	got, err := newTestAdapter(t, f.srv.URL).AccountStatuses(context.Background(), "42", models.PageParams{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestTimeline_DecodeError(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/timelines/home", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	_, err := newTestAdapter(t, f.srv.URL).HomeTimeline(context.Background(), models.PageParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

// ── statuses ─────────────────────────────────────────────────────────────────

func TestStatusContext(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/statuses/{id}/context", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.Context{
			Ancestors:   statuses("P"),
			Descendants: statuses("R1", "R2"),
		})
	})

	got, err := newTestAdapter(t, f.srv.URL).StatusContext(context.Background(), "S")
	require.NoError(t, err)
	assert.Len(t, got.Ancestors, 1)
	assert.Len(t, got.Descendants, 2)
}

func TestGetStatus_NotFound(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/statuses/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "Record not found"})
	})

	_, err := newTestAdapter(t, f.srv.URL).GetStatus(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "Record not found")
}

func TestPostStatus_SendsIdempotencyKey(t *testing.T) {
	f := newFakeInstance(t)
	f.Post("/api/v1/statuses", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))

		var req models.StatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello", req.Status)
		assert.Equal(t, models.VisibilityUnlisted, req.Visibility)
		assert.Equal(t, "P", req.InReplyToID)

		writeJSON(t, w, http.StatusOK, models.Status{ID: "new", Content: "<p>hello</p>"})
	})

	got, err := newTestAdapter(t, f.srv.URL).PostStatus(context.Background(), models.StatusRequest{
		Status:      "hello",
		Visibility:  models.VisibilityUnlisted,
		InReplyToID: "P",
	}, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "new", got.ID)
}

func TestPostStatus_Unprocessable(t *testing.T) {
	f := newFakeInstance(t)
	f.Post("/api/v1/statuses", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Idempotency-Key"))
		writeJSON(t, w, http.StatusUnprocessableEntity, map[string]string{"error": "Validation failed: Text can't be blank"})
	})

	_, err := newTestAdapter(t, f.srv.URL).PostStatus(context.Background(), models.StatusRequest{}, "")
	assert.ErrorIs(t, err, ErrUnprocessable)
}

func TestEditStatus(t *testing.T) {
	f := newFakeInstance(t)
	f.Put("/api/v1/statuses/{id}", func(w http.ResponseWriter, r *http.Request) {
		var req models.StatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeJSON(t, w, http.StatusOK, models.Status{ID: chi.URLParam(r, "id"), Content: req.Status})
	})

	got, err := newTestAdapter(t, f.srv.URL).EditStatus(context.Background(), "S", models.StatusRequest{Status: "fixed"})
	require.NoError(t, err)
	assert.Equal(t, "S", got.ID)
	assert.Equal(t, "fixed", got.Content)
}

func TestDeleteStatus(t *testing.T) {
	f := newFakeInstance(t)
	deleted := ""
	f.Delete("/api/v1/statuses/{id}", func(w http.ResponseWriter, r *http.Request) {
		deleted = chi.URLParam(r, "id")
		writeJSON(t, w, http.StatusOK, models.Status{ID: deleted})
	})

	require.NoError(t, newTestAdapter(t, f.srv.URL).DeleteStatus(context.Background(), "S"))
	assert.Equal(t, "S", deleted)
}

func TestStatusActions(t *testing.T) {
	f := newFakeInstance(t)
	f.Post("/api/v1/statuses/{id}/{action}", func(w http.ResponseWriter, r *http.Request) {
		action := chi.URLParam(r, "action")
		writeJSON(t, w, http.StatusOK, models.Status{
			ID:         chi.URLParam(r, "id"),
			Favourited: action == "favourite",
			Reblogged:  action == "reblog",
			Bookmarked: action == "bookmark",
		})
	})
	a := newTestAdapter(t, f.srv.URL)
	ctx := context.Background()

	s, err := a.Favourite(ctx, "S")
	require.NoError(t, err)
	assert.True(t, s.Favourited)
	s, err = a.Unfavourite(ctx, "S")
	require.NoError(t, err)
	assert.False(t, s.Favourited)

	s, err = a.Reblog(ctx, "S")
	require.NoError(t, err)
	assert.True(t, s.Reblogged)
	s, err = a.Unreblog(ctx, "S")
	require.NoError(t, err)
	assert.False(t, s.Reblogged)

	s, err = a.Bookmark(ctx, "S")
	require.NoError(t, err)
	assert.True(t, s.Bookmarked)
	s, err = a.Unbookmark(ctx, "S")
	require.NoError(t, err)
	assert.False(t, s.Bookmarked)
}

func TestVotePoll(t *testing.T) {
	f := newFakeInstance(t)
	f.Post("/api/v1/polls/{id}/votes", func(w http.ResponseWriter, r *http.Request) {
		var req models.VoteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []int{0, 2}, req.Choices)
		writeJSON(t, w, http.StatusOK, models.Poll{ID: chi.URLParam(r, "id"), Voted: true, OwnVotes: req.Choices})
	})

	got, err := newTestAdapter(t, f.srv.URL).VotePoll(context.Background(), "P1", []int{0, 2})
	require.NoError(t, err)
	assert.True(t, got.Voted)
	assert.Equal(t, "P1", got.ID)
}

func TestUploadMedia_Multipart(t *testing.T) {
	f := newFakeInstance(t)
	f.Post("/api/v2/media", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "a cat", r.FormValue("description"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "cat.png", header.Filename)
		assert.Equal(t, "PNGDATA", string(body))

		writeJSON(t, w, http.StatusOK, models.MediaAttachment{ID: "M1", Type: models.MediaImage, Description: "a cat"})
	})

	got, err := newTestAdapter(t, f.srv.URL).UploadMedia(context.Background(), "cat.png", strings.NewReader("PNGDATA"), "a cat")
	require.NoError(t, err)
	assert.Equal(t, "M1", got.ID)
	assert.Equal(t, models.MediaImage, got.Type)
}

// ── accounts ─────────────────────────────────────────────────────────────────

func TestVerifyCredentials_Unauthorized(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/accounts/verify_credentials", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"error": "The access token is invalid"})
	})

	_, err := newTestAdapter(t, f.srv.URL).VerifyCredentials(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLookupAccount(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/accounts/lookup", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "alice@example.social", r.URL.Query().Get("acct"))
		writeJSON(t, w, http.StatusOK, models.Account{ID: "1", Acct: "alice@example.social"})
	})

	got, err := newTestAdapter(t, f.srv.URL).LookupAccount(context.Background(), "alice@example.social")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
}

func TestRelationships(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/accounts/relationships", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"1", "2"}, r.URL.Query()["id[]"])
		writeJSON(t, w, http.StatusOK, []models.Relationship{{ID: "1", Following: true}, {ID: "2"}})
	})
	a := newTestAdapter(t, f.srv.URL)

	got, err := a.Relationships(context.Background(), []string{"1", "2"})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.True(t, got[0].Following)

	none, err := a.Relationships(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestFollowUnfollow(t *testing.T) {
	f := newFakeInstance(t)
	f.Post("/api/v1/accounts/{id}/follow", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.Relationship{ID: chi.URLParam(r, "id"), Following: true})
	})
	f.Post("/api/v1/accounts/{id}/unfollow", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.Relationship{ID: chi.URLParam(r, "id")})
	})
	a := newTestAdapter(t, f.srv.URL)

	rel, err := a.Follow(context.Background(), "7")
	require.NoError(t, err)
	assert.True(t, rel.Following)

	rel, err = a.Unfollow(context.Background(), "7")
	require.NoError(t, err)
	assert.False(t, rel.Following)
}

func TestFollowersAndFollowing(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/accounts/{id}/followers", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "40", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, []models.Account{{ID: "f1"}})
	})
	f.Get("/api/v1/accounts/{id}/following", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "f9", r.URL.Query().Get("max_id"))
		writeJSON(t, w, http.StatusOK, []models.Account{{ID: "g1"}, {ID: "g2"}})
	})
	a := newTestAdapter(t, f.srv.URL)

	followers, err := a.Followers(context.Background(), "1", models.PageParams{Limit: 40})
	require.NoError(t, err)
	assert.Len(t, followers, 1)

	following, err := a.Following(context.Background(), "1", models.PageParams{MaxID: "f9"})
	require.NoError(t, err)
	assert.Len(t, following, 2)
}

func TestSearch(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v2/search", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "go", q.Get("q"))
		assert.Equal(t, "hashtags", q.Get("type"))
		assert.Equal(t, "5", q.Get("limit"))
		writeJSON(t, w, http.StatusOK, models.SearchResults{Hashtags: []models.Tag{{Name: "golang"}}})
	})

	got, err := newTestAdapter(t, f.srv.URL).Search(context.Background(), "go", "hashtags", 5)
	require.NoError(t, err)
	require.Len(t, got.Hashtags, 1)
	assert.Equal(t, "golang", got.Hashtags[0].Name)
}

func TestCustomEmojis(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/custom_emojis", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Emoji{{Shortcode: "blobcat"}})
	})

	got, err := newTestAdapter(t, f.srv.URL).CustomEmojis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "blobcat", got[0].Shortcode)
}

// ── error mapping ────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusUnprocessableEntity, want: ErrUnprocessable},
		{status: http.StatusTooManyRequests, want: ErrRateLimited},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			f := newFakeInstance(t)
			f.Get("/api/v1/statuses/{id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("plain failure"))
			})

			_, err := newTestAdapter(t, f.srv.URL).GetStatus(context.Background(), "S")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "plain failure")
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/statuses/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	_, err := newTestAdapter(t, f.srv.URL).GetStatus(context.Background(), "S")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestRequest_ContextCanceled(t *testing.T) {
	f := newFakeInstance(t)
	f.Get("/api/v1/timelines/home", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, []models.Status{})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, f.srv.URL).HomeTimeline(ctx, models.PageParams{})
	assert.ErrorIs(t, err, context.Canceled)
}
