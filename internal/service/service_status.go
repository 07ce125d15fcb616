package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/tootline/internal/adapter"
	"github.com/MKhiriev/tootline/internal/logger"
	"github.com/MKhiriev/tootline/internal/utils"
	"github.com/MKhiriev/tootline/internal/validators"
	"github.com/MKhiriev/tootline/models"
)

type statusService struct {
	adapter   adapter.InstanceAdapter
	validator validators.Validator
	ids       IDGenerator
	logger    *logger.Logger
}

func NewStatusService(instance adapter.InstanceAdapter, validator validators.Validator, ids IDGenerator, log *logger.Logger) StatusService {
	if log == nil {
		log = logger.Nop()
	}
	return &statusService{
		adapter:   instance,
		validator: validator,
		ids:       ids,
		logger:    log.WithComponent("status"),
	}
}

type toggleFunc func(ctx context.Context, id string) (models.Status, error)

func (s *statusService) toggle(ctx context.Context, status models.Status, on bool, do, undo toggleFunc, action string) (models.Status, error) {
	target := status.Target()
	call := do
	if on {
		call = undo
	}

	updated, err := call(ctx, target.ID)
	if err != nil {
		return status, fmt.Errorf("%s %s: %w", action, target.ID, err)
	}
	return applyTarget(status, updated), nil
}

// applyTarget puts target back where it came from: inside the boost wrapper
// for boosts, in place of the status otherwise.
func applyTarget(status, target models.Status) models.Status {
	if status.Reblog == nil {
		return target
	}
	status.Reblog = &target
	return status
}

func (s *statusService) ToggleFavourite(ctx context.Context, status models.Status) (models.Status, error) {
	return s.toggle(ctx, status, status.Target().Favourited, s.adapter.Favourite, s.adapter.Unfavourite, "favourite")
}

func (s *statusService) ToggleBookmark(ctx context.Context, status models.Status) (models.Status, error) {
	return s.toggle(ctx, status, status.Target().Bookmarked, s.adapter.Bookmark, s.adapter.Unbookmark, "bookmark")
}

func (s *statusService) ToggleReblog(ctx context.Context, status models.Status) (models.Status, error) {
	// reblogging answers with the new boost wrapper
	reblog := func(ctx context.Context, id string) (models.Status, error) {
		resp, err := s.adapter.Reblog(ctx, id)
		if err != nil || resp.Reblog == nil {
			return resp, err
		}
		return *resp.Reblog, nil
	}
	return s.toggle(ctx, status, status.Target().Reblogged, reblog, s.adapter.Unreblog, "reblog")
}

func (s *statusService) Delete(ctx context.Context, id string) error {
	if err := s.adapter.DeleteStatus(ctx, id); err != nil {
		return fmt.Errorf("delete status %s: %w", id, err)
	}
	return nil
}

func (s *statusService) Refresh(ctx context.Context, id string) (models.Status, error) {
	status, err := s.adapter.GetStatus(ctx, id)
	if err != nil {
		return models.Status{}, fmt.Errorf("refresh status %s: %w", id, err)
	}
	return status, nil
}

func (s *statusService) Post(ctx context.Context, req models.StatusRequest) (models.Status, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Status{}, err
	}
	if len(req.MediaIDs) == 0 {
		req.Sensitive = false
	}

	key := s.ids.Generate()
	status, err := s.adapter.PostStatus(ctx, req, key)
	if err != nil {
		return models.Status{}, fmt.Errorf("post status: %w", err)
	}
	s.logger.Debug().Str("status_id", status.ID).Str("idempotency_key", key).Msg("status posted")
	return status, nil
}

func (s *statusService) ReplyDraft(status models.Status) models.StatusRequest {
	target := status.Target()
	return models.StatusRequest{
		Status:      "@" + target.Account.Acct + " ",
		InReplyToID: target.ID,
		Visibility:  models.VisibilityUnlisted,
		SpoilerText: target.SpoilerText,
	}
}

func (s *statusService) Reply(ctx context.Context, status models.Status, req models.StatusRequest) (models.Status, error) {
	req.InReplyToID = status.Target().ID
	if req.Visibility == "" {
		req.Visibility = models.VisibilityUnlisted
	}
	return s.Post(ctx, req)
}

func (s *statusService) EditDraft(status models.Status) models.StatusRequest {
	return models.StatusRequest{
		Status:      utils.HTMLToText(status.Content),
		SpoilerText: status.SpoilerText,
		Sensitive:   status.Sensitive,
		Visibility:  status.Visibility,
		Language:    status.Language,
		MediaIDs:    mediaIDs(status.MediaAttachments),
	}
}

func mediaIDs(attachments []models.MediaAttachment) []string {
	if len(attachments) == 0 {
		return nil
	}
	ids := make([]string, 0, len(attachments))
	for _, a := range attachments {
		ids = append(ids, a.ID)
	}
	return ids
}

func (s *statusService) Edit(ctx context.Context, id string, req models.StatusRequest) (models.Status, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Status{}, err
	}
	if len(req.MediaIDs) == 0 {
		req.Sensitive = false
	}

	status, err := s.adapter.EditStatus(ctx, id, req)
	if err != nil {
		return models.Status{}, fmt.Errorf("edit status %s: %w", id, err)
	}
	return status, nil
}

func (s *statusService) Vote(ctx context.Context, poll models.Poll, choices []int) (models.Poll, error) {
	if err := s.validator.Validate(ctx, validators.Vote{Poll: poll, Choices: choices}); err != nil {
		return poll, err
	}

	updated, err := s.adapter.VotePoll(ctx, poll.ID, choices)
	if err != nil {
		return poll, fmt.Errorf("vote in poll %s: %w", poll.ID, err)
	}
	return updated, nil
}
