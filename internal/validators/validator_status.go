package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/tootline/models"
)

const (
	FieldStatus     = "status"
	FieldVisibility = "visibility"
	FieldMedia      = "media"
	FieldPoll       = "poll"
	FieldChoices    = "choices"
)

const (
	MaxStatusChars = 500
	MaxMedia       = 4
	MinPollOptions = 2
	MaxPollOptions = 4
)

// Vote is a poll answer waiting to be submitted.
type Vote struct {
	Poll    models.Poll
	Choices []int
}

type StatusRequestValidator struct {
}

func NewStatusRequestValidator() Validator {
	return &StatusRequestValidator{}
}

func (v *StatusRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.StatusRequest:
		return v.validateStatusRequest(ctx, value, fields...)
	case *models.StatusRequest:
		return v.validateStatusRequest(ctx, *value, fields...)

	case Vote:
		return v.validateVote(ctx, value, fields...)
	case *Vote:
		return v.validateVote(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *StatusRequestValidator) validateStatusRequest(ctx context.Context, req models.StatusRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldStatus, FieldVisibility, FieldMedia, FieldPoll}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldStatus:
			err = validateStatusText(req)
		case FieldVisibility:
			if !req.Visibility.Valid() {
				err = fmt.Errorf("%w: %q", ErrInvalidVisibility, req.Visibility)
			}
		case FieldMedia:
			err = validateMedia(req)
		case FieldPoll:
			err = validatePoll(req)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// CountChars returns the length the instance charges for a status: the
// characters of the text plus the content warning.
func CountChars(req models.StatusRequest) int {
	return utf8.RuneCountInString(req.Status) + utf8.RuneCountInString(req.SpoilerText)
}

func validateStatusText(req models.StatusRequest) error {
	if strings.TrimSpace(req.Status) == "" && len(req.MediaIDs) == 0 {
		return ErrEmptyStatus
	}
	if n := CountChars(req); n > MaxStatusChars {
		return fmt.Errorf("%w: %d of %d characters", ErrStatusTooLong, n, MaxStatusChars)
	}
	return nil
}

func validateMedia(req models.StatusRequest) error {
	if len(req.MediaIDs) > MaxMedia {
		return fmt.Errorf("%w: %d, at most %d", ErrTooManyMedia, len(req.MediaIDs), MaxMedia)
	}
	if len(req.MediaIDs) > 0 && req.Poll != nil {
		return ErrPollWithMedia
	}
	return nil
}

func validatePoll(req models.StatusRequest) error {
	if req.Poll == nil {
		return nil
	}
	if len(req.MediaIDs) > 0 {
		return ErrPollWithMedia
	}

	poll := req.Poll
	if len(poll.Options) < MinPollOptions || len(poll.Options) > MaxPollOptions {
		return fmt.Errorf("%w: got %d", ErrPollOptionsCount, len(poll.Options))
	}
	for i, option := range poll.Options {
		if strings.TrimSpace(option) == "" {
			return fmt.Errorf("%w: option %d", ErrEmptyPollOption, i+1)
		}
	}

	expiresIn := time.Duration(poll.ExpiresIn) * time.Second
	if !slices.Contains(models.PollDurations, expiresIn) {
		return fmt.Errorf("%w: %s", ErrInvalidPollDuration, expiresIn)
	}

	return nil
}

func (v *StatusRequestValidator) validateVote(ctx context.Context, vote Vote, fields ...string) error {
	for _, field := range fields {
		if field != FieldChoices {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	if vote.Poll.Closed() {
		return ErrPollClosed
	}
	if len(vote.Choices) == 0 {
		return ErrNoChoices
	}
	if len(vote.Choices) > 1 && !vote.Poll.Multiple {
		return ErrMultipleChoices
	}

	seen := make(map[int]struct{}, len(vote.Choices))
	for _, choice := range vote.Choices {
		if choice < 0 || choice >= len(vote.Poll.Options) {
			return fmt.Errorf("%w: %d", ErrChoiceOutOfRange, choice)
		}
		if _, dup := seen[choice]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateChoice, choice)
		}
		seen[choice] = struct{}{}
	}

	return nil
}
