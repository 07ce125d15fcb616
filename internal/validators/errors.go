package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyStatus         = errors.New("status text or media is required")
	ErrStatusTooLong       = errors.New("status is too long")
	ErrInvalidVisibility   = errors.New("invalid visibility")
	ErrTooManyMedia        = errors.New("too many media attachments")
	ErrPollWithMedia       = errors.New("a status cannot have both a poll and media")
	ErrPollOptionsCount    = errors.New("poll needs between 2 and 4 options")
	ErrEmptyPollOption     = errors.New("poll option cannot be empty")
	ErrInvalidPollDuration = errors.New("invalid poll duration")
	ErrPollClosed          = errors.New("poll is closed")
	ErrNoChoices           = errors.New("at least one choice is required")
	ErrChoiceOutOfRange    = errors.New("poll choice out of range")
	ErrMultipleChoices     = errors.New("poll accepts a single choice")
	ErrDuplicateChoice     = errors.New("poll choice repeated")
)
