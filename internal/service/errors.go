package service

import "errors"

var (
	ErrUnsupportedTimeline = errors.New("unsupported timeline")
	ErrMissingTimelineArg  = errors.New("timeline argument is required")

	ErrNoMediaProvided     = errors.New("no media provided")
	ErrUploadFailed        = errors.New("media upload failed")
	ErrRelationshipMissing = errors.New("relationship not returned")
)
