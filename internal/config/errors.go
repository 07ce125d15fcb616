package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidInstanceConfigs indicates a missing or malformed instance URL
	// or a non-positive request timeout.
	ErrInvalidInstanceConfigs = errors.New("invalid instance configuration")
	// ErrInvalidTimelineConfigs indicates a page size outside 1..MaxPageSize,
	// a negative lookahead or an unknown startup timeline.
	ErrInvalidTimelineConfigs = errors.New("invalid timeline configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a zero snapshot interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
