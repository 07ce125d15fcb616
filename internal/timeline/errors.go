package timeline

import "errors"

var (
	// ErrFetchFailed wraps every error returned by the fetch function.
	ErrFetchFailed = errors.New("timeline: fetch failed")
	// ErrClosed is returned by Refresh and LoadMore after Close.
	ErrClosed = errors.New("timeline: list closed")
	// ErrInvalidOptions is returned by New when Fetch or GetID is missing.
	ErrInvalidOptions = errors.New("timeline: invalid options")
)
