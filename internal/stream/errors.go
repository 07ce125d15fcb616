package stream

import "errors"

var (
	ErrEmptyURL          = errors.New("stream: empty streaming url")
	ErrUnsupportedScheme = errors.New("stream: unsupported url scheme")
	ErrAlreadyStarted    = errors.New("stream: client already started")
)
