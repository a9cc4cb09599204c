package chat

import "errors"

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrUnknownSurface = errors.New("unknown chat surface")
)
