package conversation

import "errors"

// Domain-specific errors for the conversation package.
var (
	ErrUnknownSurface   = errors.New("unknown conversation surface")
	ErrEmptyMessage     = errors.New("message content is empty")
	ErrInvalidSender    = errors.New("message sender must be user or assistant")
	ErrDuplicateMessage = errors.New("message id already exists in conversation")
	ErrSessionInUse     = errors.New("session id is held by another surface")
)
