package http

import (
	"enrollment-assistant/internal/conversation"
	"enrollment-assistant/pkg/log"
)

type handler struct {
	l     log.Logger
	store conversation.Store
}

// New creates the HTTP handler for conversation history.
func New(l log.Logger, store conversation.Store) *handler {
	return &handler{
		l:     l,
		store: store,
	}
}
