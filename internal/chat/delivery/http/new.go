package http

import (
	"enrollment-assistant/internal/chat"
	"enrollment-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates the HTTP handler for chat exchanges.
func New(l log.Logger, uc chat.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
