package http

import (
	"enrollment-assistant/internal/task"
	"enrollment-assistant/pkg/log"
)

type handler struct {
	l              log.Logger
	uc             task.UseCase
	observerBuffer int
}

// New creates the HTTP handler for remote automation tasks. observerBuffer
// sizes the event queue of each SSE client.
func New(l log.Logger, uc task.UseCase, observerBuffer int) *handler {
	return &handler{
		l:              l,
		uc:             uc,
		observerBuffer: observerBuffer,
	}
}
