package chat

import (
	"context"

	"enrollment-assistant/internal/model"
)

// UseCase runs chat exchanges against the backend.
type UseCase interface {
	// Send records the user message, answers it from cache or the backend and
	// records the reply. Backend failures produce an apology reply, not an error.
	Send(ctx context.Context, sc model.Scope, input SendInput) (SendOutput, error)
}
