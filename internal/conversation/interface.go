package conversation

import "context"

// Store owns per-surface chat history and session continuity. Storage failures
// are logged by implementations and never returned.
type Store interface {
	// Load returns the current conversation, or a fresh seeded one.
	Load(ctx context.Context, surface Surface) (Conversation, error)

	// Append adds msg, assigning an id and timestamp when missing, and persists.
	Append(ctx context.Context, surface Surface, msg Message) (Message, error)

	// SetSessionID records the backend-assigned session id and persists.
	// It returns ErrSessionInUse when another surface already holds sessionID.
	SetSessionID(ctx context.Context, surface Surface, sessionID string) error

	// Clear resets to the seed conversation and purges remote history best-effort.
	Clear(ctx context.Context, surface Surface) (Conversation, error)
}

// HistoryPurger discards server-side history for a session.
type HistoryPurger interface {
	DeleteChatHistory(ctx context.Context, conversationID string) error
}
