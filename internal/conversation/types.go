package conversation

import "time"

// Surface is an independent chat context with its own history and session.
type Surface string

const (
	SurfaceGeneral Surface = "general"
	SurfaceEmail   Surface = "email"
)

// Surfaces lists every known surface.
var Surfaces = []Surface{SurfaceGeneral, SurfaceEmail}

// Valid reports whether s is a known surface.
func (s Surface) Valid() bool {
	for _, known := range Surfaces {
		if s == known {
			return true
		}
	}
	return false
}

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// SeedMessageID is the id of the welcome message every conversation starts with.
const SeedMessageID = "welcome"

// Message is immutable once appended.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}

// IsSeed reports whether m is the welcome message.
func (m Message) IsSeed() bool {
	return m.ID == SeedMessageID
}

// Conversation is the history of one surface.
type Conversation struct {
	SessionID string    `json:"session_id,omitempty"`
	Messages  []Message `json:"messages"`
}

// Turns returns the messages exchanged after the seed.
func (c Conversation) Turns() []Message {
	turns := make([]Message, 0, len(c.Messages))
	for _, m := range c.Messages {
		if !m.IsSeed() {
			turns = append(turns, m)
		}
	}
	return turns
}

// IsSeedOnly reports whether nothing has happened in the conversation yet.
func (c Conversation) IsSeedOnly() bool {
	return c.SessionID == "" && len(c.Turns()) == 0
}

// Clone returns a deep copy safe to hand to callers.
func (c Conversation) Clone() Conversation {
	out := Conversation{SessionID: c.SessionID, Messages: make([]Message, len(c.Messages))}
	copy(out.Messages, c.Messages)
	return out
}
