package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"enrollment-assistant/internal/conversation"
	"enrollment-assistant/internal/conversation/repository"
)

var seedContent = map[conversation.Surface]string{
	conversation.SurfaceGeneral: "Hello! I'm your AI Enrollment Counselor. I can help answer questions about admissions, tuition, programs, and other enrollment-related queries. How can I assist you today?",
	conversation.SurfaceEmail:   "Hello! I'm your Email Response Assistant. I can help you draft email responses to student inquiries. Paste email content or provide details, and I'll help you craft a response.",
}

func storageKey(surface conversation.Surface) string {
	return "conversation:" + string(surface)
}

func (s *implStore) seed(surface conversation.Surface) *conversation.Conversation {
	return &conversation.Conversation{
		Messages: []conversation.Message{{
			ID:        conversation.SeedMessageID,
			Content:   seedContent[surface],
			Sender:    conversation.SenderAssistant,
			Timestamp: s.now(),
		}},
	}
}

// current returns the live conversation, hydrating it from storage on first
// use. Must be called with s.mu held.
func (s *implStore) current(ctx context.Context, surface conversation.Surface) *conversation.Conversation {
	if conv, ok := s.live[surface]; ok {
		return conv
	}
	conv := s.restore(ctx, surface)
	s.live[surface] = conv
	return conv
}

// restore reads the persisted record. Missing, unreadable or corrupt state all
// yield the seed conversation; corrupt records are deleted.
func (s *implStore) restore(ctx context.Context, surface conversation.Surface) *conversation.Conversation {
	key := storageKey(surface)

	payload, err := s.repo.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return s.seed(surface)
	}
	if err != nil {
		s.l.Errorf(ctx, "conversation store: failed to read %s: %v", key, err)
		return s.seed(surface)
	}

	var conv conversation.Conversation
	if err := json.Unmarshal(payload, &conv); err != nil || !wellFormed(conv) {
		s.l.Warnf(ctx, "conversation store: discarding corrupt state for %s: %v", key, err)
		if delErr := s.repo.Delete(ctx, key); delErr != nil {
			s.l.Errorf(ctx, "conversation store: failed to delete corrupt %s: %v", key, delErr)
		}
		return s.seed(surface)
	}
	return &conv
}

func wellFormed(conv conversation.Conversation) bool {
	if len(conv.Messages) == 0 {
		return false
	}
	seen := make(map[string]struct{}, len(conv.Messages))
	for _, m := range conv.Messages {
		if m.ID == "" {
			return false
		}
		if m.Sender != conversation.SenderUser && m.Sender != conversation.SenderAssistant {
			return false
		}
		if _, dup := seen[m.ID]; dup {
			return false
		}
		seen[m.ID] = struct{}{}
	}
	return true
}

// persist rewrites the stored record for surface. A conversation that still
// holds only the seed is not written. Must be called with s.mu held.
func (s *implStore) persist(ctx context.Context, surface conversation.Surface, conv *conversation.Conversation) {
	if conv.IsSeedOnly() {
		return
	}

	key := storageKey(surface)
	payload, err := json.Marshal(conv)
	if err != nil {
		s.l.Errorf(ctx, "conversation store: failed to encode %s: %v", key, err)
		return
	}
	if err := s.repo.Put(ctx, key, payload); err != nil {
		s.l.Errorf(ctx, "conversation store: failed to persist %s: %v", key, err)
	}
}
