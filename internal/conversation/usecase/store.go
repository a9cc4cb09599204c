package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"enrollment-assistant/internal/conversation"
)

func (s *implStore) Load(ctx context.Context, surface conversation.Surface) (conversation.Conversation, error) {
	if !surface.Valid() {
		return conversation.Conversation{}, conversation.ErrUnknownSurface
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current(ctx, surface).Clone(), nil
}

func (s *implStore) Append(ctx context.Context, surface conversation.Surface, msg conversation.Message) (conversation.Message, error) {
	if !surface.Valid() {
		return conversation.Message{}, conversation.ErrUnknownSurface
	}
	if strings.TrimSpace(msg.Content) == "" {
		return conversation.Message{}, conversation.ErrEmptyMessage
	}
	if msg.Sender != conversation.SenderUser && msg.Sender != conversation.SenderAssistant {
		return conversation.Message{}, conversation.ErrInvalidSender
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.current(ctx, surface)

	if msg.ID == "" {
		msg.ID = fmt.Sprintf("%s-%s", msg.Sender, uuid.NewString())
	}
	for _, existing := range conv.Messages {
		if existing.ID == msg.ID {
			return conversation.Message{}, conversation.ErrDuplicateMessage
		}
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = s.now()
	}

	conv.Messages = append(conv.Messages, msg)
	s.persist(ctx, surface, conv)

	return msg, nil
}

func (s *implStore) SetSessionID(ctx context.Context, surface conversation.Surface, sessionID string) error {
	if !surface.Valid() {
		return conversation.ErrUnknownSurface
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.current(ctx, surface)
	if conv.SessionID == sessionID {
		return nil
	}
	if sessionID != "" {
		for _, other := range conversation.Surfaces {
			if other != surface && s.current(ctx, other).SessionID == sessionID {
				s.l.Warnf(ctx, "conversation store: session %s already held by %s, refusing for %s", sessionID, other, surface)
				return conversation.ErrSessionInUse
			}
		}
	}
	conv.SessionID = sessionID
	s.persist(ctx, surface, conv)
	return nil
}

func (s *implStore) Clear(ctx context.Context, surface conversation.Surface) (conversation.Conversation, error) {
	if !surface.Valid() {
		return conversation.Conversation{}, conversation.ErrUnknownSurface
	}

	s.mu.Lock()
	previous := s.current(ctx, surface).SessionID
	fresh := s.seed(surface)
	s.live[surface] = fresh
	if err := s.repo.Delete(ctx, storageKey(surface)); err != nil {
		s.l.Errorf(ctx, "conversation store: failed to remove %s: %v", storageKey(surface), err)
	}
	out := fresh.Clone()
	s.mu.Unlock()

	if previous != "" {
		s.purgeRemote(previous)
	}
	return out, nil
}

// purgeRemote asks the backend to drop history for sessionID without blocking
// the caller. Failures are only logged.
func (s *implStore) purgeRemote(sessionID string) {
	if s.purger == nil {
		return
	}

	s.purges.Add(1)
	go func() {
		defer s.purges.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.purgeTimeout)
		defer cancel()

		if err := s.purger.DeleteChatHistory(ctx, sessionID); err != nil {
			s.l.Warnf(ctx, "conversation store: best-effort history purge for %s failed: %v", sessionID, err)
			return
		}
		s.l.Infof(ctx, "conversation store: purged remote history for %s", sessionID)
	}()
}
