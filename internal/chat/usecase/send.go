package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"enrollment-assistant/internal/chat"
	"enrollment-assistant/internal/conversation"
	"enrollment-assistant/internal/model"
)

// Send implements chat.UseCase.
func (uc *implUseCase) Send(ctx context.Context, sc model.Scope, input chat.SendInput) (chat.SendOutput, error) {
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return chat.SendOutput{}, chat.ErrEmptyMessage
	}
	cache, ok := uc.caches[input.Surface]
	if !ok {
		return chat.SendOutput{}, chat.ErrUnknownSurface
	}

	conv, err := uc.store.Load(ctx, input.Surface)
	if err != nil {
		return chat.SendOutput{}, fmt.Errorf("load conversation: %w", err)
	}
	prior := conv.Turns()
	zeroContext := len(prior) == 0

	userMsg, err := uc.store.Append(ctx, input.Surface, conversation.Message{
		Content: text,
		Sender:  conversation.SenderUser,
	})
	if err != nil {
		return chat.SendOutput{}, fmt.Errorf("append user message: %w", err)
	}

	if zeroContext {
		if answer, hit := cache.Lookup(text); hit {
			uc.l.Debugf(ctx, "chat.Send: cache hit surface=%s", input.Surface)
			return uc.reply(ctx, input.Surface, userMsg, answer, conv.SessionID, true)
		}
	}

	uc.l.Infof(ctx, "chat.Send: user=%s surface=%s history=%d", sc.UserID, input.Surface, len(prior))

	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	resp, err := uc.backend.Chat(callCtx, buildRequest(sc, input.Surface, text, conv.SessionID, prior))
	if err != nil {
		uc.l.Warnf(ctx, "chat.Send: backend chat failed surface=%s: %v", input.Surface, err)
		return uc.apologize(ctx, input.Surface, userMsg, conv.SessionID)
	}

	sessionID := conv.SessionID
	if resp.ConversationID != "" && resp.ConversationID != sessionID {
		switch err := uc.store.SetSessionID(ctx, input.Surface, resp.ConversationID); {
		case err == nil:
			sessionID = resp.ConversationID
		case errors.Is(err, conversation.ErrSessionInUse):
			uc.l.Warnf(ctx, "chat.Send: backend reused session %s across surfaces, keeping %q for %s", resp.ConversationID, sessionID, input.Surface)
		default:
			return chat.SendOutput{}, fmt.Errorf("set session id: %w", err)
		}
	}

	answer := chat.Answer{Response: resp.Response, SuggestedQuestions: resp.SuggestedQuestions}
	if cache.Store(text, answer, zeroContext) {
		uc.l.Debugf(ctx, "chat.Send: cached answer surface=%s", input.Surface)
	}

	return uc.reply(ctx, input.Surface, userMsg, answer, sessionID, false)
}

func (uc *implUseCase) reply(ctx context.Context, surface conversation.Surface, userMsg conversation.Message, answer chat.Answer, sessionID string, fromCache bool) (chat.SendOutput, error) {
	msg, err := uc.store.Append(ctx, surface, conversation.Message{
		Content: answer.Response,
		Sender:  conversation.SenderAssistant,
	})
	if err != nil {
		return chat.SendOutput{}, fmt.Errorf("append reply: %w", err)
	}

	return chat.SendOutput{
		UserMessage:        userMsg,
		Reply:              msg,
		SuggestedQuestions: answer.SuggestedQuestions,
		SessionID:          sessionID,
		FromCache:          fromCache,
	}, nil
}

func (uc *implUseCase) apologize(ctx context.Context, surface conversation.Surface, userMsg conversation.Message, sessionID string) (chat.SendOutput, error) {
	msg, err := uc.store.Append(ctx, surface, conversation.Message{
		Content: chat.ApologyMessage,
		Sender:  conversation.SenderAssistant,
	})
	if err != nil {
		return chat.SendOutput{}, fmt.Errorf("append apology: %w", err)
	}

	return chat.SendOutput{
		UserMessage: userMsg,
		Reply:       msg,
		SessionID:   sessionID,
		Failed:      true,
	}, nil
}
