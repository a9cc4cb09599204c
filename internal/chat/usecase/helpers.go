package usecase

import (
	"enrollment-assistant/internal/conversation"
	"enrollment-assistant/internal/model"
	"enrollment-assistant/pkg/backend"
)

func buildRequest(sc model.Scope, surface conversation.Surface, text, sessionID string, prior []conversation.Message) backend.ChatRequest {
	req := backend.ChatRequest{
		Message:   text,
		UserID:    sc.UserID,
		SessionID: sessionID,
	}
	if surface == conversation.SurfaceEmail {
		req.ConversationType = "email"
	}
	if len(prior) > 0 {
		req.ConversationHistory = make([]backend.HistoryMessage, len(prior))
		for i, m := range prior {
			req.ConversationHistory[i] = backend.HistoryMessage{
				Role:    string(m.Sender),
				Content: m.Content,
			}
		}
	}
	return req
}
