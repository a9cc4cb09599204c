package http

import (
	"enrollment-assistant/internal/conversation"
	"enrollment-assistant/pkg/response"
)

type messageResp struct {
	ID        string             `json:"id"`
	Content   string             `json:"content"`
	Sender    string             `json:"sender"`
	Timestamp *response.DateTime `json:"timestamp"`
}

type conversationResp struct {
	Surface   string        `json:"surface"`
	SessionID string        `json:"session_id,omitempty"`
	Messages  []messageResp `json:"messages"`
}

func newConversationResp(surface conversation.Surface, conv conversation.Conversation) conversationResp {
	messages := make([]messageResp, len(conv.Messages))
	for i, m := range conv.Messages {
		ts := m.Timestamp
		messages[i] = messageResp{
			ID:        m.ID,
			Content:   m.Content,
			Sender:    string(m.Sender),
			Timestamp: response.NewDateTime(&ts),
		}
	}
	return conversationResp{
		Surface:   string(surface),
		SessionID: conv.SessionID,
		Messages:  messages,
	}
}
