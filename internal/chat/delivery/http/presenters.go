package http

import (
	"strings"

	"enrollment-assistant/internal/chat"
	"enrollment-assistant/internal/conversation"
	"enrollment-assistant/pkg/response"
)

type sendReq struct {
	Surface string `json:"-"`
	Message string `json:"message" binding:"required"`
}

func (r sendReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return errEmptyMessage
	}
	return nil
}

func (r sendReq) toInput() chat.SendInput {
	return chat.SendInput{
		Surface: conversation.Surface(r.Surface),
		Message: r.Message,
	}
}

type messageResp struct {
	ID        string             `json:"id"`
	Content   string             `json:"content"`
	Sender    string             `json:"sender"`
	Timestamp *response.DateTime `json:"timestamp"`
}

func newMessageResp(m conversation.Message) messageResp {
	ts := m.Timestamp
	return messageResp{
		ID:        m.ID,
		Content:   m.Content,
		Sender:    string(m.Sender),
		Timestamp: response.NewDateTime(&ts),
	}
}

type sendResp struct {
	UserMessage        messageResp `json:"user_message"`
	Reply              messageResp `json:"reply"`
	SuggestedQuestions []string    `json:"suggested_questions,omitempty"`
	SessionID          string      `json:"session_id,omitempty"`
	FromCache          bool        `json:"from_cache"`
	Failed             bool        `json:"failed"`
}

func (h *handler) newSendResp(out chat.SendOutput) sendResp {
	return sendResp{
		UserMessage:        newMessageResp(out.UserMessage),
		Reply:              newMessageResp(out.Reply),
		SuggestedQuestions: out.SuggestedQuestions,
		SessionID:          out.SessionID,
		FromCache:          out.FromCache,
		Failed:             out.Failed,
	}
}
