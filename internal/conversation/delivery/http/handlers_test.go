package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"enrollment-assistant/internal/conversation"
	"enrollment-assistant/internal/middleware"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type mockStore struct {
	loaded  []conversation.Surface
	cleared []conversation.Surface
	err     error
}

func seeded(sessionID string) conversation.Conversation {
	return conversation.Conversation{
		SessionID: sessionID,
		Messages: []conversation.Message{{
			ID:        "welcome",
			Content:   "Hi! How can I help with your enrollment?",
			Sender:    conversation.SenderAssistant,
			Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		}},
	}
}

func (m *mockStore) Load(ctx context.Context, surface conversation.Surface) (conversation.Conversation, error) {
	m.loaded = append(m.loaded, surface)
	if m.err != nil {
		return conversation.Conversation{}, m.err
	}
	return seeded("sess-1"), nil
}

func (m *mockStore) Append(ctx context.Context, surface conversation.Surface, msg conversation.Message) (conversation.Message, error) {
	return msg, nil
}

func (m *mockStore) SetSessionID(ctx context.Context, surface conversation.Surface, sessionID string) error {
	return nil
}

func (m *mockStore) Clear(ctx context.Context, surface conversation.Surface) (conversation.Conversation, error) {
	m.cleared = append(m.cleared, surface)
	if m.err != nil {
		return conversation.Conversation{}, m.err
	}
	return seeded(""), nil
}

func newRouter(store conversation.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	l := &mockLogger{}
	RegisterRoutes(r.Group("/api/v1"), New(l, store), middleware.New(l, nil))
	return r
}

func TestHandlers(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		surface     string
		storeErr    error
		wantCode    int
		wantSession string
	}{
		{"detail ok", http.MethodGet, "general", nil, http.StatusOK, "sess-1"},
		{"detail unknown surface", http.MethodGet, "sms", nil, http.StatusNotFound, ""},
		{"clear ok", http.MethodDelete, "email", nil, http.StatusOK, ""},
		{"clear unknown surface", http.MethodDelete, "sms", nil, http.StatusNotFound, ""},
		{"clear store failure", http.MethodDelete, "general", errors.New("disk full"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{err: tt.storeErr}
			r := newRouter(store)

			req := httptest.NewRequest(tt.method, "/api/v1/conversations/"+tt.surface, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.wantCode, w.Body.String())
			}

			if tt.wantCode == http.StatusNotFound {
				if len(store.loaded)+len(store.cleared) != 0 {
					t.Fatalf("store was called for unknown surface: loaded=%v cleared=%v", store.loaded, store.cleared)
				}
				return
			}
			if tt.method == http.MethodDelete {
				if len(store.cleared) != 1 || string(store.cleared[0]) != tt.surface {
					t.Fatalf("cleared = %v, want [%s]", store.cleared, tt.surface)
				}
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			var body struct {
				Data struct {
					Surface   string `json:"surface"`
					SessionID string `json:"session_id"`
					Messages  []struct {
						ID        string `json:"id"`
						Sender    string `json:"sender"`
						Timestamp string `json:"timestamp"`
					} `json:"messages"`
				} `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Data.Surface != tt.surface || body.Data.SessionID != tt.wantSession {
				t.Fatalf("response = %+v", body.Data)
			}
			if len(body.Data.Messages) != 1 || body.Data.Messages[0].Sender != "assistant" || body.Data.Messages[0].Timestamp == "" {
				t.Fatalf("messages = %+v", body.Data.Messages)
			}
		})
	}
}
