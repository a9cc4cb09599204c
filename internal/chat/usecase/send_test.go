package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"enrollment-assistant/internal/chat"
	"enrollment-assistant/internal/conversation"
	convSQLite "enrollment-assistant/internal/conversation/repository/sqlite"
	convUC "enrollment-assistant/internal/conversation/usecase"
	"enrollment-assistant/internal/model"
	"enrollment-assistant/internal/responsecache"
	"enrollment-assistant/pkg/backend"
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

// chatServer records every POST /chat body it receives.
type chatServer struct {
	mu       sync.Mutex
	requests []backend.ChatRequest
	delay    time.Duration
}

func (s *chatServer) handler(w http.ResponseWriter, r *http.Request) {
	var req backend.ChatRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	s.requests = append(s.requests, req)
	n := len(s.requests)
	s.mu.Unlock()

	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-r.Context().Done():
			return
		}
	}

	_ = json.NewEncoder(w).Encode(backend.ChatResponse{
		Response:           "answer " + req.Message,
		ConversationID:     "conv-1",
		SuggestedQuestions: []string{"What about housing?"},
		ProcessingTime:     float64(n),
	})
}

func (s *chatServer) Requests() []backend.ChatRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]backend.ChatRequest(nil), s.requests...)
}

type fixture struct {
	uc     *implUseCase
	store  conversation.Store
	server *chatServer
}

func setup(t *testing.T, timeout time.Duration, delay time.Duration) fixture {
	t.Helper()
	return setupWithClientTimeout(t, 5*time.Second, timeout, delay)
}

func setupWithClientTimeout(t *testing.T, clientTimeout, timeout, delay time.Duration) fixture {
	t.Helper()

	cs := &chatServer{delay: delay}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", cs.handler)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	repo, err := convSQLite.Open(filepath.Join(t.TempDir(), "state.sqlite"), &mockLogger{})
	if err != nil {
		t.Fatalf("sqlite.Open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	store := convUC.New(&mockLogger{}, repo, nil)
	client := backend.NewClient(srv.URL+"/api", clientTimeout)

	return fixture{
		uc:     New(&mockLogger{}, store, client, responsecache.Config{}, timeout),
		store:  store,
		server: cs,
	}
}

var student = model.Scope{UserID: "student-1"}

func TestSend_ValidationMakesNoRequest(t *testing.T) {
	f := setup(t, time.Second, 0)
	ctx := context.Background()

	tests := []struct {
		name  string
		input chat.SendInput
		want  error
	}{
		{"empty message", chat.SendInput{Surface: conversation.SurfaceGeneral, Message: "   "}, chat.ErrEmptyMessage},
		{"unknown surface", chat.SendInput{Surface: "sms", Message: "hello"}, chat.ErrUnknownSurface},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.uc.Send(ctx, student, tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
	if n := len(f.server.Requests()); n != 0 {
		t.Fatalf("backend requests = %d, want 0", n)
	}
}

func TestSend_CacheHitSkipsNetwork(t *testing.T) {
	f := setup(t, time.Second, 0)
	ctx := context.Background()

	first, err := f.uc.Send(ctx, student, chat.SendInput{Surface: conversation.SurfaceGeneral, Message: "What are the Tuition Fees?"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if first.FromCache || first.Failed {
		t.Fatalf("first send = %+v, want fresh answer", first)
	}
	if first.SessionID != "conv-1" {
		t.Fatalf("session id = %q, want conv-1", first.SessionID)
	}

	if _, err := f.store.Clear(ctx, conversation.SurfaceGeneral); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	second, err := f.uc.Send(ctx, student, chat.SendInput{Surface: conversation.SurfaceGeneral, Message: "what are the tuition fees"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !second.FromCache {
		t.Fatal("second send did not come from cache")
	}
	if second.Reply.Content != first.Reply.Content {
		t.Fatalf("cached reply = %q, want %q", second.Reply.Content, first.Reply.Content)
	}
	if n := len(f.server.Requests()); n != 1 {
		t.Fatalf("backend requests = %d, want 1", n)
	}

	conv, _ := f.store.Load(ctx, conversation.SurfaceGeneral)
	if len(conv.Messages) != 3 {
		t.Fatalf("messages = %d, want seed + user + cached reply", len(conv.Messages))
	}
}

func TestSend_CacheIsPerSurface(t *testing.T) {
	f := setup(t, time.Second, 0)
	ctx := context.Background()

	if _, err := f.uc.Send(ctx, student, chat.SendInput{Surface: conversation.SurfaceGeneral, Message: "When is the application deadline"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	out, err := f.uc.Send(ctx, student, chat.SendInput{Surface: conversation.SurfaceEmail, Message: "When is the application deadline"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if out.FromCache {
		t.Fatal("email surface replayed a general answer")
	}
	// The backend hands back the general session again; email must not adopt it.
	if out.SessionID != "" {
		t.Fatalf("email session id = %q, want none", out.SessionID)
	}
	emailConv, _ := f.store.Load(ctx, conversation.SurfaceEmail)
	if emailConv.SessionID != "" || out.Failed {
		t.Fatalf("email conversation = %+v", emailConv)
	}

	reqs := f.server.Requests()
	if len(reqs) != 2 {
		t.Fatalf("backend requests = %d, want 2", len(reqs))
	}
	if reqs[0].ConversationType != "" || reqs[1].ConversationType != "email" {
		t.Fatalf("conversation types = %q, %q", reqs[0].ConversationType, reqs[1].ConversationType)
	}
}

func TestSend_HistoryExcludesSeedAndCarriesSession(t *testing.T) {
	f := setup(t, time.Second, 0)
	ctx := context.Background()

	if _, err := f.uc.Send(ctx, student, chat.SendInput{Surface: conversation.SurfaceGeneral, Message: "Tell me about nursing"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	out, err := f.uc.Send(ctx, student, chat.SendInput{Surface: conversation.SurfaceGeneral, Message: "What are the tuition fees?"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if out.FromCache {
		t.Fatal("follow-up question must not be answered from cache")
	}

	reqs := f.server.Requests()
	if len(reqs) != 2 {
		t.Fatalf("backend requests = %d, want 2", len(reqs))
	}
	if len(reqs[0].ConversationHistory) != 0 || reqs[0].SessionID != "" {
		t.Fatalf("first request carried context: %+v", reqs[0])
	}
	hist := reqs[1].ConversationHistory
	if len(hist) != 2 || hist[0].Role != "user" || hist[1].Role != "assistant" {
		t.Fatalf("history = %+v, want [user assistant]", hist)
	}
	if reqs[1].SessionID != "conv-1" || reqs[1].UserID != "student-1" {
		t.Fatalf("second request = %+v", reqs[1])
	}

	// The follow-up was asked with context, so it must not have been cached.
	if _, err := f.store.Clear(ctx, conversation.SurfaceGeneral); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	again, err := f.uc.Send(ctx, student, chat.SendInput{Surface: conversation.SurfaceGeneral, Message: "What are the tuition fees?"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if again.FromCache {
		t.Fatal("contextual answer was cached")
	}
}

func TestSend_TimeoutAppendsSingleApology(t *testing.T) {
	f := setup(t, 50*time.Millisecond, 2*time.Second)
	ctx := context.Background()

	out, err := f.uc.Send(ctx, student, chat.SendInput{Surface: conversation.SurfaceGeneral, Message: "Is housing guaranteed?"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if !out.Failed || out.Reply.Content != chat.ApologyMessage {
		t.Fatalf("reply = %+v, want apology", out.Reply)
	}

	conv, _ := f.store.Load(ctx, conversation.SurfaceGeneral)
	if len(conv.Messages) != 3 {
		t.Fatalf("messages = %d, want seed + user + apology", len(conv.Messages))
	}
	if conv.Messages[2].Content != chat.ApologyMessage || conv.Messages[2].Sender != conversation.SenderAssistant {
		t.Fatalf("last message = %+v", conv.Messages[2])
	}
	if n := len(f.server.Requests()); n != 1 {
		t.Fatalf("backend requests = %d, want exactly 1", n)
	}
}

func TestSend_ReplySlowerThanClientTimeout(t *testing.T) {
	// The backend answers after the client timeout but within the chat timeout.
	f := setupWithClientTimeout(t, 50*time.Millisecond, 2*time.Second, 200*time.Millisecond)
	ctx := context.Background()

	out, err := f.uc.Send(ctx, student, chat.SendInput{Surface: conversation.SurfaceGeneral, Message: "Is housing guaranteed?"})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if out.Failed {
		t.Fatalf("reply = %+v, want backend answer", out.Reply)
	}
	if out.Reply.Content != "answer Is housing guaranteed?" {
		t.Fatalf("reply = %q", out.Reply.Content)
	}
}
