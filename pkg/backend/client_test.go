package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"enrollment-assistant/pkg/backend"
)

func TestBackendClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		var req backend.ChatRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Message == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("model unavailable"))
			return
		}
		json.NewEncoder(w).Encode(backend.ChatResponse{
			Response:           "echo: " + req.Message,
			ConversationID:     "conv-1",
			SuggestedQuestions: []string{"What about housing?"},
		})
	})

	var deletedHistory string
	mux.HandleFunc("/api/chat/history/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		deletedHistory = r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("/api/process-email", func(w http.ResponseWriter, r *http.Request) {
		var req backend.ProcessEmailRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(backend.SubmitResponse{TaskID: "dex_single_1", Message: "started " + req.SlateURL, Success: true})
	})

	mux.HandleFunc("/api/process-bulk-email", func(w http.ResponseWriter, r *http.Request) {
		var req backend.ProcessBulkEmailRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Count != 5 {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		json.NewEncoder(w).Encode(backend.SubmitResponse{TaskID: "dex_bulk_1", Success: true})
	})

	mux.HandleFunc("/api/task-status/dex_bulk_1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"task_id":"dex_bulk_1","status":"completed","progress":"done","duration":"12.0s",
			"screenshots":["s1.png"],"results":{"processed":5,"total":5,"successful":4,"failed":1,"success_rate":"80.0%"},"error":""}`))
	})

	mux.HandleFunc("/api/task/dex_bulk_1", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Write([]byte(`{"status":"success"}`))
	})

	mux.HandleFunc("/api/admin/clear-tasks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"success","remaining_tasks":0}`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := backend.NewClient(ts.URL+"/api/", time.Second)
	ctx := context.Background()

	t.Run("Chat", func(t *testing.T) {
		res, err := client.Chat(ctx, backend.ChatRequest{Message: "hi", UserID: "u1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Response != "echo: hi" || res.ConversationID != "conv-1" || len(res.SuggestedQuestions) != 1 {
			t.Errorf("unexpected chat response: %+v", res)
		}
	})

	t.Run("Chat API error", func(t *testing.T) {
		_, err := client.Chat(ctx, backend.ChatRequest{Message: "fail"})
		var apiErr *backend.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError || apiErr.Body != "model unavailable" {
			t.Errorf("unexpected APIError: %+v", apiErr)
		}
	})

	t.Run("DeleteChatHistory", func(t *testing.T) {
		if err := client.DeleteChatHistory(ctx, "conv-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if deletedHistory != "/api/chat/history/conv-1" {
			t.Errorf("unexpected path: %s", deletedHistory)
		}
	})

	t.Run("ProcessEmail", func(t *testing.T) {
		res, err := client.ProcessEmail(ctx, backend.ProcessEmailRequest{SlateURL: "https://slate/x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TaskID != "dex_single_1" || res.Message != "started https://slate/x" {
			t.Errorf("unexpected submit response: %+v", res)
		}
	})

	t.Run("ProcessBulkEmail", func(t *testing.T) {
		res, err := client.ProcessBulkEmail(ctx, backend.ProcessBulkEmailRequest{Count: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.TaskID != "dex_bulk_1" {
			t.Errorf("unexpected task id: %s", res.TaskID)
		}

		if _, err := client.ProcessBulkEmail(ctx, backend.ProcessBulkEmailRequest{Count: 3}); err == nil {
			t.Errorf("expected error for rejected count")
		}
	})

	t.Run("TaskStatus", func(t *testing.T) {
		res, err := client.TaskStatus(ctx, "dex_bulk_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != "completed" || res.Results.Successful != 4 || res.Results.SuccessRate != "80.0%" {
			t.Errorf("unexpected status: %+v", res)
		}
		if len(res.Screenshots) != 1 {
			t.Errorf("expected one screenshot, got %v", res.Screenshots)
		}
	})

	t.Run("TaskStatus not found", func(t *testing.T) {
		_, err := client.TaskStatus(ctx, "missing")
		var apiErr *backend.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 APIError, got %v", err)
		}
	})

	t.Run("CancelTask", func(t *testing.T) {
		if err := client.CancelTask(ctx, "dex_bulk_1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ClearTasks", func(t *testing.T) {
		if err := client.ClearTasks(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Server Down", func(t *testing.T) {
		badClient := backend.NewClient("http://localhost:59999", time.Second)
		if _, err := badClient.TaskStatus(ctx, "x"); err == nil {
			t.Errorf("expected connection refused error")
		}
	})
}

func TestBackendClientTimeouts(t *testing.T) {
	slow := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(200 * time.Millisecond):
		case <-r.Context().Done():
			return
		}
		w.Write([]byte(`{"response":"late","conversation_id":"conv-1","task_id":"dex_1","status":"running"}`))
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", slow)
	mux.HandleFunc("/api/task-status/dex_1", slow)
	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := backend.NewClient(ts.URL+"/api", 50*time.Millisecond)

	t.Run("Chat outlives client timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		res, err := client.Chat(ctx, backend.ChatRequest{Message: "slow"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Response != "late" {
			t.Errorf("unexpected chat response: %+v", res)
		}
	})

	t.Run("Chat without deadline uses client timeout", func(t *testing.T) {
		_, err := client.Chat(context.Background(), backend.ChatRequest{Message: "slow"})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected deadline exceeded, got %v", err)
		}
	})

	t.Run("Chat honours caller deadline", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := client.Chat(ctx, backend.ChatRequest{Message: "slow"})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected deadline exceeded, got %v", err)
		}
	})

	t.Run("TaskStatus bounded by client timeout", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		_, err := client.TaskStatus(ctx, "dex_1")
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected deadline exceeded, got %v", err)
		}
	})
}
