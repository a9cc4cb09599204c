package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout = 15 * time.Second

	opChat = "chat"
)

// Client is the HTTP wrapper for the enrollment job backend.
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewClient creates a backend client. timeout bounds every call except Chat,
// whose deadline comes from the caller's ctx. A non-positive timeout uses the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: &http.Client{},
	}
}

// SetAPIURL overrides the base URL, used by tests.
func (c *Client) SetAPIURL(baseURL string) {
	c.baseURL = strings.TrimRight(baseURL, "/")
}

// Chat sends a message via POST /chat. Callers bound the call with ctx; the
// client timeout applies only when ctx carries no deadline.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var out ChatResponse
	if err := c.do(ctx, opChat, http.MethodPost, "/chat", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteChatHistory purges server-side history via DELETE /chat/history/{id}.
func (c *Client) DeleteChatHistory(ctx context.Context, conversationID string) error {
	path := "/chat/history/" + url.PathEscape(conversationID)
	return c.do(ctx, "delete history", http.MethodDelete, path, nil, nil)
}

// ProcessEmail submits a single-email job via POST /process-email.
func (c *Client) ProcessEmail(ctx context.Context, req ProcessEmailRequest) (*SubmitResponse, error) {
	var out SubmitResponse
	if err := c.do(ctx, "process email", http.MethodPost, "/process-email", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ProcessBulkEmail submits a bulk job via POST /process-bulk-email.
func (c *Client) ProcessBulkEmail(ctx context.Context, req ProcessBulkEmailRequest) (*SubmitResponse, error) {
	var out SubmitResponse
	if err := c.do(ctx, "process bulk email", http.MethodPost, "/process-bulk-email", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TaskStatus fetches GET /task-status/{id}.
func (c *Client) TaskStatus(ctx context.Context, taskID string) (*TaskStatusResponse, error) {
	var out TaskStatusResponse
	path := "/task-status/" + url.PathEscape(taskID)
	if err := c.do(ctx, "task status", http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CancelTask requests cancellation via DELETE /task/{id}.
func (c *Client) CancelTask(ctx context.Context, taskID string) error {
	path := "/task/" + url.PathEscape(taskID)
	return c.do(ctx, "cancel task", http.MethodDelete, path, nil, nil)
}

// ClearTasks asks the backend to drop finished tasks via POST /admin/clear-tasks.
func (c *Client) ClearTasks(ctx context.Context) error {
	return c.do(ctx, "clear tasks", http.MethodPost, "/admin/clear-tasks", nil, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	// Chat is bounded by its caller.
	if op != opChat {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", op, err)
	}
	if in != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call backend %s API: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Op: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode backend %s response: %w", op, err)
	}
	return nil
}

