package backend

import "fmt"

// HistoryMessage is one prior conversation turn sent with a chat request.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body for POST /chat.
type ChatRequest struct {
	Message             string           `json:"message"`
	UserID              string           `json:"user_id"`
	ConversationHistory []HistoryMessage `json:"conversation_history,omitempty"`
	SessionID           string           `json:"session_id,omitempty"`
	ConversationType    string           `json:"conversation_type,omitempty"`
}

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	Response           string   `json:"response"`
	ConversationID     string   `json:"conversation_id,omitempty"`
	ProcessingTime     float64  `json:"processing_time,omitempty"`
	SuggestedQuestions []string `json:"suggested_questions,omitempty"`
}

// ProcessEmailRequest is the body for POST /process-email.
type ProcessEmailRequest struct {
	SlateURL string `json:"slate_url"`
}

// ProcessBulkEmailRequest is the body for POST /process-bulk-email.
type ProcessBulkEmailRequest struct {
	Count    int    `json:"count"`
	InboxURL string `json:"inbox_url,omitempty"`
}

// SubmitResponse is returned by both job submission endpoints.
type SubmitResponse struct {
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// TaskResultDetail is the per-email outcome inside a bulk result.
type TaskResultDetail struct {
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	ProcessingTime string `json:"processing_time,omitempty"`
}

// TaskResults is the union of single and bulk job results. Fields not produced
// by a job kind are left at their zero value.
type TaskResults struct {
	// single
	Success           *bool  `json:"success,omitempty"`
	EmailContent      string `json:"email_content,omitempty"`
	GeneratedResponse string `json:"generated_response,omitempty"`
	ProcessingTime    string `json:"processing_time,omitempty"`

	// bulk
	Processed   int                `json:"processed,omitempty"`
	Total       int                `json:"total,omitempty"`
	Successful  int                `json:"successful,omitempty"`
	Failed      int                `json:"failed,omitempty"`
	SuccessRate string             `json:"success_rate,omitempty"`
	Details     []TaskResultDetail `json:"details,omitempty"`
}

// TaskStatusResponse is the snapshot returned by GET /task-status/{id}.
type TaskStatusResponse struct {
	TaskID      string      `json:"task_id"`
	Status      string      `json:"status"`
	Progress    string      `json:"progress"`
	Duration    string      `json:"duration"`
	Screenshots []string    `json:"screenshots"`
	Results     TaskResults `json:"results"`
	Error       string      `json:"error"`
}

// APIError is returned for any non-2xx backend response.
type APIError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %s error %d: %s", e.Op, e.StatusCode, e.Body)
}
