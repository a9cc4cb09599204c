package http

import (
	"strings"

	"enrollment-assistant/internal/task"
	"enrollment-assistant/pkg/response"
)

// --- Request DTOs ---

type submitEmailReq struct {
	SlateURL string `json:"slate_url"`
}

func (r submitEmailReq) validate() error {
	if strings.TrimSpace(r.SlateURL) == "" {
		return errInvalidTarget
	}
	return nil
}

func (r submitEmailReq) toInput() task.SubmitInput {
	return task.SubmitInput{Kind: task.KindSingle, SlateURL: r.SlateURL}
}

type submitBulkReq struct {
	Count int `json:"count"`
}

func (r submitBulkReq) validate() error { return nil }

func (r submitBulkReq) toInput() task.SubmitInput {
	return task.SubmitInput{Kind: task.KindBulk, Count: r.Count}
}

type idReq struct {
	ID string `uri:"id" binding:"required"`
}

// --- Response DTOs ---

type resultDetailResp struct {
	Success        bool   `json:"success"`
	Error          string `json:"error,omitempty"`
	ProcessingTime string `json:"processing_time,omitempty"`
}

type resultsResp struct {
	Success           *bool              `json:"success,omitempty"`
	EmailContent      string             `json:"email_content,omitempty"`
	GeneratedResponse string             `json:"generated_response,omitempty"`
	ProcessingTime    string             `json:"processing_time,omitempty"`
	Processed         int                `json:"processed,omitempty"`
	Total             int                `json:"total,omitempty"`
	Successful        int                `json:"successful,omitempty"`
	Failed            int                `json:"failed,omitempty"`
	SuccessRate       string             `json:"success_rate,omitempty"`
	Details           []resultDetailResp `json:"details,omitempty"`
}

type taskResp struct {
	ID          string             `json:"task_id"`
	Kind        string             `json:"kind"`
	Status      string             `json:"status"`
	Progress    string             `json:"progress"`
	Duration    string             `json:"duration,omitempty"`
	StartedAt   *response.DateTime `json:"started_at"`
	EndedAt     *response.DateTime `json:"ended_at,omitempty"`
	Results     resultsResp        `json:"results"`
	Error       string             `json:"error,omitempty"`
	Screenshots []string           `json:"screenshots"`
	SubmittedBy string             `json:"submitted_by"`
}

func newTaskResp(t task.Task) taskResp {
	started := t.StartedAt
	screenshots := t.Screenshots
	if screenshots == nil {
		screenshots = []string{}
	}

	resp := taskResp{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Status:      string(t.Status),
		Progress:    t.Progress,
		Duration:    t.Duration,
		StartedAt:   response.NewDateTime(&started),
		EndedAt:     response.NewDateTime(t.EndedAt),
		Error:       t.Error,
		Screenshots: screenshots,
		SubmittedBy: t.SubmittedBy,
		Results: resultsResp{
			Success:           t.Results.Success,
			EmailContent:      t.Results.EmailContent,
			GeneratedResponse: t.Results.GeneratedResponse,
			ProcessingTime:    t.Results.ProcessingTime,
			Processed:         t.Results.Processed,
			Total:             t.Results.Total,
			Successful:        t.Results.Successful,
			Failed:            t.Results.Failed,
			SuccessRate:       t.Results.SuccessRate,
		},
	}
	for _, d := range t.Results.Details {
		resp.Results.Details = append(resp.Results.Details, resultDetailResp(d))
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func newListResp(tasks []task.Task) listResp {
	out := listResp{Tasks: make([]taskResp, len(tasks)), Total: len(tasks)}
	for i, t := range tasks {
		out.Tasks[i] = newTaskResp(t)
	}
	return out
}

type clearResp struct {
	Removed []string `json:"removed"`
}

func newClearResp(tasks []task.Task) clearResp {
	out := clearResp{Removed: make([]string, len(tasks))}
	for i, t := range tasks {
		out.Removed[i] = t.ID
	}
	return out
}
