package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"enrollment-assistant/internal/model"
	"enrollment-assistant/internal/task"
	"enrollment-assistant/pkg/backend"
	"enrollment-assistant/pkg/response"
)

// SubmitEmail godoc
// @Summary     Process one email
// @Description Submits a single-email automation job and starts tracking it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string         false "Caller identity"
// @Param       body      body   submitEmailReq true  "Slate URL of the email"
// @Success     202 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Backend rejected the job"
// @Router      /api/v1/tasks/email [POST]
func (h *handler) SubmitEmail(c *gin.Context) {
	req, err := h.processSubmitEmailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.submit(c, req.toInput())
}

// SubmitBulkEmail godoc
// @Summary     Process a batch of emails
// @Description Submits a bulk automation job for the next count inbox emails (1 to 20 by default).
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string        false "Caller identity"
// @Param       body      body   submitBulkReq true  "Number of emails"
// @Success     202 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Backend rejected the job"
// @Router      /api/v1/tasks/bulk-email [POST]
func (h *handler) SubmitBulkEmail(c *gin.Context) {
	req, err := h.processSubmitBulkReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.submit(c, req.toInput())
}

func (h *handler) submit(c *gin.Context, input task.SubmitInput) {
	ctx := c.Request.Context()
	sc := model.GetScopeFromContext(ctx)

	t, err := h.uc.Submit(ctx, sc, input)
	if err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) {
			h.l.Warnf(ctx, "uc.Submit: %v", err)
			response.BadGateway(c, "job backend rejected the submission")
			return
		}
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Accepted(c, newTaskResp(t))
}

// List godoc
// @Summary     List tasks
// @Description Returns every tracked task ordered by start time.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, newListResp(h.uc.ListActive(c.Request.Context())))
}

// Detail godoc
// @Summary     Get task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Get(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Cancel godoc
// @Summary     Cancel task
// @Description Stops tracking progress and marks the task cancelled. The backend is asked to stop on a best-effort basis.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Task already finished"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Cancel(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// ClearCompleted godoc
// @Summary     Clear finished tasks
// @Description Drops completed, failed and cancelled tasks. Running tasks are kept.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} clearResp
// @Router      /api/v1/tasks/clear [POST]
func (h *handler) ClearCompleted(c *gin.Context) {
	response.OK(c, newClearResp(h.uc.ClearCompleted(c.Request.Context())))
}

// Events godoc
// @Summary     Stream task events
// @Description Server-Sent Events: a snapshot event per tracked task, then one event per change.
// @Tags        Tasks
// @Produce     text/event-stream
// @Success     200 {object} taskResp
// @Router      /api/v1/tasks/events [GET]
func (h *handler) Events(c *gin.Context) {
	ctx := c.Request.Context()

	events, unsubscribe := h.uc.Subscribe(h.observerBuffer)
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	for _, t := range h.uc.ListActive(ctx) {
		c.SSEvent("snapshot", newTaskResp(t))
	}
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, ok := <-events:
			if !ok {
				return false
			}
			c.SSEvent(string(ev.Type), newTaskResp(ev.Task))
			return true
		}
	})
}
