package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"enrollment-assistant/internal/model"
	"enrollment-assistant/internal/task"
	"enrollment-assistant/pkg/backend"
)

// Submit implements task.UseCase.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input task.SubmitInput) (task.Task, error) {
	if err := uc.validate(input); err != nil {
		return task.Task{}, err
	}
	if uc.isClosed() {
		return task.Task{}, task.ErrClosed
	}
	if !uc.limiter.Allow(sc.UserID) {
		uc.l.Warnf(ctx, "task.Submit: rate limit hit user=%s", sc.UserID)
		return task.Task{}, task.ErrRateLimited
	}

	resp, err := uc.submitRemote(ctx, input)
	if err != nil {
		return task.Task{}, fmt.Errorf("submit %s job: %w", input.Kind, err)
	}
	if resp.TaskID == "" {
		return task.Task{}, fmt.Errorf("submit %s job: backend returned no task id", input.Kind)
	}

	t := task.Task{
		ID:          resp.TaskID,
		Kind:        input.Kind,
		Status:      task.StatusInitializing,
		Progress:    resp.Message,
		StartedAt:   uc.now(),
		SubmittedBy: sc.UserID,
	}
	if err := uc.register(t); err != nil {
		return task.Task{}, err
	}

	uc.l.Infof(ctx, "task.Submit: registered task=%s kind=%s user=%s", t.ID, t.Kind, sc.UserID)
	return t.Clone(), nil
}

func (uc *implUseCase) validate(input task.SubmitInput) error {
	switch input.Kind {
	case task.KindSingle:
		if strings.TrimSpace(input.SlateURL) == "" {
			return task.ErrInvalidTarget
		}
	case task.KindBulk:
		if input.Count < 1 || input.Count > uc.cfg.MaxBulkCount {
			return task.ErrInvalidCount
		}
	default:
		return task.ErrInvalidKind
	}
	return nil
}

func (uc *implUseCase) submitRemote(ctx context.Context, input task.SubmitInput) (*backend.SubmitResponse, error) {
	if input.Kind == task.KindSingle {
		return uc.backend.ProcessEmail(ctx, backend.ProcessEmailRequest{
			SlateURL: strings.TrimSpace(input.SlateURL),
		})
	}
	return uc.backend.ProcessBulkEmail(ctx, backend.ProcessBulkEmailRequest{
		Count:    input.Count,
		InboxURL: uc.cfg.InboxURL,
	})
}

// register stores t and starts its poll loop.
func (uc *implUseCase) register(t task.Task) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.closed {
		return task.ErrClosed
	}

	if prev, ok := uc.tasks[t.ID]; ok {
		prev.stopPoll()
	}

	pollCtx, stop := context.WithCancel(uc.root)
	uc.tasks[t.ID] = &tracked{task: t, stopPoll: stop}
	uc.publish(task.EventRegistered, t)

	uc.pollers.Add(1)
	go uc.pollLoop(pollCtx, t.ID, uc.interval(t.Kind))
	return nil
}

func (uc *implUseCase) interval(kind task.Kind) time.Duration {
	if kind == task.KindBulk {
		return uc.cfg.BulkInterval
	}
	return uc.cfg.SingleInterval
}

func (uc *implUseCase) isClosed() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.closed
}
