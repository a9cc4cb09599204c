package usecase

import (
	"context"
	"time"

	"enrollment-assistant/internal/task"
	"enrollment-assistant/pkg/backend"
)

// pollLoop polls one task until it is terminal or ctx is cancelled. The next
// poll is armed only after the previous one resolved.
func (uc *implUseCase) pollLoop(ctx context.Context, id string, interval time.Duration) {
	defer uc.pollers.Done()

	for {
		if done := uc.poll(ctx, id); done {
			return
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}
}

// poll fetches one status snapshot and applies it. It reports whether polling
// should stop.
func (uc *implUseCase) poll(ctx context.Context, id string) bool {
	snap, err := uc.backend.TaskStatus(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return true
		}
		uc.l.Warnf(ctx, "task poll: status of %s failed, retrying: %v", id, err)
		return false
	}
	return uc.apply(ctx, id, snap)
}

// apply replaces the task record with snap unless the local record is
// already terminal.
func (uc *implUseCase) apply(ctx context.Context, id string, snap *backend.TaskStatusResponse) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entry, ok := uc.tasks[id]
	if !ok || entry.task.Status.IsTerminal() {
		return true
	}

	next := entry.task.Clone()
	if status, known := task.ParseStatus(snap.Status); known {
		next.Status = status
	} else if snap.Status != "" {
		uc.l.Warnf(ctx, "task poll: %s reported unknown status %q", id, snap.Status)
	}
	next.Progress = snap.Progress
	next.Duration = snap.Duration
	next.Error = snap.Error
	next.Screenshots = append([]string(nil), snap.Screenshots...)
	next.Results = toResults(snap.Results)
	if next.Status.IsTerminal() {
		ended := uc.now()
		next.EndedAt = &ended
	}

	entry.task = next
	uc.publish(task.EventUpdated, next)

	if next.Status.IsTerminal() {
		entry.stopPoll()
		uc.l.Infof(ctx, "task poll: %s finished with status %s", id, next.Status)
		return true
	}
	return false
}

func toResults(r backend.TaskResults) task.Results {
	out := task.Results{
		EmailContent:      r.EmailContent,
		GeneratedResponse: r.GeneratedResponse,
		ProcessingTime:    r.ProcessingTime,
		Processed:         r.Processed,
		Total:             r.Total,
		Successful:        r.Successful,
		Failed:            r.Failed,
		SuccessRate:       r.SuccessRate,
	}
	if r.Success != nil {
		success := *r.Success
		out.Success = &success
	}
	if len(r.Details) > 0 {
		out.Details = make([]task.ResultDetail, len(r.Details))
		for i, d := range r.Details {
			out.Details[i] = task.ResultDetail{
				Success:        d.Success,
				Error:          d.Error,
				ProcessingTime: d.ProcessingTime,
			}
		}
	}
	return out
}
