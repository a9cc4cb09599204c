package usecase

import (
	"context"

	"enrollment-assistant/internal/task"
)

// Cancel implements task.UseCase. The local record becomes cancelled before
// the backend is told. The backend call runs in the background and failures
// are only logged.
func (uc *implUseCase) Cancel(ctx context.Context, id string) (task.Task, error) {
	uc.mu.Lock()
	entry, ok := uc.tasks[id]
	if !ok {
		uc.mu.Unlock()
		return task.Task{}, task.ErrTaskNotFound
	}
	if entry.task.Status.IsTerminal() {
		uc.mu.Unlock()
		return task.Task{}, task.ErrTaskFinished
	}

	entry.stopPoll()
	next := entry.task.Clone()
	next.Status = task.StatusCancelled
	ended := uc.now()
	next.EndedAt = &ended
	entry.task = next
	uc.publish(task.EventCancelled, next)
	closed := uc.closed
	if !closed {
		uc.remote.Add(1)
	}
	uc.mu.Unlock()

	if closed {
		uc.l.Warnf(ctx, "task.Cancel: orchestrator closed, backend not told about %s", id)
		return next.Clone(), nil
	}
	uc.cancelRemote(ctx, id)
	return next.Clone(), nil
}

// cancelRemote tells the backend in the background. The caller has already
// reserved a slot in uc.remote.
func (uc *implUseCase) cancelRemote(ctx context.Context, id string) {
	go func() {
		defer uc.remote.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.cfg.CleanupTimeout)
		defer cancel()

		if err := uc.backend.CancelTask(ctx, id); err != nil {
			uc.l.Warnf(ctx, "task.Cancel: backend cancel of %s failed: %v", id, err)
			return
		}
		uc.l.Infof(ctx, "task.Cancel: cancelled %s", id)
	}()
}
