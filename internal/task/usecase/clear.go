package usecase

import (
	"context"

	"enrollment-assistant/internal/task"
)

// ClearCompleted implements task.UseCase. The backend cleanup runs first and
// is best-effort; local removal happens regardless.
func (uc *implUseCase) ClearCompleted(ctx context.Context) []task.Task {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.cfg.CleanupTimeout)
	defer cancel()
	if err := uc.backend.ClearTasks(cleanupCtx); err != nil {
		uc.l.Warnf(ctx, "task.ClearCompleted: backend cleanup failed: %v", err)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	var removed []task.Task
	for id, entry := range uc.tasks {
		if !entry.task.Status.IsTerminal() {
			continue
		}
		delete(uc.tasks, id)
		removed = append(removed, entry.task.Clone())
		uc.publish(task.EventRemoved, entry.task)
	}

	uc.l.Infof(ctx, "task.ClearCompleted: removed %d tasks", len(removed))
	return removed
}
