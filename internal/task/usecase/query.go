package usecase

import (
	"context"
	"sort"

	"enrollment-assistant/internal/task"
)

func (uc *implUseCase) Get(ctx context.Context, id string) (task.Task, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	entry, ok := uc.tasks[id]
	if !ok {
		return task.Task{}, task.ErrTaskNotFound
	}
	return entry.task.Clone(), nil
}

func (uc *implUseCase) ListActive(ctx context.Context) []task.Task {
	uc.mu.Lock()
	out := make([]task.Task, 0, len(uc.tasks))
	for _, entry := range uc.tasks {
		out = append(out, entry.task.Clone())
	}
	uc.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}
