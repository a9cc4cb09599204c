package task

import (
	"context"

	"enrollment-assistant/internal/model"
)

// UseCase submits remote jobs and tracks them until they finish.
type UseCase interface {
	// Submit validates and submits a job, then polls it in the background.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (Task, error)

	// Get returns a snapshot of one tracked task.
	Get(ctx context.Context, id string) (Task, error)

	// ListActive returns every tracked task ordered by start time.
	ListActive(ctx context.Context) []Task

	// Cancel stops polling and marks the task cancelled, whatever the backend answers.
	Cancel(ctx context.Context, id string) (Task, error)

	// ClearCompleted drops terminal tasks and returns them. Running tasks stay.
	ClearCompleted(ctx context.Context) []Task

	// Subscribe registers an observer. The returned func unregisters it and
	// closes the channel.
	Subscribe(buffer int) (<-chan Event, func())

	// Close stops every poll loop and waits for them to return.
	Close()
}
