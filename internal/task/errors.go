package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrInvalidKind   = errors.New("unknown task kind")
	ErrInvalidTarget = errors.New("slate url is required")
	ErrInvalidCount  = errors.New("count is out of range")
	ErrRateLimited   = errors.New("too many submissions, try again later")
	ErrTaskNotFound  = errors.New("task not found")
	ErrTaskFinished  = errors.New("task already finished")
	ErrClosed        = errors.New("task orchestrator is closed")
)
