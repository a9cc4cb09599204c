package task

import "time"

// Kind is the type of remote automation job.
type Kind string

const (
	// KindSingle processes one email identified by its Slate URL.
	KindSingle Kind = "single"
	// KindBulk processes the next N emails of the inbox.
	KindBulk Kind = "bulk"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusQueued       Status = "queued"
	StatusInitializing Status = "initializing"
	StatusRunning      Status = "running"
	StatusCompleted    Status = "completed"
	StatusFailed       Status = "failed"
	StatusCancelled    Status = "cancelled"
)

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ParseStatus maps a backend status string. ok is false for unknown values.
func ParseStatus(raw string) (Status, bool) {
	switch s := Status(raw); s {
	case StatusQueued, StatusInitializing, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return s, true
	default:
		return "", false
	}
}

// ResultDetail is the outcome of one email inside a bulk job.
type ResultDetail struct {
	Success        bool
	Error          string
	ProcessingTime string
}

// Results holds what the backend reported for a job. Single-email fields and
// bulk fields share the record; each job kind fills its own.
type Results struct {
	Success           *bool
	EmailContent      string
	GeneratedResponse string
	ProcessingTime    string

	Processed   int
	Total       int
	Successful  int
	Failed      int
	SuccessRate string
	Details     []ResultDetail
}

// Task is the local record of a submitted job. Records are replaced whole,
// never mutated in place.
type Task struct {
	ID          string
	Kind        Kind
	Status      Status
	Progress    string
	Duration    string
	StartedAt   time.Time
	EndedAt     *time.Time
	Results     Results
	Error       string
	Screenshots []string
	SubmittedBy string
}

// Clone returns a copy sharing no slices or pointers with t.
func (t Task) Clone() Task {
	out := t
	if t.EndedAt != nil {
		ended := *t.EndedAt
		out.EndedAt = &ended
	}
	if t.Results.Success != nil {
		success := *t.Results.Success
		out.Results.Success = &success
	}
	out.Results.Details = append([]ResultDetail(nil), t.Results.Details...)
	out.Screenshots = append([]string(nil), t.Screenshots...)
	return out
}

// SubmitInput describes a job to submit. SlateURL is used by single jobs,
// Count by bulk jobs.
type SubmitInput struct {
	Kind     Kind
	SlateURL string
	Count    int
}

// EventType names what happened to a task.
type EventType string

const (
	EventRegistered EventType = "registered"
	EventUpdated    EventType = "updated"
	EventCancelled  EventType = "cancelled"
	EventRemoved    EventType = "removed"
)

// Event is published to observers on every change of a tracked task.
type Event struct {
	Type EventType
	Task Task
}
