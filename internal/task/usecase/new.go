package usecase

import (
	"context"
	"sync"
	"time"

	"enrollment-assistant/internal/task"
	"enrollment-assistant/pkg/backend"
	pkgLog "enrollment-assistant/pkg/log"
)

const (
	DefaultSingleInterval   = 3 * time.Second
	DefaultBulkInterval     = 5 * time.Second
	DefaultMaxBulkCount     = 20
	DefaultSubmitRatePerMin = 30
	DefaultCleanupTimeout   = 10 * time.Second
)

// Config tunes polling and submission limits. Zero values use the defaults.
type Config struct {
	SingleInterval   time.Duration
	BulkInterval     time.Duration
	MaxBulkCount     int
	SubmitRatePerMin int
	InboxURL         string
	CleanupTimeout   time.Duration
}

func (c Config) withDefaults() Config {
	if c.SingleInterval <= 0 {
		c.SingleInterval = DefaultSingleInterval
	}
	if c.BulkInterval <= 0 {
		c.BulkInterval = DefaultBulkInterval
	}
	if c.MaxBulkCount <= 0 {
		c.MaxBulkCount = DefaultMaxBulkCount
	}
	if c.SubmitRatePerMin <= 0 {
		c.SubmitRatePerMin = DefaultSubmitRatePerMin
	}
	if c.CleanupTimeout <= 0 {
		c.CleanupTimeout = DefaultCleanupTimeout
	}
	return c
}

// tracked is a task record plus the handle that stops its poll loop.
type tracked struct {
	task     task.Task
	stopPoll context.CancelFunc
}

type implUseCase struct {
	l       pkgLog.Logger
	backend *backend.Client
	cfg     Config
	limiter *rateLimiter
	now     func() time.Time

	mu     sync.Mutex
	tasks  map[string]*tracked
	closed bool

	subsMu  sync.Mutex
	subs    map[int]chan task.Event
	nextSub int

	root    context.Context
	stopAll context.CancelFunc
	pollers sync.WaitGroup
	remote  sync.WaitGroup
}

// New creates the task orchestrator.
func New(l pkgLog.Logger, backendClient *backend.Client, cfg Config) *implUseCase {
	cfg = cfg.withDefaults()
	root, stopAll := context.WithCancel(context.Background())

	return &implUseCase{
		l:       l,
		backend: backendClient,
		cfg:     cfg,
		limiter: newRateLimiter(cfg.SubmitRatePerMin),
		now:     time.Now,
		tasks:   make(map[string]*tracked),
		subs:    make(map[int]chan task.Event),
		root:    root,
		stopAll: stopAll,
	}
}

var _ task.UseCase = (*implUseCase)(nil)
