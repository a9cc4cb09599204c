package usecase

import (
	"time"

	"enrollment-assistant/internal/chat"
	"enrollment-assistant/internal/conversation"
	"enrollment-assistant/internal/responsecache"
	"enrollment-assistant/pkg/backend"
	pkgLog "enrollment-assistant/pkg/log"
)

// DefaultTimeout bounds a single backend chat request.
const DefaultTimeout = 30 * time.Second

type implUseCase struct {
	l       pkgLog.Logger
	store   conversation.Store
	backend *backend.Client
	caches  map[conversation.Surface]*responsecache.Cache[chat.Answer]
	timeout time.Duration
}

// New creates the chat UseCase. Every surface gets its own response cache.
func New(
	l pkgLog.Logger,
	store conversation.Store,
	backendClient *backend.Client,
	cacheCfg responsecache.Config,
	timeout time.Duration,
) *implUseCase {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	caches := make(map[conversation.Surface]*responsecache.Cache[chat.Answer], len(conversation.Surfaces))
	for _, s := range conversation.Surfaces {
		caches[s] = responsecache.New[chat.Answer](cacheCfg)
	}

	return &implUseCase{
		l:       l,
		store:   store,
		backend: backendClient,
		caches:  caches,
		timeout: timeout,
	}
}

var _ chat.UseCase = (*implUseCase)(nil)
