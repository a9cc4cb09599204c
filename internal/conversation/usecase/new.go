package usecase

import (
	"sync"
	"time"

	"enrollment-assistant/internal/conversation"
	"enrollment-assistant/internal/conversation/repository"
	pkgLog "enrollment-assistant/pkg/log"
)

const defaultPurgeTimeout = 10 * time.Second

type implStore struct {
	l      pkgLog.Logger
	repo   repository.Repository
	purger conversation.HistoryPurger

	mu   sync.Mutex
	live map[conversation.Surface]*conversation.Conversation

	purges       sync.WaitGroup
	purgeTimeout time.Duration
	now          func() time.Time
}

// New creates the conversation store. purger may be nil, in which case
// clearing never contacts the backend.
func New(l pkgLog.Logger, repo repository.Repository, purger conversation.HistoryPurger) *implStore {
	return &implStore{
		l:            l,
		repo:         repo,
		purger:       purger,
		live:         make(map[conversation.Surface]*conversation.Conversation),
		purgeTimeout: defaultPurgeTimeout,
		now:          time.Now,
	}
}

// Wait blocks until every background history purge has finished.
func (s *implStore) Wait() {
	s.purges.Wait()
}

var _ conversation.Store = (*implStore)(nil)
