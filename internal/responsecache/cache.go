package responsecache

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// Cache maps normalized queries to previously fetched answers.
//
// Reads use Peek, so the underlying list stays in insertion order and capacity
// eviction always drops the entry with the oldest InsertedAt.
type Cache[V any] struct {
	mu      sync.Mutex
	cfg     Config
	entries *simplelru.LRU[string, Entry[V]]
	now     func() time.Time
}

// New creates a cache bounded by cfg.
func New[V any](cfg Config) *Cache[V] {
	cfg = cfg.withDefaults()
	entries, err := simplelru.NewLRU[string, Entry[V]](cfg.Capacity, nil)
	if err != nil {
		// Capacity is always positive after withDefaults.
		panic(err)
	}
	return &Cache[V]{
		cfg:     cfg,
		entries: entries,
		now:     time.Now,
	}
}

// SetClock overrides the time source, used by tests.
func (c *Cache[V]) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// IsCacheable reports whether an answer to query may be reused for anyone
// within the TTL window.
func (c *Cache[V]) IsCacheable(query string) bool {
	return isCacheable(query, c.cfg.MaxQueryLength)
}

// Lookup returns the unexpired answer stored for query. Expired entries are
// removed on the way out.
func (c *Cache[V]) Lookup(query string) (V, bool) {
	var zero V
	key := NormalizeKey(query)
	if key == "" {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries.Peek(key)
	if !ok {
		return zero, false
	}
	if c.now().Sub(entry.InsertedAt) >= c.cfg.TTL {
		c.entries.Remove(key)
		return zero, false
	}
	return entry.Response, true
}

// Store writes response for query when the request carried no prior turns and
// the query is cacheable. It reports whether an entry was written.
func (c *Cache[V]) Store(query string, response V, zeroContext bool) bool {
	if !zeroContext || !c.IsCacheable(query) {
		return false
	}
	key := NormalizeKey(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Re-adding an existing key moves it to the newest position, matching its
	// refreshed InsertedAt.
	c.entries.Add(key, Entry[V]{Key: key, Response: response, InsertedAt: c.now()})
	return true
}

// Len returns the number of stored entries, expired ones included.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
}
