package responsecache

import "time"

const (
	DefaultTTL            = time.Hour
	DefaultCapacity       = 50
	DefaultMaxQueryLength = 150
)

// Config bounds the cache. Zero fields fall back to the defaults above.
type Config struct {
	TTL            time.Duration
	Capacity       int
	MaxQueryLength int
}

// Entry is a cached answer together with the moment it was written.
type Entry[V any] struct {
	Key        string
	Response   V
	InsertedAt time.Time
}

func (c Config) withDefaults() Config {
	if c.TTL <= 0 {
		c.TTL = DefaultTTL
	}
	if c.Capacity <= 0 {
		c.Capacity = DefaultCapacity
	}
	if c.MaxQueryLength <= 0 {
		c.MaxQueryLength = DefaultMaxQueryLength
	}
	return c
}
