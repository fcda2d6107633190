package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/m-zajac/repopopularity/internal/app"
)

// LRUStore keeps cache entries in process memory.
// Least recently used entries are evicted when size is exceeded.
type LRUStore struct {
	entries *lru.Cache
	ttl     time.Duration
	now     func() time.Time
}

var _ app.CacheStore = &LRUStore{}

// NewLRUStore creates new LRUStore instance.
func NewLRUStore(size int, ttl time.Duration) (*LRUStore, error) {
	if size <= 0 {
		return nil, errors.New("cache size must be greater than 0")
	}
	if ttl <= 0 {
		return nil, errors.New("cache ttl must be greater than 0")
	}
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("creating lru cache: %w", err)
	}

	return &LRUStore{
		entries: entries,
		ttl:     ttl,
		now:     time.Now,
	}, nil
}

// Read returns data saved for given key. Returns nil if there's no valid entry.
func (s *LRUStore) Read(ctx context.Context, key string) ([]byte, error) {
	val, ok := s.entries.Get(key)
	if !ok {
		return nil, nil
	}
	entry := val.(lruEntry)
	if !entry.created.Add(s.ttl).After(s.now()) {
		s.entries.Remove(key)
		return nil, nil
	}

	return entry.data, nil
}

// Write stores given data under given key, replacing previous entry.
func (s *LRUStore) Write(ctx context.Context, key string, data []byte) error {
	s.entries.Add(key, lruEntry{
		created: s.now(),
		data:    append([]byte(nil), data...),
	})

	return nil
}

type lruEntry struct {
	created time.Time
	data    []byte
}
