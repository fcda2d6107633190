package cache

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/repopopularity/internal/app"
)

// KVStore provides simple kv data storage
type KVStore interface {
	Get(key string) ([]byte, error)
	Put(key string, data []byte) error
	Delete(key string) error
}

// BoltStore keeps cache entries in a local kv database.
// Expiration is checked on read, expired entries are deleted lazily.
type BoltStore struct {
	store KVStore
	ttl   time.Duration
	now   func() time.Time
}

var _ app.CacheStore = &BoltStore{}

// NewBoltStore creates new BoltStore instance.
func NewBoltStore(store KVStore, ttl time.Duration) (*BoltStore, error) {
	if ttl <= 0 {
		return nil, errors.New("cache ttl must be greater than 0")
	}

	return &BoltStore{
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}, nil
}

// Read returns data saved for given key. Returns nil if there's no valid entry.
func (s *BoltStore) Read(ctx context.Context, key string) ([]byte, error) {
	raw, err := s.store.Get(key)
	if err != nil {
		return nil, app.CacheUnavailableError(err, "reading db key %q", key)
	}
	if raw == nil {
		return nil, nil
	}

	var entry boltEntry
	if err := jsoniter.Unmarshal(raw, &entry); err != nil {
		return nil, app.CacheUnavailableError(err, "unserializing db entry %q", key)
	}
	if !time.Unix(0, entry.Expires).After(s.now()) {
		if err := s.store.Delete(key); err != nil {
			return nil, app.CacheUnavailableError(err, "deleting expired db key %q", key)
		}
		return nil, nil
	}

	return entry.Data, nil
}

// Write stores given data under given key, replacing previous entry.
func (s *BoltStore) Write(ctx context.Context, key string, data []byte) error {
	raw, err := jsoniter.Marshal(boltEntry{
		Expires: s.now().Add(s.ttl).UnixNano(),
		Data:    data,
	})
	if err != nil {
		return app.CacheUnavailableError(err, "serializing db entry %q", key)
	}
	if err := s.store.Put(key, raw); err != nil {
		return app.CacheUnavailableError(err, "writing db key %q", key)
	}

	return nil
}

type boltEntry struct {
	Expires int64
	Data    []byte
}
