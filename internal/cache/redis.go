package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m-zajac/repopopularity/internal/app"
	"github.com/redis/go-redis/v9"
)

// RedisClient is a subset of redis commands used by RedisStore.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisConfig holds redis connection params.
type RedisConfig struct {
	Host string
	Port int
	DB   int

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// NewRedisClient creates redis client for given config. Doesn't connect.
func NewRedisClient(conf RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", conf.Host, conf.Port),
		DB:           conf.DB,
		DialTimeout:  conf.DialTimeout,
		ReadTimeout:  conf.ReadTimeout,
		WriteTimeout: conf.WriteTimeout,
	})
}

// RedisStore keeps cache entries in redis. Every write sets entry expiration to ttl.
type RedisStore struct {
	client RedisClient
	ttl    time.Duration
}

var _ app.CacheStore = &RedisStore{}

// NewRedisStore creates new RedisStore instance.
func NewRedisStore(client RedisClient, ttl time.Duration) (*RedisStore, error) {
	if ttl < time.Second {
		return nil, errors.New("redis cache ttl must be at least one second")
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
	}, nil
}

// Read returns data saved for given key. Missing key or empty value is not an error, returns nil data.
func (s *RedisStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, app.CacheUnavailableError(err, "redis GET %q", key)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return data, nil
}

// Write stores given data under given key with store's ttl.
func (s *RedisStore) Write(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return app.CacheUnavailableError(err, "redis SET %q", key)
	}

	return nil
}
