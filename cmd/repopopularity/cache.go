package main

import (
	"context"
	"fmt"
	"time"

	"github.com/m-zajac/repopopularity/internal/app"
	"github.com/m-zajac/repopopularity/internal/cache"
	"github.com/m-zajac/repopopularity/internal/database"
	"github.com/sirupsen/logrus"
)

// newCacheStore builds cache backend selected in config.
// Returned close func releases backend resources and is never nil.
func newCacheStore(ctx context.Context, conf Config, l logrus.FieldLogger) (app.CacheStore, func() error, error) {
	switch conf.CacheBackend {
	case CacheBackendRedis:
		client := cache.NewRedisClient(cache.RedisConfig{
			Host:         conf.RedisHost,
			Port:         conf.RedisPort,
			DB:           conf.RedisDB,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			// Requests will fail with cache errors until redis is reachable.
			l.Warnf("redis at %s:%d is not reachable: %v", conf.RedisHost, conf.RedisPort, err)
		}
		store, err := cache.NewRedisStore(client, conf.CacheTTL())
		if err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("creating redis store: %w", err)
		}
		return store, client.Close, nil

	case CacheBackendMemory:
		store, err := cache.NewLRUStore(conf.MemoryCacheSize, conf.CacheTTL())
		if err != nil {
			return nil, nil, fmt.Errorf("creating memory store: %w", err)
		}
		return store, func() error { return nil }, nil

	case CacheBackendBolt:
		kvStore, err := database.NewBoltKVStore(conf.BoltDBPath, conf.BoltDBBucket)
		if err != nil {
			return nil, nil, fmt.Errorf("creating bolt kv store: %w", err)
		}
		store, err := cache.NewBoltStore(kvStore, conf.CacheTTL())
		if err != nil {
			_ = kvStore.Close()
			return nil, nil, fmt.Errorf("creating bolt store: %w", err)
		}
		return store, kvStore.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", conf.CacheBackend)
	}
}
