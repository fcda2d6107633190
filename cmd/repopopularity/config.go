package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/m-zajac/repopopularity/internal/app"
)

// Cache backends.
const (
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
	CacheBackendBolt   = "bolt"
)

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `envconfig:"HTTP_SERVER_ADDRESS" default:"0.0.0.0:8000"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `envconfig:"HTTP_PROFILE_SERVER_ADDRESS" default:""`

	// HTTPHandlerTimeout - timeout for popularity handlers execution
	HTTPHandlerTimeout time.Duration `envconfig:"HTTP_HANDLER_TIMEOUT" default:"60s"`

	// GRPCServerAddress - listen address for grpc server. If empty, grpc server is disabled
	GRPCServerAddress string `envconfig:"GRPC_SERVER_ADDRESS" default:""`

	// GithubAPIURL - address for rest api with protocol
	GithubAPIURL string `envconfig:"GITHUB_API_URL" default:"https://api.github.com"`

	// GithubAPIAccessToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIAccessToken string `envconfig:"GITHUB_API_ACCESS_TOKEN" default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls
	GithubAPIRateLimit float64 `envconfig:"GITHUB_API_RATE_LIMIT" default:"10"`

	// GithubTimeout - timeout for a single github api call
	GithubTimeout time.Duration `envconfig:"GITHUB_TIMEOUT" default:"15s"`

	StarMultiplier   int `envconfig:"STAR_MULTIPLIER" default:"1"`
	ForkMultiplier   int `envconfig:"FORK_MULTIPLIER" default:"2"`
	PopularThreshold int `envconfig:"POPULAR_THRESHOLD" default:"500"`

	// CacheBackend - one of: redis, memory, bolt
	CacheBackend string `envconfig:"CACHE_BACKEND" default:"redis"`

	RedisHost string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisDB   int    `envconfig:"REDIS_DB" default:"0"`

	// CacheTTLSeconds - maximum lifetime for cache entries in seconds, used by every backend
	CacheTTLSeconds int `envconfig:"REDIS_KEY_TTL" default:"600"`

	// MemoryCacheSize - maximum number of elements in memory cache
	MemoryCacheSize int `envconfig:"MEMORY_CACHE_SIZE" default:"10000"`

	// BoltDBPath - filepath for bolt db data
	BoltDBPath string `envconfig:"BOLT_DB_PATH" default:"./popularity.data"`

	// BoltDBBucket - bolt db bucket name
	BoltDBBucket string `envconfig:"BOLT_DB_BUCKET" default:"popularity"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// ScoringConfig returns scoring part of the config.
func (c Config) ScoringConfig() app.ScoringConfig {
	return app.ScoringConfig{
		StarMultiplier:   c.StarMultiplier,
		ForkMultiplier:   c.ForkMultiplier,
		PopularThreshold: c.PopularThreshold,
	}
}

// CacheTTL returns cache entries lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// Validate checks if config values can be used to build the app.
func (c Config) Validate() error {
	if err := c.ScoringConfig().Validate(); err != nil {
		return err
	}
	if c.CacheTTLSeconds <= 0 {
		return errors.New("cache ttl must be greater than 0")
	}
	if c.HTTPHandlerTimeout <= 0 {
		return errors.New("http handler timeout must be greater than 0")
	}
	if c.GithubAPIRateLimit <= 0 {
		return errors.New("github api rate limit must be greater than 0")
	}

	switch c.CacheBackend {
	case CacheBackendRedis:
	case CacheBackendMemory:
		if c.MemoryCacheSize <= 0 {
			return errors.New("memory cache size must be greater than 0")
		}
	case CacheBackendBolt:
		if c.BoltDBPath == "" || c.BoltDBBucket == "" {
			return errors.New("bolt db path and bucket are required")
		}
	default:
		return fmt.Errorf("unknown cache backend %q", c.CacheBackend)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return nil
}
