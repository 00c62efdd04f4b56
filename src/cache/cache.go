// Package cache provides a small byte cache with in-memory and Redis
// backends. The auth gate uses it to short-circuit the per-request account
// load; mutations that must take effect immediately (ban/unban, password
// change) delete the entry synchronously.
package cache

import "time"

// Store defines the cache operations
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration)
	Delete(key string)
}

// Config selects and configures a backend
type Config struct {
	Backend    string // "memory" | "redis"
	RedisAddr  string
	RedisDB    int
	DefaultTTL time.Duration
}

// New creates a cache store for the configured backend.
// Unknown backends fall back to memory.
func New(cfg Config) Store {
	if cfg.Backend == "redis" {
		return NewRedis(cfg.RedisAddr, cfg.RedisDB)
	}
	return NewMemory(cfg.DefaultTTL)
}
