package cache

import (
	"context"
	"time"

	rdb "github.com/redis/go-redis/v9"
)

// Redis is a distributed cache backend
type Redis struct {
	c *rdb.Client
}

// NewRedis creates a Redis-backed store
func NewRedis(addr string, db int) *Redis {
	return &Redis{c: rdb.NewClient(&rdb.Options{Addr: addr, DB: db})}
}

func (r *Redis) Get(key string) ([]byte, bool) {
	b, err := r.c.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (r *Redis) Set(key string, value []byte, ttl time.Duration) {
	_ = r.c.Set(context.Background(), key, value, ttl).Err()
}

func (r *Redis) Delete(key string) {
	_ = r.c.Del(context.Background(), key).Err()
}

var _ Store = (*Redis)(nil)
