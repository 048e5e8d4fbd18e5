// Package cache wraps the redis client used for the sign-out token
// blacklist.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"

	"daycare/backend/internal/pkg/config"
)

const blacklistPrefix = "token:blacklist:"

type Cache struct {
	rdb *goredis.Client
}

func NewCache(cfg *config.Config) (*Cache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, "connecting to redis")
	}

	return &Cache{rdb: rdb}, nil
}

// BlacklistToken stores the token until its own expiry. The TTL keeps
// the blacklist from growing unbounded.
func (c *Cache) BlacklistToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.rdb.Set(ctx, blacklistPrefix+token, "1", ttl).Err()
}

func (c *Cache) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.rdb.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *Cache) Close() error {
	return c.rdb.Close()
}
