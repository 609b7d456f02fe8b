package cache

import (
	"context"
	"time"

	"meeting-scheduler-api/core/config"
	"meeting-scheduler-api/core/logger"

	"github.com/redis/go-redis/v9"
)

const versionKey = "meetings:version"

// Cache is a thin Redis wrapper for derived-data caching. A Cache built
// without a Redis address is a no-op, so callers never branch on nil.
type Cache struct {
	client *redis.Client
}

func Init(cfg config.RedisConfig) *Cache {
	if cfg.Addr == "" {
		logger.Info("Cache disabled: no Redis address configured")
		return &Cache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Cache disabled: Redis unreachable", "addr", cfg.Addr, "error", err)
		return &Cache{}
	}

	logger.Info("Cache initialized", "addr", cfg.Addr, "db", cfg.DB)
	return &Cache{client: client}
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if !c.Enabled() {
		return nil, false
	}
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("Cache:Get", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if !c.Enabled() {
		return
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		logger.Warn("Cache:Set", "key", key, "error", err)
	}
}

// Version returns the current corpus version. Cached conflict reports embed
// the version in their key, so bumping it invalidates them all at once.
func (c *Cache) Version(ctx context.Context) int64 {
	if !c.Enabled() {
		return 0
	}
	ver, err := c.client.Get(ctx, versionKey).Int64()
	if err != nil && err != redis.Nil {
		logger.Warn("Cache:Version", "error", err)
	}
	return ver
}

// BumpVersion invalidates all version-stamped entries. Called after every
// meeting or participant mutation.
func (c *Cache) BumpVersion(ctx context.Context) {
	if !c.Enabled() {
		return
	}
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		logger.Warn("Cache:BumpVersion", "error", err)
	}
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
