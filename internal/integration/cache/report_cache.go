// Package cache provides Redis-backed memoisation of computed reports.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/barbershop/backend/config"
	"github.com/barbershop/backend/internal/application/usecase/report"
)

const (
	keyPrefix  = "barbershop:report"
	versionKey = keyPrefix + ":version"
)

// RedisReportCache stores reports under a data version counter.
// Bumping the counter orphans every entry written under an older version;
// orphans expire through their TTL.
type RedisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisReportCache creates a new Redis report cache.
func NewRedisReportCache(client *redis.Client, ttl time.Duration) *RedisReportCache {
	return &RedisReportCache{
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient connects to the Redis server described by cfg.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis connection established", "addr", opts.Addr, "db", opts.DB)
	return client, nil
}

// Version returns the current data version. A missing counter is version 0.
func (c *RedisReportCache) Version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read report version: %w", err)
	}
	return version, nil
}

// Get returns the report stored for key under version.
func (c *RedisReportCache) Get(ctx context.Context, version int64, key string) (*report.Report, bool, error) {
	data, err := c.client.Get(ctx, entryKey(version, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached report: %w", err)
	}

	var r report.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached report: %w", err)
	}
	return &r, true, nil
}

// Set stores the report for key under version.
func (c *RedisReportCache) Set(ctx context.Context, version int64, key string, r *report.Report) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := c.client.Set(ctx, entryKey(version, key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache report: %w", err)
	}
	return nil
}

// Invalidate bumps the data version.
func (c *RedisReportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		return fmt.Errorf("failed to bump report version: %w", err)
	}
	return nil
}

func entryKey(version int64, key string) string {
	return fmt.Sprintf("%s:v%d:%s", keyPrefix, version, key)
}

// NoopReportCache never stores anything. It is used when Redis is not configured.
type NoopReportCache struct{}

// Version always returns 0.
func (NoopReportCache) Version(context.Context) (int64, error) { return 0, nil }

// Get always misses.
func (NoopReportCache) Get(context.Context, int64, string) (*report.Report, bool, error) {
	return nil, false, nil
}

// Set discards the report.
func (NoopReportCache) Set(context.Context, int64, string, *report.Report) error { return nil }

// Invalidate does nothing.
func (NoopReportCache) Invalidate(context.Context) error { return nil }
