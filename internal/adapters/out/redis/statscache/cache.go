// Package statscache provides a Redis-backed cache for the order statistics
// query. Statistics tolerate short staleness, so responses are kept under a
// small TTL and every cache failure degrades to a database read.
package statscache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how stale a cached statistics response may get.
const DefaultTTL = 30 * time.Second

// RedisStatsCache implements queries.StatsCache on a Redis client.
// All operations are best effort: errors are logged and swallowed, never
// surfaced to the query handler.
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisStatsCache creates a cache with the given TTL; a non-positive TTL
// falls back to DefaultTTL.
func NewRedisStatsCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisStatsCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStatsCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached response for the period, if present and decodable.
func (c *RedisStatsCache) Get(
	ctx context.Context,
	period queries.Period,
) (queries.GetOrderStatsQueryResponse, bool) {
	payload, err := c.client.Get(ctx, c.key(period)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WarnContext(ctx, "stats cache read failed", "period", period.String(), "error", err)
		}
		return queries.GetOrderStatsQueryResponse{}, false
	}

	var response queries.GetOrderStatsQueryResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		c.logger.WarnContext(ctx, "stats cache entry is corrupt", "period", period.String(), "error", err)
		return queries.GetOrderStatsQueryResponse{}, false
	}

	return response, true
}

// Set stores the response for the period under the cache TTL.
func (c *RedisStatsCache) Set(
	ctx context.Context,
	period queries.Period,
	response queries.GetOrderStatsQueryResponse,
) {
	payload, err := json.Marshal(response)
	if err != nil {
		c.logger.WarnContext(ctx, "stats cache encode failed", "period", period.String(), "error", err)
		return
	}

	if err := c.client.Set(ctx, c.key(period), payload, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "stats cache write failed", "period", period.String(), "error", err)
	}
}

func (c *RedisStatsCache) key(period queries.Period) string {
	return "order_stats:" + period.String()
}
