package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/biaslens/biaslens/internal/core"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisCache is a Redis implementation of the CacheRepository
// interface. Expiry is delegated to Redis key TTLs, so Cleanup is a
// no-op
type RedisCache struct {
	client *redis.Client
	logger *zap.Logger
}

// redisEntry is the stored JSON shape of a cache entry
type redisEntry struct {
	Model    string    `json:"model"`
	Label    string    `json:"label"`
	Score    float64   `json:"score"`
	LastSeen time.Time `json:"last_seen"`
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(addr string, db int, logger *zap.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{
		client: client,
		logger: logger,
	}, nil
}

// Get retrieves a cached entry for a model/text pair
func (c *RedisCache) Get(ctx context.Context, model string, text string) (*core.CacheEntry, error) {
	data, err := c.client.Get(ctx, "classification:"+entryKey(model, text)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query cache: %w", err)
	}

	var stored redisEntry
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, fmt.Errorf("failed to decode cache entry: %w", err)
	}

	return &core.CacheEntry{
		Model:    model,
		Text:     text,
		Label:    stored.Label,
		Score:    stored.Score,
		LastSeen: stored.LastSeen,
	}, nil
}

// Set stores a cache entry with a TTL derived from its expiry time
func (c *RedisCache) Set(ctx context.Context, entry *core.CacheEntry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(redisEntry{
		Model:    entry.Model,
		Label:    entry.Label,
		Score:    entry.Score,
		LastSeen: entry.LastSeen,
	})
	if err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	return c.client.Set(ctx, "classification:"+entryKey(entry.Model, entry.Text), data, ttl).Err()
}

// Delete removes a cache entry
func (c *RedisCache) Delete(ctx context.Context, model string, text string) error {
	return c.client.Del(ctx, "classification:"+entryKey(model, text)).Err()
}

// Cleanup is a no-op, Redis expires keys itself
func (c *RedisCache) Cleanup(ctx context.Context) error {
	return nil
}

// Stop closes the Redis connection
func (c *RedisCache) Stop() {
	if err := c.client.Close(); err != nil {
		c.logger.Error("Failed to close Redis client", zap.Error(err))
	}
}
