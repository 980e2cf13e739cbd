// Package cache is a redis-backed response cache for the advice
// endpoints. The engine itself stays pure; caching lives strictly at
// the service layer and is keyed by the auction log version, so any
// recorded or undone sale invalidates every derived answer.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

func NewResponseCache(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *ResponseCache {
	return &ResponseCache{client: client, ttl: ttl, logger: logger}
}

// Key builds a cache key for an advice endpoint at a given auction
// version.
func (c *ResponseCache) Key(version uint64, parts ...string) string {
	return fmt.Sprintf("auction-engine:v%d:%s", version, strings.Join(parts, ":"))
}

// Set stores a serialized response.
func (c *ResponseCache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Error("Failed to set cache value")
		return err
	}

	c.logger.WithField("key", key).Debug("Cached response")
	return nil
}

// Get loads a serialized response into dest. A miss is reported as an
// error so callers fall through to recomputation.
func (c *ResponseCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return fmt.Errorf("cache miss")
		}
		c.logger.WithError(err).WithField("key", key).Error("Failed to get cache value")
		return err
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		c.logger.WithError(err).WithField("key", key).Error("Failed to unmarshal cache value")
		return err
	}

	c.logger.WithField("key", key).Debug("Cache hit")
	return nil
}
