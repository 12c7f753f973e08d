package screening

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/riskzero/supplier-registry/internal/domain"
)

const redisKeyPrefix = "screening:"

// RedisCache is a Cache shared across service instances. Like the memory
// cache it sets no TTL; entries live until cleared.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps a connected redis client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get returns the cached report for the key, if any.
func (c *RedisCache) Get(ctx context.Context, key string) (*domain.ScreeningReport, bool, error) {
	payload, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var report domain.ScreeningReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false, err
	}
	return &report, true, nil
}

// Save stores the report under the key with no expiration.
func (c *RedisCache) Save(ctx context.Context, key string, report *domain.ScreeningReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, redisKeyPrefix+key, payload, 0).Err()
}

// Clear removes exactly the entry for the key.
func (c *RedisCache) Clear(ctx context.Context, key string) error {
	return c.client.Del(ctx, redisKeyPrefix+key).Err()
}
