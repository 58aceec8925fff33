package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weather-planner/internal/domain/model"
	"weather-planner/pkg/redis"
)

const healthTimeout = 2 * time.Second

// redisStoreImpl keeps entries as JSON in Redis so replicas share one cache
type redisStoreImpl struct {
	client *redis.Client
	cache  *redis.Cache
}

// NewRedisStore stores entries under {namespace}::weather-cache::{key}.
// Redis expiry is set to the TTL so stale keys do not pile up.
func NewRedisStore(client *redis.Client) Store {
	return &redisStoreImpl{
		client: client,
		cache:  redis.NewCache(client, "weather-cache", DefaultTTLs.Forecast),
	}
}

func (s *redisStoreImpl) Load(ctx context.Context, key string) (*Entry, bool, error) {
	data, found, err := s.cache.Get(ctx, key)
	if err != nil || !found {
		return nil, false, err
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("failed to decode cache entry %s: %w", key, err)
	}
	return &entry, true, nil
}

func (s *redisStoreImpl) Save(ctx context.Context, key string, entry Entry, ttl time.Duration) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to encode cache entry %s: %w", key, err)
	}
	return s.cache.Set(ctx, key, data, ttl)
}

func (s *redisStoreImpl) Delete(ctx context.Context, key string) error {
	return s.cache.Delete(ctx, key)
}

func (s *redisStoreImpl) Health(ctx context.Context) model.ComponentHealthStatus {
	check := s.client.HealthCheck(ctx, healthTimeout)
	details := check.Details
	details["backend"] = "redis"

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
