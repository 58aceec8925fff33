package redis

import (
	"context"
	"fmt"
	"time"
)

// Cache stores raw payloads under CacheName::key within the client namespace
type Cache struct {
	client     *Client
	cacheName  string
	defaultTTL time.Duration
}

// NewCache creates a named cache. defaultTTL applies when Set is called with a zero ttl.
func NewCache(client *Client, cacheName string, defaultTTL time.Duration) *Cache {
	return &Cache{client: client, cacheName: cacheName, defaultTTL: defaultTTL}
}

// buildCacheKey constructs the full cache key
func (c *Cache) buildCacheKey(key string) string {
	return c.client.Key(c.cacheName, key)
}

// Get retrieves the payload for key. found is false when it is absent or expired in Redis.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, found, err := c.client.GetBytes(ctx, c.buildCacheKey(key))
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return data, found, nil
}

// Set stores the payload for key with the given ttl
func (c *Cache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	if err := c.client.Set(ctx, c.buildCacheKey(key), data, ttl); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

// Delete removes a value from cache
func (c *Cache) Delete(ctx context.Context, key string) error {
	return c.client.Delete(ctx, c.buildCacheKey(key))
}
