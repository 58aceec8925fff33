package cache

import (
	"context"
	"encoding/json"
	"time"

	"weather-planner/internal/domain/model"
	"weather-planner/pkg/log"
	"weather-planner/pkg/msg"
)

// ResultCache decides freshness of stored source results.
// There is no per-key coordination: concurrent misses may both fetch and the last write wins.
type ResultCache struct {
	store Store
	ttls  TTLs
	now   func() time.Time
}

func NewResultCache(store Store, ttls TTLs) *ResultCache {
	if ttls.Current <= 0 {
		ttls.Current = DefaultTTLs.Current
	}
	if ttls.Forecast <= 0 {
		ttls.Forecast = DefaultTTLs.Forecast
	}
	return &ResultCache{store: store, ttls: ttls, now: time.Now}
}

// WithClock replaces the clock used for freshness checks
func (c *ResultCache) WithClock(now func() time.Time) *ResultCache {
	c.now = now
	return c
}

func (c *ResultCache) TTL(kind Kind) time.Duration {
	return c.ttls.For(kind)
}

func (c *ResultCache) Health(ctx context.Context) model.ComponentHealthStatus {
	return c.store.Health(ctx)
}

// lookup returns the stored payload for key if it is younger than ttl.
// An expired entry is deleted on the way out. Store and decode failures read as a miss.
func (c *ResultCache) lookup(ctx context.Context, key string, ttl time.Duration) (json.RawMessage, bool) {
	entry, found, err := c.store.Load(ctx, key)
	if err != nil {
		log.Warn(msg.GetMessage("cache.load-failed", key, err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	if c.now().Sub(entry.FetchedAt) >= ttl {
		if err := c.store.Delete(ctx, key); err != nil {
			log.Warn(msg.GetMessage("cache.delete-failed", key, err))
		}
		return nil, false
	}
	return entry.Payload, true
}

func (c *ResultCache) save(ctx context.Context, key string, fetchedAt time.Time, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err == nil {
		err = c.store.Save(ctx, key, Entry{FetchedAt: fetchedAt, Payload: payload}, ttl)
	}
	if err != nil {
		log.Warn(msg.GetMessage("cache.store-failed", key, err))
	}
}

// GetOrFetch returns the cached value for key while it is fresh; otherwise it calls fetch,
// stores the result stamped with the current time and returns it. cached reports a hit.
// Fetch errors are returned as they are and nothing is stored.
func GetOrFetch[T any](ctx context.Context, c *ResultCache, key Key, fetch func(ctx context.Context) (T, error)) (value T, cached bool, err error) {
	ttl := c.ttls.For(key.Kind)
	name := key.String()

	if payload, ok := c.lookup(ctx, name, ttl); ok {
		var hit T
		decodeErr := json.Unmarshal(payload, &hit)
		if decodeErr == nil {
			return hit, true, nil
		}
		log.Warn(msg.GetMessage("cache.load-failed", name, decodeErr))
	}

	value, err = fetch(ctx)
	if err != nil {
		var zero T
		return zero, false, err
	}

	c.save(ctx, name, c.now(), value, ttl)
	return value, false, nil
}
