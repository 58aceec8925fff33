package cache

import (
	"context"
	"encoding/json"
	"time"

	"weather-planner/internal/domain/model"
)

// Entry is a stored result with the instant it was fetched
type Entry struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Payload   json.RawMessage `json:"payload"`
}

// Store persists entries. Freshness is decided by ResultCache, not the store;
// ttl is only a hint for backends that can expire keys on their own.
type Store interface {
	Load(ctx context.Context, key string) (*Entry, bool, error)
	Save(ctx context.Context, key string, entry Entry, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Health(ctx context.Context) model.ComponentHealthStatus
}
