package session

import "weather-planner/internal/domain/entity"

// Gateway keeps sessions between requests
type Gateway interface {
	// Get returns a live session. Expired sessions are not returned.
	Get(id string) (*entity.Session, bool)

	// GetOrCreate returns the live session for id or starts a new one.
	// An empty id gets a generated one.
	GetOrCreate(id string) (session *entity.Session, created bool)

	Delete(id string)

	// Sweep drops every session idle for longer than the idle TTL
	Sweep() int

	Count() int
}
