package entity

import (
	"sync"
	"time"
)

// Role of a chat turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Turn struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

type TrailEntry struct {
	At      time.Time `json:"at"`
	Message string    `json:"message"`
}

// Session is the per-user context carried through every operation.
// It is safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	history  []Turn
	trail    []TrailEntry
	maxTrail int
}

func NewSession(id string, now time.Time, maxTrail int) *Session {
	if maxTrail <= 0 {
		maxTrail = 200
	}
	return &Session{ID: id, CreatedAt: now, lastSeen: now, maxTrail: maxTrail}
}

// Touch marks the session as used at now
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Record appends to the trail, dropping the oldest entries beyond the limit
func (s *Session) Record(now time.Time, message string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trail = append(s.trail, TrailEntry{At: now, Message: message})
	if overflow := len(s.trail) - s.maxTrail; overflow > 0 {
		s.trail = append([]TrailEntry(nil), s.trail[overflow:]...)
	}
}

func (s *Session) AddTurn(now time.Time, role Role, content string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, Turn{Role: role, Content: content, At: now})
}

func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Turn(nil), s.history...)
}

func (s *Session) Trail() []TrailEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TrailEntry(nil), s.trail...)
}
