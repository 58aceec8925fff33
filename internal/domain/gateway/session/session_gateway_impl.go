package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"weather-planner/internal/domain/entity"
)

const maxIDLength = 64

type memoryGatewayImpl struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
	idleTTL  time.Duration
	maxTrail int
	now      func() time.Time
}

// NewMemoryGateway keeps sessions in process memory
func NewMemoryGateway(idleTTL time.Duration, maxTrail int) Gateway {
	return newMemoryGateway(idleTTL, maxTrail, time.Now)
}

func newMemoryGateway(idleTTL time.Duration, maxTrail int, now func() time.Time) *memoryGatewayImpl {
	if idleTTL <= 0 {
		idleTTL = time.Hour
	}
	return &memoryGatewayImpl{
		sessions: make(map[string]*entity.Session),
		idleTTL:  idleTTL,
		maxTrail: maxTrail,
		now:      now,
	}
}

func (g *memoryGatewayImpl) expired(session *entity.Session, now time.Time) bool {
	return now.Sub(session.LastSeen()) > g.idleTTL
}

func (g *memoryGatewayImpl) Get(id string) (*entity.Session, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	session, ok := g.sessions[id]
	if !ok {
		return nil, false
	}
	now := g.now()
	if g.expired(session, now) {
		delete(g.sessions, id)
		return nil, false
	}
	session.Touch(now)
	return session, true
}

func (g *memoryGatewayImpl) GetOrCreate(id string) (*entity.Session, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if session, ok := g.sessions[id]; ok && !g.expired(session, now) {
		session.Touch(now)
		return session, false
	}

	if id == "" || len(id) > maxIDLength {
		id = uuid.NewString()
	}
	session := entity.NewSession(id, now, g.maxTrail)
	g.sessions[id] = session
	return session, true
}

func (g *memoryGatewayImpl) Delete(id string) {
	g.mu.Lock()
	delete(g.sessions, id)
	g.mu.Unlock()
}

func (g *memoryGatewayImpl) Sweep() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	removed := 0
	for id, session := range g.sessions {
		if g.expired(session, now) {
			delete(g.sessions, id)
			removed++
		}
	}
	return removed
}

func (g *memoryGatewayImpl) Count() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sessions)
}
