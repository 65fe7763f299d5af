// Package runtime owns the in-memory room state shared across handlers.
package runtime

import (
	"log/slog"
	"sync"
	"time"

	"framed-chat/domain"
)

// SessionFactory builds a fresh RoomSession for an unseen room.
type SessionFactory func() *domain.RoomSession

// Registry maps room identifiers to their sessions. It is the only owner of
// RoomSession instances: handlers always go through GetOrCreate, which is the
// at-most-one-creation point under concurrent first joins.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*domain.RoomSession
	factory  SessionFactory
	log      *slog.Logger
}

func NewRegistry(log *slog.Logger) *Registry {
	return NewRegistryWithFactory(log, domain.NewRoomSession)
}

// NewRegistryWithFactory lets tests pin the cadence roll of new sessions.
func NewRegistryWithFactory(log *slog.Logger, factory SessionFactory) *Registry {
	return &Registry{
		sessions: make(map[string]*domain.RoomSession),
		factory:  factory,
		log:      log,
	}
}

// GetOrCreate returns the session for roomID, creating it lazily.
// Idempotent; concurrent calls for the same unseen room yield one session.
func (r *Registry) GetOrCreate(roomID string) *domain.RoomSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	if session, ok := r.sessions[roomID]; ok {
		return session
	}
	session := r.factory()
	r.sessions[roomID] = session
	r.log.Debug("Room session created", "room_id", roomID)
	return session
}

// Len reports how many rooms currently hold a session.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// EvictIdle removes sessions with no activity for longer than ttl and
// returns how many were dropped. Message history is untouched; a returning
// participant simply gets a fresh session with a new cadence.
func (r *Registry) EvictIdle(ttl time.Duration) int {
	cutoff := time.Now().UTC().Add(-ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	evicted := 0
	for roomID, session := range r.sessions {
		if session.IdleSince().Before(cutoff) {
			delete(r.sessions, roomID)
			evicted++
		}
	}
	return evicted
}
