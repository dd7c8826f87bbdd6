package core

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/soundroom/server/internal/domain"
)

type sessionEntry struct {
	Room   domain.RoomID
	Conn   SignalConnection
	Cancel context.CancelFunc
}

// Registry is the single source of truth for which connections exist and
// which room each one is in. A connection belongs to zero or one room.
type Registry struct {
	mu       sync.RWMutex
	sessions map[SessionID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[SessionID]*sessionEntry)}
}

// Register adds a connection with no room yet.
func (r *Registry) Register(sid SessionID, conn SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sid] = &sessionEntry{Conn: conn, Cancel: cancel}
	log.Info().Str("module", "core.registry").Str("sid", string(sid)).Msg("registered session")
}

// Bind sets or overwrites the connection's room. Binding the same room
// twice is a functional no-op.
func (r *Registry) Bind(sid SessionID, roomID domain.RoomID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.sessions[sid]
	if !ok {
		return false
	}
	entry.Room = roomID
	log.Info().Str("module", "core.registry").Str("sid", string(sid)).Str("room", string(roomID)).Msg("bound to room")
	return true
}

// Unregister removes the connection. Safe to call repeatedly and for
// sessions that were never registered; close events can race.
func (r *Registry) Unregister(sid SessionID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sid]; !ok {
		return
	}
	delete(r.sessions, sid)
	log.Info().Str("module", "core.registry").Str("sid", string(sid)).Msg("unregistered session")
}

// RoomOf reports the room the connection is bound to, if any.
func (r *Registry) RoomOf(sid SessionID) (domain.RoomID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.sessions[sid]
	if !ok || entry.Room == "" {
		return "", false
	}
	return entry.Room, true
}

// Conn returns the transport endpoint for a session.
func (r *Registry) Conn(sid SessionID) (SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.sessions[sid]; ok {
		return e.Conn, true
	}
	return nil, false
}

// MemberSnapshot is a point-in-time view of one room member.
type MemberSnapshot struct {
	SID  SessionID
	Conn SignalConnection
}

// MembersOf returns a materialized snapshot of every connection currently
// bound to roomID. The caller decides about sender exclusion.
func (r *Registry) MembersOf(roomID domain.RoomID) []MemberSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]MemberSnapshot, 0, len(r.sessions))
	for sid, e := range r.sessions {
		if e.Room == roomID {
			out = append(out, MemberSnapshot{SID: sid, Conn: e.Conn})
		}
	}
	return out
}

// MemberCount reports how many connections are bound to roomID.
func (r *Registry) MemberCount(roomID domain.RoomID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, e := range r.sessions {
		if e.Room == roomID {
			n++
		}
	}
	return n
}

// Cancel fires the session's cancel func, tearing down its pumps.
// The read loop's exit path performs the actual unregister.
func (r *Registry) Cancel(sid SessionID) bool {
	r.mu.RLock()
	e, ok := r.sessions[sid]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	log.Info().Str("module", "core.registry").Str("sid", string(sid)).Msg("canceled session")
	return true
}
