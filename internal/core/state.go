package core

import (
	"sync"

	"github.com/soundroom/server/internal/domain"
)

// StateStore holds the latest shared document per (room, kind).
// Writes replace the prior value atomically; last writer wins, no merge.
type StateStore struct {
	mu   sync.RWMutex
	docs map[domain.RoomID]map[domain.StateKind]Document
}

func NewStateStore() *StateStore {
	return &StateStore{docs: make(map[domain.RoomID]map[domain.StateKind]Document)}
}

func (s *StateStore) Put(roomID domain.RoomID, kind domain.StateKind, doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	room, ok := s.docs[roomID]
	if !ok {
		room = make(map[domain.StateKind]Document)
		s.docs[roomID] = room
	}
	room[kind] = doc
}

func (s *StateStore) Get(roomID domain.RoomID, kind domain.StateKind) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[roomID][kind]
	return doc, ok
}

// KindDoc pairs a stored document with its kind for catch-up replay.
type KindDoc struct {
	Kind domain.StateKind
	Doc  Document
}

// Snapshot returns the room's stored documents in fixed kind order, so a
// joining connection always catches up deterministically.
func (s *StateStore) Snapshot(roomID domain.RoomID) []KindDoc {
	s.mu.RLock()
	defer s.mu.RUnlock()
	room, ok := s.docs[roomID]
	if !ok {
		return nil
	}
	out := make([]KindDoc, 0, len(room))
	for _, kind := range domain.Kinds {
		if doc, ok := room[kind]; ok {
			out = append(out, KindDoc{Kind: kind, Doc: doc})
		}
	}
	return out
}

// Drop evicts every document stored under roomID. Called when the last
// member leaves, so abandoned rooms do not accumulate for the process
// lifetime.
func (s *StateStore) Drop(roomID domain.RoomID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, roomID)
}
