package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/soundroom/server/internal/domain"
)

// Memory is the redis-less Store used in tests and single-node dev runs.
type Memory struct {
	mu           sync.RWMutex
	participants map[int]*domain.Participant
	nextID       int
}

func NewMemory() *Memory {
	return &Memory{
		participants: make(map[int]*domain.Participant),
		nextID:       1,
	}
}

func (m *Memory) Create(_ context.Context, p *domain.Participant) (*domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	cp.ID = m.nextID
	m.nextID++
	m.participants[cp.ID] = &cp
	return &cp, nil
}

func (m *Memory) Get(_ context.Context, id int) (*domain.Participant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.participants[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *Memory) ByRoom(_ context.Context, roomID domain.RoomID) ([]*domain.Participant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*domain.Participant, 0)
	for _, p := range m.participants {
		if p.RoomID == roomID && p.IsConnected {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) SetConnected(_ context.Context, id int, connected bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.participants[id]
	if !ok {
		return ErrNotFound
	}
	p.IsConnected = connected
	return nil
}

func (m *Memory) SetMuted(_ context.Context, id int, muted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.participants[id]
	if !ok {
		return ErrNotFound
	}
	p.IsMuted = muted
	return nil
}

func (m *Memory) Remove(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.participants, id)
	return nil
}
