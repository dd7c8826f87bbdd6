package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundroom/server/internal/domain"
)

type nopConn struct{}

func (nopConn) TrySend(Frame) error { return nil }
func (nopConn) Close()              {}

func TestRegistry_BindAndMembers(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*Registry)
		room        domain.RoomID
		wantMembers int
	}{
		{
			name: "two of three in same room",
			setup: func(r *Registry) {
				r.Register("a", nopConn{}, nil)
				r.Register("b", nopConn{}, nil)
				r.Register("c", nopConn{}, nil)
				r.Bind("a", "r1")
				r.Bind("b", "r1")
				r.Bind("c", "r2")
			},
			room:        "r1",
			wantMembers: 2,
		},
		{
			name: "unbound sessions are not members",
			setup: func(r *Registry) {
				r.Register("a", nopConn{}, nil)
			},
			room:        "r1",
			wantMembers: 0,
		},
		{
			name: "rebind moves the session",
			setup: func(r *Registry) {
				r.Register("a", nopConn{}, nil)
				r.Bind("a", "r1")
				r.Bind("a", "r2")
			},
			room:        "r1",
			wantMembers: 0,
		},
		{
			name: "double bind counts once",
			setup: func(r *Registry) {
				r.Register("a", nopConn{}, nil)
				r.Bind("a", "r1")
				r.Bind("a", "r1")
			},
			room:        "r1",
			wantMembers: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			tt.setup(r)
			assert.Len(t, r.MembersOf(tt.room), tt.wantMembers)
			assert.Equal(t, tt.wantMembers, r.MemberCount(tt.room))
		})
	}
}

func TestRegistry_RoomOf(t *testing.T) {
	r := NewRegistry()
	r.Register("a", nopConn{}, nil)

	_, ok := r.RoomOf("a")
	require.False(t, ok, "unbound session has no room")

	require.True(t, r.Bind("a", "r1"))
	room, ok := r.RoomOf("a")
	require.True(t, ok)
	assert.Equal(t, domain.RoomID("r1"), room)

	_, ok = r.RoomOf("ghost")
	assert.False(t, ok)
}

func TestRegistry_BindUnknownSession(t *testing.T) {
	r := NewRegistry()
	assert.False(t, r.Bind("ghost", "r1"))
}

func TestRegistry_UnregisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Register("a", nopConn{}, nil)
	r.Bind("a", "r1")

	r.Unregister("a")
	r.Unregister("a")
	r.Unregister("never-registered")

	assert.Empty(t, r.MembersOf("r1"))
	_, ok := r.Conn("a")
	assert.False(t, ok)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sid := SessionID(rune('a' + i%26))
			r.Register(sid, nopConn{}, nil)
			r.Bind(sid, "r1")
			r.MembersOf("r1")
			r.Unregister(sid)
		}(i)
	}
	wg.Wait()
	assert.Empty(t, r.MembersOf("r1"))
}
