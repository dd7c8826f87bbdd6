package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundroom/server/internal/domain"
)

func newParticipant(t *testing.T, nick string, room domain.RoomID) *domain.Participant {
	t.Helper()
	p, err := domain.NewParticipant(nick, room)
	require.NoError(t, err)
	return p
}

func TestMemory_CreateAssignsIDs(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	p1, err := m.Create(ctx, newParticipant(t, "ada", "r1"))
	require.NoError(t, err)
	p2, err := m.Create(ctx, newParticipant(t, "bob", "r1"))
	require.NoError(t, err)

	assert.Equal(t, 1, p1.ID)
	assert.Equal(t, 2, p2.ID)
	assert.True(t, p1.IsConnected)
}

func TestMemory_ByRoomFiltersDisconnected(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	p1, _ := m.Create(ctx, newParticipant(t, "ada", "r1"))
	m.Create(ctx, newParticipant(t, "bob", "r1"))
	m.Create(ctx, newParticipant(t, "eve", "r2"))

	require.NoError(t, m.SetConnected(ctx, p1.ID, false))

	got, err := m.ByRoom(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bob", got[0].Nickname)
}

func TestMemory_MuteAndRemove(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	p, _ := m.Create(ctx, newParticipant(t, "ada", "r1"))

	require.NoError(t, m.SetMuted(ctx, p.ID, true))
	got, err := m.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsMuted)

	require.NoError(t, m.Remove(ctx, p.ID))
	_, err = m.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, m.SetMuted(ctx, p.ID, false), ErrNotFound)
}

func TestMemory_GetReturnsCopy(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	p, _ := m.Create(ctx, newParticipant(t, "ada", "r1"))

	got, err := m.Get(ctx, p.ID)
	require.NoError(t, err)
	got.Nickname = "mallory"

	again, err := m.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada", again.Nickname)
}
