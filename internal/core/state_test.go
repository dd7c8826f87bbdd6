package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundroom/server/internal/domain"
)

func TestStateStore_PutReplaces(t *testing.T) {
	s := NewStateStore()

	_, ok := s.Get("r1", domain.StatePlayback)
	require.False(t, ok, "empty store has no document")

	s.Put("r1", domain.StatePlayback, Document(`{"videoId":"abc"}`))
	s.Put("r1", domain.StatePlayback, Document(`{"videoId":"def"}`))

	doc, ok := s.Get("r1", domain.StatePlayback)
	require.True(t, ok)
	assert.JSONEq(t, `{"videoId":"def"}`, string(doc))
}

func TestStateStore_KindsAreIndependent(t *testing.T) {
	s := NewStateStore()
	s.Put("r1", domain.StatePlayback, Document(`{"p":1}`))
	s.Put("r1", domain.StateSoundboard, Document(`{"s":1}`))
	s.Put("r2", domain.StatePlayback, Document(`{"p":2}`))

	doc, ok := s.Get("r1", domain.StateSoundboard)
	require.True(t, ok)
	assert.JSONEq(t, `{"s":1}`, string(doc))

	doc, ok = s.Get("r2", domain.StatePlayback)
	require.True(t, ok)
	assert.JSONEq(t, `{"p":2}`, string(doc))

	_, ok = s.Get("r2", domain.StateSoundboard)
	assert.False(t, ok)
}

func TestStateStore_SnapshotOrder(t *testing.T) {
	s := NewStateStore()

	assert.Nil(t, s.Snapshot("r1"), "unknown room has no snapshot")

	s.Put("r1", domain.StateSoundboard, Document(`{"s":1}`))
	s.Put("r1", domain.StatePlayback, Document(`{"p":1}`))

	snap := s.Snapshot("r1")
	require.Len(t, snap, 2)
	assert.Equal(t, domain.StatePlayback, snap[0].Kind)
	assert.Equal(t, domain.StateSoundboard, snap[1].Kind)
}

func TestStateStore_Drop(t *testing.T) {
	s := NewStateStore()
	s.Put("r1", domain.StatePlayback, Document(`{}`))
	s.Drop("r1")

	_, ok := s.Get("r1", domain.StatePlayback)
	assert.False(t, ok)
	s.Drop("r1") // safe to repeat
}

func TestStateStore_ConcurrentWriters(t *testing.T) {
	s := NewStateStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Put("r1", domain.StatePlayback, Document(`{"n":1}`))
			s.Get("r1", domain.StatePlayback)
			s.Snapshot("r1")
		}()
	}
	wg.Wait()

	doc, ok := s.Get("r1", domain.StatePlayback)
	require.True(t, ok)
	assert.JSONEq(t, `{"n":1}`, string(doc))
}
