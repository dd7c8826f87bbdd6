// Package storage holds participant records. It is a collaborator of the
// sync core, not part of it: the hub only ever receives snapshots from here.
package storage

import (
	"context"
	"errors"

	"github.com/soundroom/server/internal/domain"
)

var ErrNotFound = errors.New("participant not found")

type Store interface {
	Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error)
	Get(ctx context.Context, id int) (*domain.Participant, error)
	// ByRoom lists connected participants of a room.
	ByRoom(ctx context.Context, roomID domain.RoomID) ([]*domain.Participant, error)
	SetConnected(ctx context.Context, id int, connected bool) error
	SetMuted(ctx context.Context, id int, muted bool) error
	Remove(ctx context.Context, id int) error
}
