package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/soundroom/server/internal/domain"
)

// Redis keeps participant records as JSON values with a per-room index set,
// so a multi-instance deployment of the relay API shares one roster.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func participantKey(id int) string {
	return fmt.Sprintf("participants:%d", id)
}

func roomIndexKey(roomID domain.RoomID) string {
	return fmt.Sprintf("rooms:%s:participants", roomID)
}

const idCounterKey = "participants:next_id"

func (r *Redis) Create(ctx context.Context, p *domain.Participant) (*domain.Participant, error) {
	id, err := r.rdb.Incr(ctx, idCounterKey).Result()
	if err != nil {
		return nil, err
	}
	cp := *p
	cp.ID = int(id)

	b, err := json.Marshal(&cp)
	if err != nil {
		return nil, err
	}
	pipe := r.rdb.TxPipeline()
	pipe.Set(ctx, participantKey(cp.ID), b, 0)
	pipe.SAdd(ctx, roomIndexKey(cp.RoomID), cp.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *Redis) Get(ctx context.Context, id int) (*domain.Participant, error) {
	val, err := r.rdb.Get(ctx, participantKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var p domain.Participant
	if err := json.Unmarshal(val, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Redis) ByRoom(ctx context.Context, roomID domain.RoomID) ([]*domain.Participant, error) {
	ids, err := r.rdb.SMembers(ctx, roomIndexKey(roomID)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Participant, 0, len(ids))
	for _, raw := range ids {
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		p, err := r.Get(ctx, id)
		if err == ErrNotFound {
			// Stale index entry; drop it.
			r.rdb.SRem(ctx, roomIndexKey(roomID), id)
			continue
		}
		if err != nil {
			return nil, err
		}
		if p.IsConnected {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *Redis) SetConnected(ctx context.Context, id int, connected bool) error {
	return r.update(ctx, id, func(p *domain.Participant) { p.IsConnected = connected })
}

func (r *Redis) SetMuted(ctx context.Context, id int, muted bool) error {
	return r.update(ctx, id, func(p *domain.Participant) { p.IsMuted = muted })
}

func (r *Redis) Remove(ctx context.Context, id int) error {
	p, err := r.Get(ctx, id)
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}
	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, participantKey(id))
	pipe.SRem(ctx, roomIndexKey(p.RoomID), id)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *Redis) update(ctx context.Context, id int, mutate func(*domain.Participant)) error {
	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	mutate(p)
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, participantKey(id), b, 0).Err()
}
