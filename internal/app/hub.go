package app

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/soundroom/server/internal/core"
	"github.com/soundroom/server/internal/domain"
)

// Hub owns the sync core: it registers connections, routes inbound
// envelopes, keeps the per-room state documents and fans payloads out to
// room members. Transport resources stay with the adapter; the hub only
// ever calls TrySend.
type Hub struct {
	registry *core.Registry
	state    *core.StateStore
}

func NewHub() *Hub {
	return &Hub{
		registry: core.NewRegistry(),
		state:    core.NewStateStore(),
	}
}

// Register adds a fresh connection with no room binding.
func (h *Hub) Register(sid core.SessionID, conn core.SignalConnection, cancel context.CancelFunc) {
	h.registry.Register(sid, conn, cancel)
}

// HandleMessage decodes one inbound envelope and routes it. Malformed
// input is logged and dropped; it never tears down the connection.
// Unknown envelope types are ignored so newer clients keep working.
func (h *Hub) HandleMessage(sid core.SessionID, raw []byte) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Warn().Err(err).Str("module", "app.hub").Str("sid", string(sid)).Msg("malformed envelope")
		return
	}

	switch env.Type {
	case "join_room":
		if env.RoomID == "" {
			log.Warn().Str("module", "app.hub").Str("sid", string(sid)).Msg("join_room without roomId")
			return
		}
		h.Join(sid, domain.RoomID(env.RoomID))
	case "music_state_update":
		h.applyStateUpdate(sid, domain.StatePlayback, env.State)
	case "soundboard_state_update":
		h.applyStateUpdate(sid, domain.StateSoundboard, env.State)
	case "play_sound":
		room, ok := h.registry.RoomOf(sid)
		if !ok {
			log.Debug().Str("module", "app.hub").Str("sid", string(sid)).Msg("play_sound before join, dropped")
			return
		}
		if env.SoundID == "" {
			log.Warn().Str("module", "app.hub").Str("sid", string(sid)).Msg("play_sound without soundId")
			return
		}
		h.Broadcast(room, playSoundBroadcast{Type: "play_sound", SoundID: env.SoundID}, "")
	default:
		log.Debug().Str("module", "app.hub").Str("type", env.Type).Msg("unknown envelope type, ignored")
	}
}

// applyStateUpdate replaces the (room, kind) document and rebroadcasts the
// new snapshot to every member, sender included; clients rely on the echo
// for multi-tab consistency.
func (h *Hub) applyStateUpdate(sid core.SessionID, kind domain.StateKind, state json.RawMessage) {
	room, ok := h.registry.RoomOf(sid)
	if !ok {
		log.Debug().Str("module", "app.hub").Str("sid", string(sid)).Str("kind", string(kind)).Msg("state update before join, dropped")
		return
	}
	if len(state) == 0 {
		log.Warn().Str("module", "app.hub").Str("sid", string(sid)).Str("kind", string(kind)).Msg("state update without state")
		return
	}
	h.state.Put(room, kind, core.Document(state))
	h.Broadcast(room, newStateBroadcast(kind, core.Document(state)), "")
}

// Join binds the connection to roomID (overwriting any previous binding)
// and unicasts one catch-up envelope per stored document to it. A repeated
// join re-triggers catch-up, which is harmless: catch-up payloads are
// idempotent replacements.
func (h *Hub) Join(sid core.SessionID, roomID domain.RoomID) {
	prev, hadRoom := h.registry.RoomOf(sid)
	if !h.registry.Bind(sid, roomID) {
		return
	}
	if hadRoom && prev != roomID && h.registry.MemberCount(prev) == 0 {
		h.state.Drop(prev)
		log.Info().Str("module", "app.hub").Str("room", string(prev)).Msg("evicted empty room state")
	}

	conn, ok := h.registry.Conn(sid)
	if !ok {
		return
	}
	for _, kd := range h.state.Snapshot(roomID) {
		h.Unicast(conn, newStateBroadcast(kd.Kind, kd.Doc))
	}
}

// Disconnect removes the connection from the registry and evicts the state
// of a room it leaves empty. Peers are not notified; participant-list
// changes travel through the relay API instead.
func (h *Hub) Disconnect(sid core.SessionID) {
	room, hadRoom := h.registry.RoomOf(sid)
	h.registry.Unregister(sid)
	if hadRoom && h.registry.MemberCount(room) == 0 {
		h.state.Drop(room)
		log.Info().Str("module", "app.hub").Str("room", string(room)).Msg("evicted empty room state")
	}
}

// Broadcast serializes v once and delivers it to every member of roomID
// except exclude (empty excludes nobody). A recipient whose send fails is
// skipped, then torn down as if its transport had closed; one dead peer
// never aborts delivery to the rest.
func (h *Hub) Broadcast(roomID domain.RoomID, v any, exclude core.SessionID) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.hub").Msg("broadcast marshal")
		return
	}

	var dropped []core.SessionID
	sent := 0
	for _, m := range h.registry.MembersOf(roomID) {
		if exclude != "" && m.SID == exclude {
			continue
		}
		if err := m.Conn.TrySend(core.Frame(data)); err != nil {
			dropped = append(dropped, m.SID)
			continue
		}
		sent++
	}
	log.Debug().Str("module", "app.hub").Str("room", string(roomID)).Int("sent_to", sent).Int("dropped", len(dropped)).Msg("broadcast result")

	for _, sid := range dropped {
		log.Warn().Str("module", "app.hub").Str("sid", string(sid)).Msg("send failed, removing member")
		h.registry.Cancel(sid)
		h.Disconnect(sid)
	}
}

// Unicast delivers one payload to exactly one connection.
func (h *Hub) Unicast(conn core.SignalConnection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.hub").Msg("unicast marshal")
		return
	}
	if err := conn.TrySend(core.Frame(data)); err != nil {
		log.Warn().Err(err).Str("module", "app.hub").Msg("unicast send failed")
	}
}

// MusicControl relays a playback command to every member of roomID,
// including whichever connection belongs to the acting user; clients
// self-filter on the embedded userId.
func (h *Hub) MusicControl(roomID domain.RoomID, ctrl MusicControl) {
	ctrl.Timestamp = time.Now().UnixMilli()
	h.Broadcast(roomID, musicControlEnvelope{Type: "music_control", MusicControl: ctrl}, "")
}

// SoundControl relays a soundboard command to every member of roomID.
func (h *Hub) SoundControl(roomID domain.RoomID, ctrl SoundControl) {
	ctrl.Timestamp = time.Now().UnixMilli()
	h.Broadcast(roomID, soundControlEnvelope{Type: "sound_control", SoundControl: ctrl}, "")
}

// ParticipantsUpdate pushes the current participant list to a room.
func (h *Hub) ParticipantsUpdate(roomID domain.RoomID, parts []*domain.Participant) {
	h.Broadcast(roomID, participantsUpdate{Type: "participants_update", Participants: parts}, "")
}

// MemberCount reports how many sessions are bound to roomID.
func (h *Hub) MemberCount(roomID domain.RoomID) int {
	return h.registry.MemberCount(roomID)
}
