package app

import (
	"encoding/json"

	"github.com/soundroom/server/internal/core"
	"github.com/soundroom/server/internal/domain"
)

// envelope is the inbound wire unit, discriminated by Type. Fields beyond
// the one required for the declared type are ignored.
type envelope struct {
	Type    string          `json:"type"`
	RoomID  string          `json:"roomId,omitempty"`
	State   json.RawMessage `json:"state,omitempty"`
	SoundID string          `json:"soundId,omitempty"`
}

type stateBroadcast struct {
	Type  string        `json:"type"`
	State core.Document `json:"state"`
}

func newStateBroadcast(kind domain.StateKind, doc core.Document) stateBroadcast {
	return stateBroadcast{Type: string(kind) + "_state_broadcast", State: doc}
}

type playSoundBroadcast struct {
	Type    string `json:"type"`
	SoundID string `json:"soundId"`
}

// MusicControl is a transient playback command relayed into a room.
// It is never written to the state store; the acting client is expected to
// follow up with a state update if it wants the result replayed to joiners.
type MusicControl struct {
	Action     string          `json:"action"`
	VideoID    string          `json:"videoId,omitempty"`
	Song       json.RawMessage `json:"song,omitempty"`
	IsShuffled *bool           `json:"isShuffled,omitempty"`
	RepeatMode string          `json:"repeatMode,omitempty"`
	UserID     string          `json:"userId"`
	Timestamp  int64           `json:"timestamp"`
}

// SoundControl is a transient soundboard command relayed into a room.
type SoundControl struct {
	Action    string `json:"action"`
	SoundID   string `json:"soundId"`
	UserID    string `json:"userId"`
	Timestamp int64  `json:"timestamp"`
}

type musicControlEnvelope struct {
	Type string `json:"type"`
	MusicControl
}

type soundControlEnvelope struct {
	Type string `json:"type"`
	SoundControl
}

type participantsUpdate struct {
	Type         string                `json:"type"`
	Participants []*domain.Participant `json:"participants"`
}
