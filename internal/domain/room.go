// Package domain contains entities without logic, just meta-data.
package domain

type RoomID string

// StateKind names one of the shared documents a room carries.
type StateKind string

const (
	StatePlayback   StateKind = "music"
	StateSoundboard StateKind = "soundboard"
)

// Kinds lists the known document kinds in catch-up order.
var Kinds = []StateKind{StatePlayback, StateSoundboard}
