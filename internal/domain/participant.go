package domain

import (
	"errors"
	"time"
)

const MaxNicknameLen = 36

var (
	ErrNicknameEmpty   = errors.New("nickname empty")
	ErrNicknameTooLong = errors.New("nickname too long")
)

// Participant is a voice-room member record. It lives in the participant
// store, not in the sync core; the core only ships snapshots of it to rooms.
type Participant struct {
	ID          int       `json:"id"`
	Nickname    string    `json:"nickname"`
	RoomID      RoomID    `json:"roomId"`
	IsConnected bool      `json:"isConnected"`
	IsMuted     bool      `json:"isMuted"`
	JoinedAt    time.Time `json:"joinedAt"`
}

// NewParticipant avoids ad-hoc struct literals in handlers.
func NewParticipant(nickname string, roomID RoomID) (*Participant, error) {
	if len(nickname) == 0 {
		return nil, ErrNicknameEmpty
	}
	if len(nickname) > MaxNicknameLen {
		return nil, ErrNicknameTooLong
	}
	return &Participant{
		Nickname:    nickname,
		RoomID:      roomID,
		IsConnected: true,
		JoinedAt:    time.Now(),
	}, nil
}
