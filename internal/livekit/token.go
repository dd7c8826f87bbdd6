// Package livekit issues access credentials for the external media router.
// The server never touches audio/video bytes itself; clients take the token
// straight to LiveKit.
package livekit

import (
	"errors"
	"time"

	"github.com/livekit/protocol/auth"

	"github.com/soundroom/server/internal/domain"
)

var ErrNotConfigured = errors.New("livekit credentials not configured")

type TokenIssuer struct {
	apiKey    string
	apiSecret string
	wsURL     string
	ttl       time.Duration
}

func NewTokenIssuer(apiKey, apiSecret, wsURL string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenIssuer{apiKey: apiKey, apiSecret: apiSecret, wsURL: wsURL, ttl: ttl}
}

func (i *TokenIssuer) WSURL() string { return i.wsURL }

// Issue mints a token scoped to one room and one identity, with publish,
// subscribe and data-channel grants.
func (i *TokenIssuer) Issue(identity string, roomID domain.RoomID) (string, error) {
	if i.apiKey == "" || i.apiSecret == "" || i.wsURL == "" {
		return "", ErrNotConfigured
	}

	yes := true
	grant := &auth.VideoGrant{
		Room:           string(roomID),
		RoomJoin:       true,
		CanPublish:     &yes,
		CanSubscribe:   &yes,
		CanPublishData: &yes,
	}

	at := auth.NewAccessToken(i.apiKey, i.apiSecret).
		SetIdentity(identity).
		SetVideoGrant(grant).
		SetValidFor(i.ttl)

	return at.ToJWT()
}
