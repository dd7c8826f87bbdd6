package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/soundroom/server/internal/domain"
)

type authRequest struct {
	Nickname string `json:"nickname" binding:"required"`
	RoomName string `json:"roomName" binding:"required"`
}

type authResponse struct {
	Token string `json:"token"`
	WSURL string `json:"wsUrl"`
}

// Auth mints a media access token scoped to one room and one identity, and
// records the participant. Token failure never touches room membership:
// joining over the persistent connection is an independent step.
func (h *Handlers) Auth(c *gin.Context) {
	var req authRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Nickname and room name are required"})
		return
	}
	roomID := domain.RoomID(req.RoomName)

	token, err := h.issuer.Issue(req.Nickname, roomID)
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Str("nickname", req.Nickname).Msg("token issuance failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	p, err := domain.NewParticipant(req.Nickname, roomID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if _, err := h.store.Create(c.Request.Context(), p); err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Msg("create participant")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create participant"})
		return
	}

	h.broadcastParticipants(c, roomID)

	c.JSON(http.StatusOK, authResponse{Token: token, WSURL: h.issuer.WSURL()})
}
