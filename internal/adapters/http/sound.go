package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundroom/server/internal/app"
	"github.com/soundroom/server/internal/domain"
)

type soundControlRequest struct {
	RoomID  string `json:"roomId" binding:"required"`
	SoundID string `json:"soundId" binding:"required"`
	UserID  string `json:"userId" binding:"required"`
}

func (h *Handlers) SoundPlay(c *gin.Context) {
	h.relaySoundControl(c, "play_sound")
}

func (h *Handlers) SoundStop(c *gin.Context) {
	h.relaySoundControl(c, "stop_sound")
}

func (h *Handlers) relaySoundControl(c *gin.Context, action string) {
	var req soundControlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Room ID, sound ID and user ID are required"})
		return
	}
	h.hub.SoundControl(domain.RoomID(req.RoomID), app.SoundControl{
		Action:  action,
		SoundID: req.SoundID,
		UserID:  req.UserID,
	})
	c.JSON(http.StatusOK, gin.H{"success": true})
}
