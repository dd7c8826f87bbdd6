package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/soundroom/server/internal/domain"
	"github.com/soundroom/server/internal/storage"
)

func (h *Handlers) ListParticipants(c *gin.Context) {
	roomID := domain.RoomID(c.Param("roomId"))
	parts, err := h.store.ByRoom(c.Request.Context(), roomID)
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Str("room", string(roomID)).Msg("list participants")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch participants"})
		return
	}
	c.JSON(http.StatusOK, parts)
}

type muteRequest struct {
	IsMuted *bool `json:"isMuted" binding:"required"`
}

func (h *Handlers) MuteParticipant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid participant id"})
		return
	}
	var req muteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Mute state is required"})
		return
	}

	if err := h.store.SetMuted(c.Request.Context(), id, *req.IsMuted); err != nil {
		if err == storage.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": "Participant not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update participant"})
		return
	}

	if p, err := h.store.Get(c.Request.Context(), id); err == nil {
		h.broadcastParticipants(c, p.RoomID)
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handlers) RemoveParticipant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid participant id"})
		return
	}

	p, err := h.store.Get(c.Request.Context(), id)
	if err == storage.ErrNotFound {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove participant"})
		return
	}

	if err := h.store.Remove(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove participant"})
		return
	}
	h.broadcastParticipants(c, p.RoomID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handlers) broadcastParticipants(c *gin.Context, roomID domain.RoomID) {
	parts, err := h.store.ByRoom(c.Request.Context(), roomID)
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Str("room", string(roomID)).Msg("participants snapshot")
		return
	}
	h.hub.ParticipantsUpdate(roomID, parts)
}
