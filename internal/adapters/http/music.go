package http

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soundroom/server/internal/app"
	"github.com/soundroom/server/internal/domain"
)

type musicPlayRequest struct {
	RoomID  string `json:"roomId" binding:"required"`
	VideoID string `json:"videoId" binding:"required"`
	UserID  string `json:"userId" binding:"required"`
}

func (h *Handlers) MusicPlay(c *gin.Context) {
	var req musicPlayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Room ID, video ID and user ID are required"})
		return
	}
	h.hub.MusicControl(domain.RoomID(req.RoomID), app.MusicControl{
		Action:  "play",
		VideoID: req.VideoID,
		UserID:  req.UserID,
	})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type musicPauseRequest struct {
	RoomID string `json:"roomId" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}

func (h *Handlers) MusicPause(c *gin.Context) {
	var req musicPauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Room ID and user ID are required"})
		return
	}
	h.hub.MusicControl(domain.RoomID(req.RoomID), app.MusicControl{
		Action: "pause",
		UserID: req.UserID,
	})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type musicQueueRequest struct {
	RoomID string          `json:"roomId" binding:"required"`
	Song   json.RawMessage `json:"song" binding:"required"`
	UserID string          `json:"userId" binding:"required"`
}

func (h *Handlers) MusicQueue(c *gin.Context) {
	var req musicQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Room ID, song and user ID are required"})
		return
	}
	h.hub.MusicControl(domain.RoomID(req.RoomID), app.MusicControl{
		Action: "add_to_queue",
		Song:   req.Song,
		UserID: req.UserID,
	})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type musicShuffleRequest struct {
	RoomID     string `json:"roomId" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
	IsShuffled *bool  `json:"isShuffled" binding:"required"`
}

func (h *Handlers) MusicShuffle(c *gin.Context) {
	var req musicShuffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Room ID, user ID and shuffle state are required"})
		return
	}
	h.hub.MusicControl(domain.RoomID(req.RoomID), app.MusicControl{
		Action:     "shuffle",
		IsShuffled: req.IsShuffled,
		UserID:     req.UserID,
	})
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type musicRepeatRequest struct {
	RoomID     string `json:"roomId" binding:"required"`
	UserID     string `json:"userId" binding:"required"`
	RepeatMode string `json:"repeatMode" binding:"required"`
}

func (h *Handlers) MusicRepeat(c *gin.Context) {
	var req musicRepeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Room ID, user ID and repeat mode are required"})
		return
	}
	h.hub.MusicControl(domain.RoomID(req.RoomID), app.MusicControl{
		Action:     "repeat",
		RepeatMode: req.RepeatMode,
		UserID:     req.UserID,
	})
	c.JSON(http.StatusOK, gin.H{"success": true})
}
