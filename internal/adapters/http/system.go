package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (h *Handlers) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"timestamp": time.Now().UnixMilli(),
		"message":   "pong",
	})
}

// SearchVideos proxies the keyword lookup. The response body stays opaque;
// nothing here interprets what the provider returns.
func (h *Handlers) SearchVideos(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Query parameter 'q' is required"})
		return
	}

	body, err := h.search.Search(c.Request.Context(), query)
	if err != nil {
		log.Error().Err(err).Str("module", "adapters.http").Str("query", query).Msg("video search")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to search videos"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}
