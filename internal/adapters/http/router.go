// Package http wires the gin router: the WebSocket upgrade endpoint, the
// command relay API and the collaborator endpoints (tokens, participants,
// video lookup).
package http

import (
	"context"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/soundroom/server/internal/adapters/signal"
	"github.com/soundroom/server/internal/app"
	"github.com/soundroom/server/internal/config"
	"github.com/soundroom/server/internal/livekit"
	"github.com/soundroom/server/internal/search"
	"github.com/soundroom/server/internal/storage"
)

func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = uuid.NewString()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

type Handlers struct {
	hub    *app.Hub
	store  storage.Store
	issuer *livekit.TokenIssuer
	search *search.YouTubeClient
}

func NewHandlers(hub *app.Hub, store storage.Store, issuer *livekit.TokenIssuer, yt *search.YouTubeClient) *Handlers {
	return &Handlers{hub: hub, store: store, issuer: issuer, search: yt}
}

func SetupRouter(ctx context.Context, cfg *config.Config, h *Handlers) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(cfg.Secret))
	r.Use(sessions.Sessions("SoundroomSessions", store))
	r.Use(ClientTokenMiddleware())

	ctl := signal.NewController(h.hub, cfg.ReadLimit, cfg.PingPeriod)
	r.GET("/ws", func(c *gin.Context) {
		ctl.Handle(ctx, c)
	})

	log.Info().Str("module", "adapters.http").Msg("router setup")

	api := r.Group("/api")

	api.POST("/auth", h.Auth)
	api.GET("/rooms/:roomId/participants", h.ListParticipants)
	api.PATCH("/participants/:id/mute", h.MuteParticipant)
	api.DELETE("/participants/:id", h.RemoveParticipant)
	api.GET("/youtube/search", h.SearchVideos)
	api.GET("/ping", h.Ping)

	music := api.Group("/music")
	music.POST("/play", h.MusicPlay)
	music.POST("/pause", h.MusicPause)
	music.POST("/queue", h.MusicQueue)
	music.POST("/shuffle", h.MusicShuffle)
	music.POST("/repeat", h.MusicRepeat)

	sound := api.Group("/sound")
	sound.POST("/play", h.SoundPlay)
	sound.POST("/stop", h.SoundStop)

	return r
}
