package http

import (
	"time"

	"fair_rps/internal/config"
	"fair_rps/internal/http/handlers"
	"fair_rps/internal/http/middleware"
	"fair_rps/internal/repository"
	"fair_rps/internal/service"
	"fair_rps/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	redis "github.com/redis/go-redis/v9"
)

// Deps are the services the routes are wired to. Redis is optional; without
// it rate limits are kept in process memory.
type Deps struct {
	Rounds  *service.RoundService
	Tokens  *service.RoundTokens
	Repo    repository.RoundRepository
	Hub     *ws.Hub
	Redis   *redis.Client
	Version string
}

func RegisterRoutes(r *gin.Engine, d Deps, cfg *config.Config) {
	h := handlers.NewHandler(d.Rounds, d.Tokens)
	h.AllowedOrigin = cfg.AllowedOrigin
	healthHandler := handlers.NewHealthHandler(d.Repo, d.Hub.Count, d.Version)

	apiRateLimit := cfg.APIRateLimit
	if apiRateLimit <= 0 {
		apiRateLimit = 60
	}
	apiRateWindow := cfg.APIRateWindow
	if apiRateWindow <= 0 {
		apiRateWindow = time.Minute
	}

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/api/v1")
	if d.Redis != nil {
		v1.Use(middleware.RedisRateLimit(d.Redis, apiRateLimit, apiRateWindow))
	} else {
		v1.Use(middleware.SimpleRateLimit(apiRateLimit, apiRateWindow))
	}
	registerAPIRoutes(v1, h, d.Redis, apiRateLimit, apiRateWindow)

	// WebSocket: one round per connection
	r.GET("/ws", h.WS(d.Hub))
}

func registerAPIRoutes(api *gin.RouterGroup, h *handlers.Handler, rdb *redis.Client, limit int, window time.Duration) {
	api.GET("/moves", h.Moves)
	api.GET("/rules", h.Rules)

	api.POST("/rounds", h.StartRound)
	api.POST("/rounds/:id/move",
		middleware.RoundAuth(h.Tokens),
		middleware.RoundRateLimit(rdb, limit, window),
		h.PlayRound)

	api.POST("/verify", h.Verify)
}
