package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fair_rps/internal/commitment"
	"fair_rps/internal/config"
	httpServer "fair_rps/internal/http"
	"fair_rps/internal/http/middleware"
	"fair_rps/internal/logger"
	"fair_rps/internal/repository"
	"fair_rps/internal/service"
	"fair_rps/internal/ws"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("load config: %v", err)
	}
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	if err := cfg.ValidateServer(); err != nil {
		logger.Fatal("invalid config", "error", err)
	}

	moves, err := cfg.MoveSet()
	if err != nil {
		logger.Fatal("invalid move list", "error", err)
	}
	keys, err := commitment.RandomKeys(cfg.KeyBytes, nil)
	if err != nil {
		logger.Fatal("key generator", "error", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Pending rounds live in Redis when configured, otherwise in memory
	var repo repository.RoundRepository
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = repository.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Fatal("redis unavailable", "addr", cfg.RedisAddr, "error", err)
		}
		defer rdb.Close()
		repo = repository.NewRedisRoundRepository(rdb)
		logger.Info("using redis round store", "addr", cfg.RedisAddr)
	} else {
		mem := repository.NewMemoryRoundRepository()
		mem.StartCleanup(ctx, time.Minute)
		repo = mem
		logger.Info("using in-memory round store")
	}

	rounds := service.NewRoundServiceWithConfig(moves, repo, service.RoundServiceConfig{
		TTL:  cfg.RoundTTL,
		Keys: keys,
	})
	tokens, err := service.NewRoundTokens(cfg.JWTSecret, cfg.RoundTTL)
	if err != nil {
		logger.Fatal("round tokens", "error", err)
	}
	hub := ws.NewHub(rounds)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())

	// CORS for a browser client on another origin
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (cfg.AllowedOrigin == "" || origin == cfg.AllowedOrigin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	httpServer.RegisterRoutes(r, httpServer.Deps{
		Rounds:  rounds,
		Tokens:  tokens,
		Repo:    repo,
		Hub:     hub,
		Redis:   rdb,
		Version: version,
	}, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "moves", moves.String(), "version", version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hub.CloseAll()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	stop()

	logger.Info("server exited")
}
