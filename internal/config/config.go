package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"fair_rps/internal/commitment"
	"fair_rps/internal/game"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogJSON  bool   `env:"LOG_JSON" envDefault:"false"`

	// Game
	Moves    []string      `env:"RPS_MOVES" envDefault:"rock,paper,scissors" envSeparator:","`
	Preset   string        `env:"RPS_PRESET"`
	KeyBytes int           `env:"RPS_KEY_BYTES" envDefault:"32"`
	RoundTTL time.Duration `env:"ROUND_TTL" envDefault:"5m"`

	// Server
	AppPort       string `env:"APP_PORT" envDefault:"8080"`
	JWTSecret     string `env:"JWT_SECRET"`
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	APIRateLimit  int           `env:"API_RATE_LIMIT" envDefault:"60"`
	APIRateWindow time.Duration `env:"API_RATE_WINDOW" envDefault:"1m"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.KeyBytes < commitment.MinKeyBytes {
		return nil, fmt.Errorf("RPS_KEY_BYTES: %w", commitment.ErrKeyTooShort)
	}
	if cfg.RoundTTL <= 0 {
		return nil, errors.New("ROUND_TTL must be positive")
	}
	return &cfg, nil
}

// ValidateServer checks the settings only the HTTP server needs.
func (c *Config) ValidateServer() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.APIRateLimit <= 0 || c.APIRateWindow <= 0 {
		return errors.New("API_RATE_LIMIT and API_RATE_WINDOW must be positive")
	}
	return nil
}

// MoveSet builds the configured move set. A preset wins over RPS_MOVES.
func (c *Config) MoveSet() (*game.MoveSet, error) {
	if c.Preset != "" {
		return game.Preset(c.Preset)
	}
	return game.NewMoveSet(TrimMoves(c.Moves))
}

// TrimMoves strips surrounding whitespace and drops empty entries.
func TrimMoves(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
