package repository

import (
	"context"
	"errors"
	"time"

	"fair_rps/internal/commitment"
)

var ErrRoundNotFound = errors.New("round not found")

// PendingRound is a committed round waiting for the player's move.
// It carries the secret key and stays on the server.
type PendingRound struct {
	ID        string            `json:"id"`
	Sealed    commitment.Sealed `json:"sealed"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
}

// RoundRepository stores pending rounds until they are played or expire.
type RoundRepository interface {
	Save(ctx context.Context, round *PendingRound, ttl time.Duration) error
	// Get returns the round without consuming it.
	Get(ctx context.Context, id string) (*PendingRound, error)
	// Take returns and deletes the round atomically, so a round is played once.
	Take(ctx context.Context, id string) (*PendingRound, error)
	Ping(ctx context.Context) error
}
