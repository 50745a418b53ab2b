package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fair_rps/internal/commitment"
	"fair_rps/internal/game"
	"fair_rps/internal/logger"
	"fair_rps/internal/match"
	"fair_rps/internal/repository"

	"github.com/google/uuid"
)

const TransportHTTP = "http"

var ErrRoundNotFound = repository.ErrRoundNotFound

// RoundServiceConfig holds round settings. Zero fields get defaults.
type RoundServiceConfig struct {
	TTL       time.Duration
	Keys      commitment.KeyGenerator
	MAC       commitment.MACFunc
	NewSource func() match.IndexSource
}

// StartedRound is what the player sees before moving: no key, no move.
type StartedRound struct {
	ID        string
	Digest    []byte
	ExpiresAt time.Time
}

// RoundService runs commit-reveal rounds across separate requests. The sealed
// commitment waits in the repository between the start and the move.
type RoundService struct {
	moves *game.MoveSet
	table *game.OutcomeMatrix
	repo  repository.RoundRepository
	cfg   RoundServiceConfig
}

// NewRoundService creates a round service with default settings
func NewRoundService(moves *game.MoveSet, repo repository.RoundRepository) *RoundService {
	return NewRoundServiceWithConfig(moves, repo, RoundServiceConfig{})
}

// NewRoundServiceWithConfig creates a round service with custom settings
func NewRoundServiceWithConfig(moves *game.MoveSet, repo repository.RoundRepository, cfg RoundServiceConfig) *RoundService {
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.Keys == nil {
		cfg.Keys = commitment.DefaultKeys
	}
	if cfg.MAC == nil {
		cfg.MAC = commitment.HMACSHA256
	}
	if cfg.NewSource == nil {
		cfg.NewSource = func() match.IndexSource { return match.NewRandomSource() }
	}

	return &RoundService{
		moves: moves,
		table: game.BuildTable(moves),
		repo:  repo,
		cfg:   cfg,
	}
}

func (s *RoundService) Moves() *game.MoveSet {
	return s.moves
}

// Rules returns the outcome matrix for the help display.
func (s *RoundService) Rules() *game.OutcomeMatrix {
	return s.table
}

func (s *RoundService) TTL() time.Duration {
	return s.cfg.TTL
}

// NewEngine returns an idle engine with the service's collaborators.
func (s *RoundService) NewEngine() *match.Engine {
	return match.NewEngine(s.moves, s.engineConfig())
}

func (s *RoundService) engineConfig() match.Config {
	return match.Config{Source: s.cfg.NewSource(), Keys: s.cfg.Keys, MAC: s.cfg.MAC}
}

// StartRound commits to a computer move and stores the sealed commitment.
func (s *RoundService) StartRound(ctx context.Context) (*StartedRound, error) {
	engine := s.NewEngine()
	digest, err := engine.Start()
	if err != nil {
		return nil, err
	}
	sealed, err := engine.Seal()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	round := &repository.PendingRound{
		ID:        uuid.NewString(),
		Sealed:    sealed,
		CreatedAt: now,
	}
	if err := s.repo.Save(ctx, round, s.cfg.TTL); err != nil {
		return nil, fmt.Errorf("save round: %w", err)
	}

	RoundsStarted.WithLabelValues(TransportHTTP).Inc()
	logger.WithContext(logger.ContextWithRoundID(ctx, round.ID)).Debug("round started")

	return &StartedRound{
		ID:        round.ID,
		Digest:    digest,
		ExpiresAt: now.Add(s.cfg.TTL),
	}, nil
}

// PlayRound resolves the player's move for round id. Invalid moves are
// rejected before the round is consumed, so the player can try again.
func (s *RoundService) PlayRound(ctx context.Context, id, move string) (*match.RoundResult, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	if move == "" {
		return nil, match.ErrNoMoveSelected
	}
	if !s.moves.Contains(move) {
		return nil, fmt.Errorf("%w: %q", game.ErrUnknownMove, move)
	}

	pending, err := s.repo.Take(ctx, id)
	if err != nil {
		return nil, err
	}

	engine, err := match.Resume(s.moves, pending.Sealed, s.engineConfig())
	if err != nil {
		return nil, err
	}
	res, err := engine.Play(move)
	if err != nil {
		return nil, err
	}

	RoundsResolved.WithLabelValues(TransportHTTP, res.Outcome.String()).Inc()
	logger.WithContext(logger.ContextWithRoundID(ctx, id)).Info("round resolved",
		"player", res.PlayerMove, "computer", res.ComputerMove, "outcome", res.Outcome)
	return res, nil
}

// MoveByIndex maps a 1-based menu index to a move name.
func (s *RoundService) MoveByIndex(index int) (string, error) {
	return s.moves.Name(index - 1)
}

// Verify checks a disclosed key and move against a published digest.
func (s *RoundService) Verify(keyHex, move, digestHex string) (bool, error) {
	ok, err := commitment.VerifyHex(s.cfg.MAC, keyHex, move, digestHex)
	if err != nil {
		Verifications.WithLabelValues("malformed").Inc()
		return false, err
	}
	if ok {
		Verifications.WithLabelValues("valid").Inc()
	} else {
		Verifications.WithLabelValues("mismatch").Inc()
	}
	return ok, nil
}

// IsClientError reports whether err is the player's fault rather than ours.
func IsClientError(err error) bool {
	return errors.Is(err, game.ErrUnknownMove) || errors.Is(err, match.ErrNoMoveSelected)
}
