package match

import (
	"errors"
	"fmt"

	"fair_rps/internal/commitment"
	"fair_rps/internal/game"
)

var (
	ErrNoMoveSelected = errors.New("no move selected")
	ErrInvalidState   = errors.New("invalid engine state")
)

// State is the round lifecycle: Idle -> Committed -> Resolved.
type State int

const (
	StateIdle State = iota
	StateCommitted
	StateResolved
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCommitted:
		return "committed"
	case StateResolved:
		return "resolved"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// RoundResult is the outcome of one round from the player's perspective,
// together with the disclosed commitment key.
type RoundResult struct {
	PlayerMove   string
	ComputerMove string
	Outcome      game.Outcome
	Key          []byte
	Digest       []byte
}

// KeyHex returns the disclosed key hex-encoded.
func (r *RoundResult) KeyHex() string {
	return commitment.EncodeHex(r.Key)
}

// DigestHex returns the published digest hex-encoded.
func (r *RoundResult) DigestHex() string {
	return commitment.EncodeHex(r.Digest)
}

// Verify recomputes the digest from the disclosed key and computer move.
func (r *RoundResult) Verify(mac commitment.MACFunc) bool {
	return commitment.Verify(mac, r.Key, r.ComputerMove, r.Digest)
}

// Config holds the engine's collaborators. Zero fields get production defaults.
type Config struct {
	Source IndexSource
	Keys   commitment.KeyGenerator
	MAC    commitment.MACFunc
}

// Engine runs a single round against the computer. It is not safe for
// concurrent use; each round or player gets its own engine.
type Engine struct {
	moves  *game.MoveSet
	source IndexSource
	keys   commitment.KeyGenerator
	mac    commitment.MACFunc

	state  State
	commit *commitment.Commitment
	result *RoundResult
}

// NewEngine returns an idle engine over moves.
func NewEngine(moves *game.MoveSet, cfg Config) *Engine {
	if cfg.Source == nil {
		cfg.Source = NewRandomSource()
	}
	if cfg.Keys == nil {
		cfg.Keys = commitment.DefaultKeys
	}
	if cfg.MAC == nil {
		cfg.MAC = commitment.HMACSHA256
	}

	return &Engine{
		moves:  moves,
		source: cfg.Source,
		keys:   cfg.Keys,
		mac:    cfg.MAC,
		state:  StateIdle,
	}
}

// Resume rebuilds a committed engine from a sealed commitment.
func Resume(moves *game.MoveSet, sealed commitment.Sealed, cfg Config) (*Engine, error) {
	e := NewEngine(moves, cfg)
	if !moves.Contains(sealed.Move) {
		return nil, fmt.Errorf("resume: %w: %q", game.ErrUnknownMove, sealed.Move)
	}

	c, err := commitment.Open(e.mac, sealed)
	if err != nil {
		return nil, fmt.Errorf("resume: %w", err)
	}
	e.commit = c
	e.state = StateCommitted
	return e, nil
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Moves returns the engine's move set.
func (e *Engine) Moves() *game.MoveSet {
	return e.moves
}

// Start picks the computer move, commits to it and returns only the digest.
func (e *Engine) Start() ([]byte, error) {
	if e.state != StateIdle {
		return nil, fmt.Errorf("%w: start from %s", ErrInvalidState, e.state)
	}

	idx := e.source.IntN(e.moves.Len())
	move, err := e.moves.Name(idx)
	if err != nil {
		return nil, fmt.Errorf("pick computer move: %w", err)
	}

	c, err := commitment.Commit(e.keys, e.mac, move)
	if err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	e.commit = c
	e.state = StateCommitted
	return c.Digest(), nil
}

// Digest returns the published digest while a round is committed or resolved.
func (e *Engine) Digest() ([]byte, error) {
	if e.commit == nil {
		return nil, fmt.Errorf("%w: no commitment in %s", ErrInvalidState, e.state)
	}
	return e.commit.Digest(), nil
}

// Seal exports the pending commitment for server-side storage.
func (e *Engine) Seal() (commitment.Sealed, error) {
	if e.state != StateCommitted {
		return commitment.Sealed{}, fmt.Errorf("%w: seal from %s", ErrInvalidState, e.state)
	}
	return e.commit.Seal(), nil
}

// Play resolves the player's move against the committed computer move and
// discloses the key. ErrNoMoveSelected and game.ErrUnknownMove leave the round
// committed so the caller can ask again.
func (e *Engine) Play(move string) (*RoundResult, error) {
	if e.state != StateCommitted {
		return nil, fmt.Errorf("%w: play from %s", ErrInvalidState, e.state)
	}
	if move == "" {
		return nil, ErrNoMoveSelected
	}
	if !e.moves.Contains(move) {
		return nil, fmt.Errorf("%w: %q", game.ErrUnknownMove, move)
	}

	key, computer := e.commit.Disclose()
	outcome, err := game.Resolve(e.moves, move, computer)
	if err != nil {
		return nil, err
	}

	e.result = &RoundResult{
		PlayerMove:   move,
		ComputerMove: computer,
		Outcome:      outcome,
		Key:          key,
		Digest:       e.commit.Digest(),
	}
	e.state = StateResolved
	return e.result, nil
}

// Result returns the round result once resolved.
func (e *Engine) Result() (*RoundResult, bool) {
	return e.result, e.state == StateResolved
}

// Reset drops the spent commitment and returns the engine to idle.
func (e *Engine) Reset() {
	e.commit = nil
	e.result = nil
	e.state = StateIdle
}
