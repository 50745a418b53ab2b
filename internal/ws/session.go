package ws

import (
	"context"
	"encoding/json"
	"errors"

	"fair_rps/internal/commitment"
	"fair_rps/internal/game"
	"fair_rps/internal/logger"
	"fair_rps/internal/match"
	"fair_rps/internal/service"

	"github.com/google/uuid"
)

const TransportWS = "ws"

// Session drives one commit-reveal round for one connection. It is only used
// from the connection's read goroutine.
type Session struct {
	ID     string
	engine *match.Engine
	rules  *game.OutcomeMatrix
	ctx    context.Context
}

func NewSession(rounds *service.RoundService) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		engine: rounds.NewEngine(),
		rules:  rounds.Rules(),
		ctx:    logger.ContextWithRoundID(context.Background(), id),
	}
}

// Start commits to the computer move. The key stays inside the engine.
func (s *Session) Start() (CommitPayload, error) {
	digest, err := s.engine.Start()
	if err != nil {
		return CommitPayload{}, err
	}
	service.RoundsStarted.WithLabelValues(TransportWS).Inc()
	logger.WithContext(s.ctx).Debug("ws round committed")

	return CommitPayload{
		Type:    MsgCommit,
		RoundID: s.ID,
		HMAC:    commitment.EncodeHex(digest),
		Moves:   s.engine.Moves().Names(),
	}, nil
}

// Handle processes one client frame and returns the reply, if any, and
// whether the round is over.
func (s *Session) Handle(raw []byte) (interface{}, bool) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return errorMessage("malformed message"), false
	}

	switch msg.Type {
	case MsgPing:
		return PongPayload{Type: MsgPong}, false
	case MsgHelp:
		return RulesPayload{Type: MsgRules, OutcomeMatrix: s.rules}, false
	case MsgExit:
		logger.WithContext(s.ctx).Debug("ws round abandoned")
		return nil, true
	case MsgMove:
		return s.play(msg)
	default:
		return errorMessage("unknown message type: " + msg.Type), false
	}
}

func (s *Session) play(msg ClientMessage) (interface{}, bool) {
	move := msg.Move
	if move == "" && msg.Index != 0 {
		name, err := s.engine.Moves().Name(msg.Index - 1)
		if err != nil {
			return errorMessage("invalid move"), false
		}
		move = name
	}

	res, err := s.engine.Play(move)
	switch {
	case errors.Is(err, match.ErrNoMoveSelected):
		return errorMessage("no move selected"), false
	case errors.Is(err, game.ErrUnknownMove):
		return errorMessage("invalid move"), false
	case err != nil:
		logger.WithContext(s.ctx).Error("ws round failed", "error", err)
		return errorMessage("internal error"), true
	}

	service.RoundsResolved.WithLabelValues(TransportWS, res.Outcome.String()).Inc()
	logger.WithContext(s.ctx).Info("round resolved",
		"player", res.PlayerMove, "computer", res.ComputerMove, "outcome", res.Outcome)

	return ResultPayload{
		Type:         MsgResult,
		PlayerMove:   res.PlayerMove,
		ComputerMove: res.ComputerMove,
		Outcome:      res.Outcome,
		Key:          res.KeyHex(),
		HMAC:         res.DigestHex(),
	}, true
}
