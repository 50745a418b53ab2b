package handlers

import (
	"net/http"
	"time"

	"fair_rps/internal/commitment"
	"fair_rps/internal/game"
	"fair_rps/internal/logger"
	"fair_rps/internal/match"
	"fair_rps/internal/service"

	"github.com/gin-gonic/gin"
)

type moveInfo struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type startRoundResponse struct {
	RoundID   string    `json:"round_id"`
	HMAC      string    `json:"hmac"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type playRequest struct {
	Move  string `json:"move"`
	Index int    `json:"index"`
}

type playResponse struct {
	PlayerMove   string       `json:"player_move"`
	ComputerMove string       `json:"computer_move"`
	Outcome      game.Outcome `json:"outcome"`
	Key          string       `json:"key"`
	HMAC         string       `json:"hmac"`
}

type verifyRequest struct {
	Key  string `json:"key" binding:"required"`
	Move string `json:"move" binding:"required"`
	HMAC string `json:"hmac" binding:"required"`
}

// Moves lists the configured moves with their 1-based menu index.
func (h *Handler) Moves(c *gin.Context) {
	names := h.Rounds.Moves().Names()
	moves := make([]moveInfo, len(names))
	for i, name := range names {
		moves[i] = moveInfo{Index: i + 1, Name: name}
	}
	c.JSON(http.StatusOK, gin.H{"moves": moves})
}

// Rules returns the outcome matrix for every pair of moves.
func (h *Handler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, h.Rounds.Rules())
}

// StartRound commits to a computer move and returns the HMAC and a token
// for the move request.
func (h *Handler) StartRound(c *gin.Context) {
	round, err := h.Rounds.StartRound(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}

	token, err := h.Tokens.Generate(round.ID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, startRoundResponse{
		RoundID:   round.ID,
		HMAC:      commitment.EncodeHex(round.Digest),
		Token:     token,
		ExpiresAt: round.ExpiresAt,
	})
}

// PlayRound resolves the player's move and discloses the key.
func (h *Handler) PlayRound(c *gin.Context) {
	var req playRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	move := req.Move
	if move == "" && req.Index != 0 {
		name, err := h.Rounds.MoveByIndex(req.Index)
		if err != nil {
			abortWithError(c, err)
			return
		}
		move = name
	}

	ctx := logger.ContextWithRoundID(c.Request.Context(), c.Param("id"))
	res, err := h.Rounds.PlayRound(ctx, c.Param("id"), move)
	if err != nil {
		if service.IsClientError(err) {
			logger.WithContext(ctx).Debug("move rejected", "move", move, "error", err)
		} else {
			logger.WithContext(ctx).Warn("play round failed", "error", err)
		}
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPlayResponse(res))
}

// Verify recomputes HMAC-SHA256(key, move) against a published HMAC.
func (h *Handler) Verify(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key, move and hmac are required"})
		return
	}

	valid, err := h.Rounds.Verify(req.Key, req.Move, req.HMAC)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key and hmac must be hex"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": valid})
}

func toPlayResponse(res *match.RoundResult) playResponse {
	return playResponse{
		PlayerMove:   res.PlayerMove,
		ComputerMove: res.ComputerMove,
		Outcome:      res.Outcome,
		Key:          res.KeyHex(),
		HMAC:         res.DigestHex(),
	}
}
