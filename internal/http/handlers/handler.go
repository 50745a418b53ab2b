package handlers

import (
	"errors"
	"net/http"

	"fair_rps/internal/game"
	"fair_rps/internal/match"
	"fair_rps/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Rounds        *service.RoundService
	Tokens        *service.RoundTokens
	AllowedOrigin string
}

func NewHandler(rounds *service.RoundService, tokens *service.RoundTokens) *Handler {
	return &Handler{
		Rounds: rounds,
		Tokens: tokens,
	}
}

// abortWithError maps service errors to HTTP status codes.
func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRoundNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "round not found"})
	case errors.Is(err, match.ErrNoMoveSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no move selected"})
	case errors.Is(err, game.ErrUnknownMove):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid move"})
	default:
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
