package ws

import "fair_rps/internal/game"

// client → server
type ClientMessage struct {
	Type  string `json:"type"`
	Move  string `json:"move,omitempty"`  // move name
	Index int    `json:"index,omitempty"` // 1-based menu index, used when Move is empty
}

// server → client
type CommitPayload struct {
	Type    string   `json:"type"`
	RoundID string   `json:"round_id"`
	HMAC    string   `json:"hmac"`
	Moves   []string `json:"moves"`
}

type RulesPayload struct {
	Type string `json:"type"`
	*game.OutcomeMatrix
}

type ResultPayload struct {
	Type         string       `json:"type"`
	PlayerMove   string       `json:"player_move"`
	ComputerMove string       `json:"computer_move"`
	Outcome      game.Outcome `json:"outcome"`
	Key          string       `json:"key"`
	HMAC         string       `json:"hmac"`
}

type ErrorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type PongPayload struct {
	Type string `json:"type"`
}

func errorMessage(msg string) ErrorPayload {
	return ErrorPayload{Type: MsgError, Message: msg}
}
