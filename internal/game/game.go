package game

import "errors"

// Outcome is the result of a move from the first player's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
	OutcomeDraw Outcome = "draw"
)

var (
	ErrInvalidMoveCount = errors.New("move list must contain an odd number (at least 3) of distinct moves")
	ErrUnknownMove      = errors.New("unknown move")
)

// Invert returns the outcome seen from the other side.
func (o Outcome) Invert() Outcome {
	switch o {
	case OutcomeWin:
		return OutcomeLose
	case OutcomeLose:
		return OutcomeWin
	default:
		return o
	}
}

func (o Outcome) String() string {
	return string(o)
}
