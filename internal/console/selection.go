package console

import (
	"fmt"
	"strconv"
	"strings"

	"fair_rps/internal/game"
)

// Kind tells the shell what the player asked for.
type Kind int

const (
	KindMove Kind = iota
	KindHelp
	KindExit
)

// Selection is one tokenized player input.
type Selection struct {
	Kind Kind
	Move string
}

// ParseSelection maps a raw input line to a selection: "0"/"exit" leaves,
// "?"/"help" shows the table, 1..N or a move name picks a move. Names are
// passed through as typed; the engine decides whether they exist.
func ParseSelection(input string, moves *game.MoveSet) (Selection, error) {
	input = strings.TrimSpace(input)

	switch strings.ToLower(input) {
	case "0", "exit":
		return Selection{Kind: KindExit}, nil
	case "?", "help":
		return Selection{Kind: KindHelp}, nil
	}

	if n, err := strconv.Atoi(input); err == nil {
		name, err := moves.Name(n - 1)
		if err != nil {
			return Selection{}, fmt.Errorf("%w: menu item %d", game.ErrUnknownMove, n)
		}
		return Selection{Kind: KindMove, Move: name}, nil
	}

	return Selection{Kind: KindMove, Move: input}, nil
}
