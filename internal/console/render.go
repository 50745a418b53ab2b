package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fair_rps/internal/game"
)

// RenderMenu prints the numbered move list.
func RenderMenu(w io.Writer, moves *game.MoveSet) {
	fmt.Fprintln(w, "Available moves:")
	for i, name := range moves.Names() {
		fmt.Fprintf(w, "%d - %s\n", i+1, name)
	}
	fmt.Fprintln(w, "0 - exit")
	fmt.Fprintln(w, "? - help")
}

// RenderTable prints the outcome matrix with aligned columns. Each cell is the
// result of the row move played against the column move.
func RenderTable(w io.Writer, table *game.OutcomeMatrix) error {
	fmt.Fprintln(w, "Win/Lose/Draw Table:")

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	fmt.Fprintf(tw, "Moves\t%s\t\n", strings.Join(table.Moves, "\t"))
	for i, name := range table.Moves {
		cells := make([]string, len(table.Moves))
		for j := range table.Moves {
			cells[j] = table.At(i, j).String()
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", name, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// RenderResult prints the resolved round and the disclosed key.
func RenderResult(w io.Writer, playerMove, computerMove string, outcome game.Outcome, keyHex, digestHex string) {
	fmt.Fprintf(w, "Your move: %s\n", playerMove)
	fmt.Fprintf(w, "Computer move: %s\n", computerMove)
	switch outcome {
	case game.OutcomeDraw:
		fmt.Fprintln(w, "It's a draw!")
	default:
		fmt.Fprintf(w, "You %s!\n", outcome)
	}
	fmt.Fprintf(w, "HMAC key: %s\n", keyHex)
	fmt.Fprintf(w, "Verify: verify -key %s -move %s -hmac %s\n", keyHex, computerMove, digestHex)
}
