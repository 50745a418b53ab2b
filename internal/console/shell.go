package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"fair_rps/internal/commitment"
	"fair_rps/internal/game"
	"fair_rps/internal/logger"
	"fair_rps/internal/match"
)

// Shell plays one round on a line-oriented terminal.
type Shell struct {
	in     *bufio.Scanner
	out    io.Writer
	engine *match.Engine
}

func NewShell(in io.Reader, out io.Writer, engine *match.Engine) *Shell {
	return &Shell{
		in:     bufio.NewScanner(in),
		out:    out,
		engine: engine,
	}
}

// Run commits to a computer move, then prompts until the player picks a
// valid move or exits. It returns nil result when the player leaves.
func (s *Shell) Run() (*match.RoundResult, error) {
	moves := s.engine.Moves()

	fmt.Fprintln(s.out, "Welcome to the Rock-Paper-Scissors game!")
	fmt.Fprintln(s.out, `Type "?" for help.`)

	digest, err := s.engine.Start()
	if err != nil {
		return nil, fmt.Errorf("start round: %w", err)
	}
	logger.Debug("round committed", "moves", moves.Len())

	fmt.Fprintf(s.out, "HMAC: %s\n", commitment.EncodeHex(digest))
	RenderMenu(s.out, moves)

	for {
		fmt.Fprint(s.out, "Enter your move: ")
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return nil, fmt.Errorf("read input: %w", err)
			}
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, "Goodbye!")
			return nil, nil
		}

		sel, err := ParseSelection(s.in.Text(), moves)
		if err != nil {
			s.reprompt(err)
			continue
		}

		switch sel.Kind {
		case KindExit:
			fmt.Fprintln(s.out, "Goodbye!")
			return nil, nil
		case KindHelp:
			if err := RenderTable(s.out, game.BuildTable(moves)); err != nil {
				return nil, fmt.Errorf("render table: %w", err)
			}
			RenderMenu(s.out, moves)
			continue
		}

		res, err := s.engine.Play(sel.Move)
		if err != nil {
			if errors.Is(err, game.ErrUnknownMove) || errors.Is(err, match.ErrNoMoveSelected) {
				s.reprompt(err)
				continue
			}
			return nil, err
		}

		logger.Info("round resolved", "player", res.PlayerMove, "computer", res.ComputerMove, "outcome", res.Outcome)
		RenderResult(s.out, res.PlayerMove, res.ComputerMove, res.Outcome, res.KeyHex(), res.DigestHex())
		return res, nil
	}
}

func (s *Shell) reprompt(err error) {
	logger.Debug("rejected input", "error", err)
	if errors.Is(err, match.ErrNoMoveSelected) {
		fmt.Fprintln(s.out, "No move selected. Try again.")
	} else {
		fmt.Fprintln(s.out, "Invalid move. Try again.")
	}
	RenderMenu(s.out, s.engine.Moves())
}
