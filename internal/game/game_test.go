package game

import (
	"errors"
	"fmt"
	"testing"
)

func mustMoves(t *testing.T, names ...string) *MoveSet {
	t.Helper()
	m, err := NewMoveSet(names)
	if err != nil {
		t.Fatalf("NewMoveSet(%v): %v", names, err)
	}
	return m
}

func numbered(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("m%d", i)
	}
	return out
}

func TestResolveClassic(t *testing.T) {
	m := mustMoves(t, "rock", "paper", "scissors")

	cases := []struct {
		a, b string
		want Outcome
	}{
		{"rock", "scissors", OutcomeWin},
		{"rock", "paper", OutcomeLose},
		{"rock", "rock", OutcomeDraw},
		{"paper", "rock", OutcomeWin},
		{"paper", "scissors", OutcomeLose},
		{"scissors", "paper", OutcomeWin},
		{"scissors", "rock", OutcomeLose},
	}

	for _, tc := range cases {
		got, err := Resolve(m, tc.a, tc.b)
		if err != nil {
			t.Fatalf("Resolve(%s,%s): %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Fatalf("Resolve(%s,%s) = %s; want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestResolveLizardSpockPreset(t *testing.T) {
	m, err := Preset("lizard-spock")
	if err != nil {
		t.Fatalf("preset: %v", err)
	}

	cases := []struct {
		a, b string
		want Outcome
	}{
		{"rock", "scissors", OutcomeWin},
		{"rock", "lizard", OutcomeWin},
		{"rock", "paper", OutcomeLose},
		{"rock", "spock", OutcomeLose},
		{"paper", "spock", OutcomeWin},
		{"spock", "scissors", OutcomeWin},
		{"lizard", "spock", OutcomeWin},
		{"scissors", "lizard", OutcomeWin},
		{"lizard", "paper", OutcomeWin},
	}

	for _, tc := range cases {
		got, err := Resolve(m, tc.a, tc.b)
		if err != nil {
			t.Fatalf("Resolve(%s,%s): %v", tc.a, tc.b, err)
		}
		if got != tc.want {
			t.Fatalf("Resolve(%s,%s) = %s; want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

// With the order [rock, paper, scissors, lizard, spock] the circular rule
// still gives every move exactly two wins; rock loses to the two that follow it.
func TestResolveFiveInListedOrder(t *testing.T) {
	m := mustMoves(t, "rock", "paper", "scissors", "lizard", "spock")

	want := map[string]Outcome{
		"paper":    OutcomeLose,
		"scissors": OutcomeLose,
		"lizard":   OutcomeWin,
		"spock":    OutcomeWin,
		"rock":     OutcomeDraw,
	}
	for b, w := range want {
		got, err := Resolve(m, "rock", b)
		if err != nil {
			t.Fatalf("Resolve(rock,%s): %v", b, err)
		}
		if got != w {
			t.Fatalf("Resolve(rock,%s) = %s; want %s", b, got, w)
		}
	}
}

func TestResolveBoundaryDistance(t *testing.T) {
	for _, n := range []int{3, 5, 7} {
		half := n / 2
		// half steps back is still a win, one more is a loss
		if got := ResolvePositions(n, half, 0); got != OutcomeWin {
			t.Fatalf("n=%d distance %d = %s; want win", n, half, got)
		}
		if got := ResolvePositions(n, half+1, 0); got != OutcomeLose {
			t.Fatalf("n=%d distance %d = %s; want lose", n, half+1, got)
		}
	}
}

func TestResolveFairnessAllSizes(t *testing.T) {
	for n := 3; n <= 21; n += 2 {
		m := mustMoves(t, numbered(n)...)
		names := m.Names()
		for _, a := range names {
			wins, losses := 0, 0
			for _, b := range names {
				got, err := Resolve(m, a, b)
				if err != nil {
					t.Fatalf("n=%d Resolve(%s,%s): %v", n, a, b, err)
				}
				switch got {
				case OutcomeWin:
					wins++
				case OutcomeLose:
					losses++
				case OutcomeDraw:
					if a != b {
						t.Fatalf("n=%d Resolve(%s,%s) = draw for distinct moves", n, a, b)
					}
				}
				if a == b && got != OutcomeDraw {
					t.Fatalf("n=%d Resolve(%s,%s) = %s; want draw", n, a, b, got)
				}
			}
			if wins != n/2 || losses != n/2 {
				t.Fatalf("n=%d move %s: wins=%d losses=%d; want %d each", n, a, wins, losses, n/2)
			}
		}
	}
}

func TestResolveAntisymmetric(t *testing.T) {
	for n := 3; n <= 15; n += 2 {
		for a := 0; a < n; a++ {
			for b := 0; b < n; b++ {
				if a == b {
					continue
				}
				ab := ResolvePositions(n, a, b)
				ba := ResolvePositions(n, b, a)
				if ab.Invert() != ba {
					t.Fatalf("n=%d (%d,%d)=%s but (%d,%d)=%s", n, a, b, ab, b, a, ba)
				}
			}
		}
	}
}

func TestResolveUnknownMove(t *testing.T) {
	m := mustMoves(t, "rock", "paper", "scissors")

	if _, err := Resolve(m, "rock", "lizard"); !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("expected ErrUnknownMove, got %v", err)
	}
	if _, err := Resolve(m, "", "rock"); !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("expected ErrUnknownMove for empty name, got %v", err)
	}
}

func TestOutcomeInvert(t *testing.T) {
	if OutcomeWin.Invert() != OutcomeLose || OutcomeLose.Invert() != OutcomeWin || OutcomeDraw.Invert() != OutcomeDraw {
		t.Fatal("Invert does not swap win and lose")
	}
}
