package game

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewMoveSetRejectsBadCounts(t *testing.T) {
	cases := [][]string{
		nil,
		{"rock"},
		{"rock", "paper"},
		{"rock", "rock", "paper"},
		{"a", "b", "c", "d"},
		{"a", "b", "c", "a", "d"},
	}

	for _, names := range cases {
		m, err := NewMoveSet(names)
		if !errors.Is(err, ErrInvalidMoveCount) {
			t.Fatalf("NewMoveSet(%v) err = %v; want ErrInvalidMoveCount", names, err)
		}
		if m != nil {
			t.Fatalf("NewMoveSet(%v) returned a partial set", names)
		}
	}
}

func TestNewMoveSetDedupPreservesOrder(t *testing.T) {
	m, err := NewMoveSet([]string{"b", "a", "b", "c", "a", "d", "e"})
	if err != nil {
		t.Fatalf("NewMoveSet: %v", err)
	}

	want := []string{"b", "a", "c", "d", "e"}
	if got := m.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v; want %v", got, want)
	}
	for i, name := range want {
		pos, err := m.Position(name)
		if err != nil {
			t.Fatalf("Position(%s): %v", name, err)
		}
		if pos != i {
			t.Fatalf("Position(%s) = %d; want %d", name, pos, i)
		}
	}
}

func TestMoveSetIsImmutable(t *testing.T) {
	input := []string{"rock", "paper", "scissors"}
	m := mustMoves(t, input...)

	input[0] = "changed"
	names := m.Names()
	names[1] = "changed"

	if got, _ := m.Name(0); got != "rock" {
		t.Fatalf("Name(0) = %s after caller mutation", got)
	}
	if got, _ := m.Name(1); got != "paper" {
		t.Fatalf("Name(1) = %s after mutating Names() result", got)
	}
}

func TestMoveSetLookups(t *testing.T) {
	m := mustMoves(t, "rock", "paper", "scissors")

	if m.Len() != 3 {
		t.Fatalf("Len() = %d", m.Len())
	}
	if !m.Contains("paper") || m.Contains("spock") {
		t.Fatal("Contains gives wrong answer")
	}
	if _, err := m.Position("spock"); !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("Position(spock) err = %v", err)
	}
	if _, err := m.Name(3); !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("Name(3) err = %v", err)
	}
	if _, err := m.Name(-1); !errors.Is(err, ErrUnknownMove) {
		t.Fatalf("Name(-1) err = %v", err)
	}
	if m.String() != "rock, paper, scissors" {
		t.Fatalf("String() = %q", m.String())
	}
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		m, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%s): %v", name, err)
		}
		if m.Len()%2 == 0 {
			t.Fatalf("Preset(%s) has even size %d", name, m.Len())
		}
	}
	if _, err := Preset("nope"); err == nil {
		t.Fatal("expected error for unknown preset")
	}
}

func TestPresetRPS7(t *testing.T) {
	m, err := Preset("rps7")
	if err != nil {
		t.Fatalf("preset: %v", err)
	}

	for _, b := range []string{"fire", "scissors", "sponge"} {
		if got, _ := Resolve(m, "rock", b); got != OutcomeWin {
			t.Fatalf("rock vs %s = %s; want win", b, got)
		}
	}
	for _, b := range []string{"paper", "air", "water"} {
		if got, _ := Resolve(m, "rock", b); got != OutcomeLose {
			t.Fatalf("rock vs %s = %s; want lose", b, got)
		}
	}
}
