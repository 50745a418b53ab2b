package game

import (
	"fmt"
	"strings"
)

// MoveSet is an immutable ordered list of distinct move names.
// The index of a move is its canonical position on the circle.
type MoveSet struct {
	names     []string
	positions map[string]int
}

// NewMoveSet deduplicates names (first occurrence wins) and validates that
// the remaining count is odd and at least 3.
func NewMoveSet(names []string) (*MoveSet, error) {
	positions := make(map[string]int, len(names))
	unique := make([]string, 0, len(names))
	for _, name := range names {
		if _, seen := positions[name]; seen {
			continue
		}
		positions[name] = len(unique)
		unique = append(unique, name)
	}

	if len(unique) < 3 || len(unique)%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMoveCount, len(unique))
	}

	return &MoveSet{names: unique, positions: positions}, nil
}

// Len returns N.
func (m *MoveSet) Len() int {
	return len(m.names)
}

// Names returns a copy of the moves in canonical order.
func (m *MoveSet) Names() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Name returns the move at position i.
func (m *MoveSet) Name(i int) (string, error) {
	if i < 0 || i >= len(m.names) {
		return "", fmt.Errorf("%w: position %d out of range [0,%d)", ErrUnknownMove, i, len(m.names))
	}
	return m.names[i], nil
}

// Position returns the canonical index of name.
func (m *MoveSet) Position(name string) (int, error) {
	pos, ok := m.positions[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
	return pos, nil
}

// Contains reports whether name is part of the set.
func (m *MoveSet) Contains(name string) bool {
	_, ok := m.positions[name]
	return ok
}

func (m *MoveSet) String() string {
	return strings.Join(m.names, ", ")
}
