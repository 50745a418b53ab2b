package game

import (
	"fmt"
	"sort"
)

// Built-in move lists. Order matters: each move loses to the next N/2 moves.
var presets = map[string][]string{
	"classic":      {"rock", "paper", "scissors"},
	"lizard-spock": {"rock", "spock", "paper", "lizard", "scissors"},
	"rps7":         {"rock", "water", "air", "paper", "sponge", "scissors", "fire"},
}

// Preset returns the named built-in move set.
func Preset(name string) (*MoveSet, error) {
	names, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
	return NewMoveSet(names)
}

// PresetNames lists the built-in presets in alphabetical order.
func PresetNames() []string {
	out := make([]string, 0, len(presets))
	for name := range presets {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
