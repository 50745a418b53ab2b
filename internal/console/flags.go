package console

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"fair_rps/internal/commitment"
	"fair_rps/internal/config"
	"fair_rps/internal/game"
)

// Usage is printed when the move list is rejected.
const Usage = `Invalid arguments. Please provide an odd number (at least 3) of distinct moves.
Example: rps rock paper scissors
         rps -preset lizard-spock`

// GameConfig holds command-line options for the console game.
type GameConfig struct {
	Preset   string
	LogLevel string
	LogJSON  bool
	Moves    []string
}

// ParseGameConfig parses flags; the remaining arguments are the moves.
// defaults comes from the environment.
func ParseGameConfig(fs *flag.FlagSet, args []string, defaults *config.Config) (GameConfig, error) {
	cfg := GameConfig{LogLevel: "warn"}
	if defaults != nil {
		cfg.Preset = defaults.Preset
		cfg.LogJSON = defaults.LogJSON
	}
	fs.StringVar(&cfg.Preset, "preset", cfg.Preset, "built-in move list: "+strings.Join(game.PresetNames(), ", "))
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.LogJSON, "log-json", cfg.LogJSON, "log as JSON")
	if err := fs.Parse(args); err != nil {
		return GameConfig{}, err
	}
	cfg.Moves = config.TrimMoves(fs.Args())
	if len(cfg.Moves) == 0 && cfg.Preset == "" && defaults != nil {
		cfg.Moves = config.TrimMoves(defaults.Moves)
	}
	return cfg, nil
}

// MoveSet builds the move set from the positional moves, or the preset when
// no moves were given.
func (c GameConfig) MoveSet() (*game.MoveSet, error) {
	if len(c.Moves) == 0 && c.Preset != "" {
		return game.Preset(c.Preset)
	}
	return game.NewMoveSet(c.Moves)
}

// VerifyConfig holds the disclosed values a player wants to check.
type VerifyConfig struct {
	Key  string
	Move string
	HMAC string
}

// ParseVerifyConfig parses the verify command's flags.
func ParseVerifyConfig(fs *flag.FlagSet, args []string) (VerifyConfig, error) {
	var cfg VerifyConfig
	fs.StringVar(&cfg.Key, "key", "", "disclosed HMAC key (hex)")
	fs.StringVar(&cfg.Move, "move", "", "disclosed computer move")
	fs.StringVar(&cfg.HMAC, "hmac", "", "HMAC published before the round (hex)")
	if err := fs.Parse(args); err != nil {
		return VerifyConfig{}, err
	}
	if cfg.Key == "" || cfg.Move == "" || cfg.HMAC == "" {
		return VerifyConfig{}, errors.New("-key, -move and -hmac are required")
	}
	return cfg, nil
}

// RunVerify recomputes HMAC-SHA256(key, move) and reports whether it matches.
func RunVerify(cfg VerifyConfig, out io.Writer) (bool, error) {
	if out == nil {
		return false, errors.New("output is required")
	}
	ok, err := commitment.VerifyHex(commitment.HMACSHA256, cfg.Key, cfg.Move, cfg.HMAC)
	if err != nil {
		return false, err
	}
	if ok {
		_, err = fmt.Fprintf(out, "valid: HMAC-SHA256(key, %q) matches the published HMAC\n", cfg.Move)
	} else {
		_, err = fmt.Fprintf(out, "MISMATCH: HMAC-SHA256(key, %q) = %s\n", cfg.Move, recompute(cfg))
	}
	return ok, err
}

func recompute(cfg VerifyConfig) string {
	key, err := commitment.DecodeHex(cfg.Key)
	if err != nil {
		return "?"
	}
	return commitment.EncodeHex(commitment.HMACSHA256(key, []byte(cfg.Move)))
}
