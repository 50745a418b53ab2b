package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"fair_rps/internal/commitment"
	"fair_rps/internal/config"
	"fair_rps/internal/console"
	"fair_rps/internal/game"
	"fair_rps/internal/logger"
	"fair_rps/internal/match"
)

func main() {
	env, err := config.Load()
	if err != nil {
		config.Exitf("load config: %v", err)
	}

	cfg, err := console.ParseGameConfig(flag.CommandLine, os.Args[1:], env)
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	logger.InitWriter(os.Stderr, cfg.LogLevel, cfg.LogJSON)

	moves, err := cfg.MoveSet()
	if err != nil {
		if errors.Is(err, game.ErrInvalidMoveCount) {
			fmt.Fprintln(os.Stderr, console.Usage)
			os.Exit(1)
		}
		config.Exitf("%v", err)
	}

	keys, err := commitment.RandomKeys(env.KeyBytes, nil)
	if err != nil {
		config.Exitf("%v", err)
	}

	engine := match.NewEngine(moves, match.Config{Keys: keys})
	if _, err := console.NewShell(os.Stdin, os.Stdout, engine).Run(); err != nil {
		logger.Fatal("round failed", "error", err)
	}
}
