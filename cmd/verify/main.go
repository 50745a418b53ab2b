package main

import (
	"flag"
	"os"

	"fair_rps/internal/config"
	"fair_rps/internal/console"
)

func main() {
	cfg, err := console.ParseVerifyConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ok, err := console.RunVerify(cfg, os.Stdout)
	if err != nil {
		config.Exitf("verify: %v", err)
	}
	if !ok {
		os.Exit(1)
	}
}
