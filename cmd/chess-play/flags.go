// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	startFEN   = flag.String("fen", "", "Starting position for every game (default: the initial position)")
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output games as a JSON array")
	lineLength = flag.Int("w", 80, "Maximum line length of move lists")
	stopOnErr  = flag.Bool("stop", false, "Stop at the first rejected move")
	showStats  = flag.Bool("stats", false, "Log move statistics for every replayed game")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	quiet      = flag.Bool("s", false, "Silent mode (no game count)")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	if *quiet {
		cfg.Verbosity = 0
	}
}
