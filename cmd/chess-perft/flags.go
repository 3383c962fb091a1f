// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	fen        = flag.String("fen", "", "Root position (default: the starting position)")
	depth      = flag.Int("depth", 4, "Search depth in plies")
	workers    = flag.Int("workers", 0, "Worker goroutines (0 = one per CPU)")
	divide     = flag.Bool("divide", false, "Print the node count below each root move")
	showBoard  = flag.Bool("board", false, "Print the root position before searching")
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	verbosity  = flag.Int("v", 1, "Verbosity: 0=quiet, 1=timing summary")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.Perft.FEN = *fen
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}
