// chess-perft counts the leaf nodes of the legal move tree of a position.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if *showBoard {
		if pos, err := rootPosition(cfg.Perft); err == nil {
			output.WriteBoard(cfg.OutputFile, &pos)
			fmt.Fprintln(cfg.OutputFile)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	_, err := run(ctx, cfg)
	stop()
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootPosition(pc *config.PerftConfig) (engine.Position, error) {
	if pc.FEN == "" {
		return engine.NewInitialPosition(), nil
	}
	return engine.ParseFEN(pc.FEN)
}

// run searches the configured position and writes the results. It returns
// the total node count, or ctx's error if the search was interrupted.
func run(ctx context.Context, cfg *config.Config) (uint64, error) {
	pos, err := rootPosition(cfg.Perft)
	if err != nil {
		return 0, err
	}

	start := time.Now()
	var nodes uint64
	if cfg.Perft.Depth == 0 {
		nodes = engine.Perft(pos, 0)
	} else {
		results, err := worker.DivideContext(ctx, pos, cfg.Perft.Depth, worker.WithWorkers(cfg.Perft.Workers))
		if err != nil {
			return 0, err
		}
		if cfg.Perft.Divide {
			writeDivide(cfg.OutputFile, results)
		}
		nodes = worker.TotalNodes(results)
	}
	elapsed := time.Since(start)

	fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", nodes)
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "depth %d, %d workers, %v (%.0f nodes/s)\n",
			cfg.Perft.Depth, cfg.Perft.Workers, elapsed.Round(time.Millisecond), nodesPerSecond(nodes, elapsed))
	}
	return nodes, nil
}

// writeDivide prints one "move: nodes" line per root move.
func writeDivide(w io.Writer, results []worker.ProcessResult) {
	for _, r := range results {
		fmt.Fprintf(w, "%s: %d\n", r.Move, r.Nodes)
	}
	fmt.Fprintln(w)
}

func nodesPerSecond(nodes uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(nodes) / elapsed.Seconds()
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts the positions reachable in exactly -depth plies.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
