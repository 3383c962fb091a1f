// chess-play replays games given as lines of long algebraic moves and prints
// each final position, status and move list.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
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
		fmt.Printf("chess-play version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupFiles(cfg)

	var gw output.GameWriter
	if *jsonOutput {
		gw = output.NewJSONWriter(cfg.OutputFile)
	} else {
		gw = output.NewTextWriter(cfg.OutputFile, *lineLength)
	}

	r := &replayer{cfg: cfg, fen: *startFEN, writer: gw, stopOnError: *stopOnErr, stats: *showStats}
	inputs := flag.Args()
	if len(inputs) == 0 {
		r.processInput("stdin", os.Stdin)
	}
	for _, name := range inputs {
		file, err := os.Open(name) //nolint:gosec // G304: reading user-named input files is the purpose
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening %s: %v\n", name, err)
			r.failed++
			continue
		}
		r.processInput(name, file)
		file.Close()
	}

	if err := gw.Close(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
		os.Exit(1)
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d games replayed, %d rejected\n", r.games, r.failed)
	}
	if r.failed > 0 {
		os.Exit(1)
	}
}

// replayer plays one game per input line.
type replayer struct {
	cfg         *config.Config
	fen         string
	writer      output.GameWriter
	stopOnError bool
	stats       bool

	games  int
	failed int
}

// processInput replays every non-blank line of r. Text after '#' is a
// comment.
func (r *replayer) processInput(name string, in io.Reader) {
	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		snap, err := r.replay(line)
		if err != nil {
			fmt.Fprintf(r.cfg.LogFile, "%s:%d: %v\n", name, lineNum, err)
			r.failed++
			if r.stopOnError {
				return
			}
			continue
		}
		if err := r.writer.WriteGame(&snap); err != nil {
			fmt.Fprintf(r.cfg.LogFile, "%s:%d: %v\n", name, lineNum, err)
			r.failed++
			continue
		}
		r.games++
		if r.stats {
			r.writeStats(name, lineNum, &snap)
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(r.cfg.LogFile, "Error reading %s: %v\n", name, err)
	}
}

// replay plays the moves of one line from the starting position.
func (r *replayer) replay(line string) (engine.Snapshot, error) {
	res := processing.ValidateMoves(r.fen, line)
	if !res.Valid {
		return engine.Snapshot{}, res.Err
	}
	return res.Final, nil
}

// writeStats logs the analysis of a replayed game.
func (r *replayer) writeStats(name string, lineNum int, snap *engine.Snapshot) {
	a, err := processing.AnalyzeGame(snap)
	if err != nil {
		fmt.Fprintf(r.cfg.LogFile, "%s:%d: %v\n", name, lineNum, err)
		return
	}
	fmt.Fprintf(r.cfg.LogFile, "%s:%d: %d plies, %d captures, %d checks, %d castles, %d en passant, %d promotions, max repetitions %d\n",
		name, lineNum, a.Plies, a.Captures, a.Checks, a.Castles, a.EnPassants, a.Promotions, a.MaxRepetitions)
}

// setupFiles configures the output and log files based on command-line flags.
func setupFiles(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
			os.Exit(1)
		}
		cfg.OutputFile = file
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-play [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays one game per input line, e.g. \"e2e4 e7e5 g1f3\".\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
