// chess-server hosts chess games over HTTP and websockets.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/server"
	"github.com/lgbarn/chessrules-go/internal/session"
	"github.com/lgbarn/chessrules-go/internal/storage"
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
		fmt.Printf("chess-server version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM, then saves games and closes the store.
func run(cfg *config.Config) error {
	store, games, err := openGames(cfg)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	srv := server.New(cfg, games)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		if cfg.Verbosity > 0 {
			fmt.Fprintln(cfg.LogFile, "shutting down")
		}
		_ = srv.Shutdown()
	}()

	if err := srv.Listen(); err != nil {
		return err
	}
	return games.SaveAll()
}

// openGames builds the session registry, backed by a store when one is
// configured.
func openGames(cfg *config.Config) (*storage.Store, *session.Manager, error) {
	if !cfg.Storage.Enabled() {
		return nil, session.NewManager(), nil
	}

	store, err := storage.OpenConfig(cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	opts := []session.Option{session.WithStore(store)}
	if cfg.Storage.AutoSave {
		opts = append(opts, session.WithAutoSave())
	}
	return store, session.NewManager(opts...), nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-server [options]\n\n")
	fmt.Fprintf(os.Stderr, "Serves chess games over a JSON API and a websocket feed.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nRoutes:\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games             create a game, optional {\"fen\": ...}\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id         game view\n")
	fmt.Fprintf(os.Stderr, "  POST   /api/games/:id/move    {\"move\": \"e2e4\"}\n")
	fmt.Fprintf(os.Stderr, "  GET    /api/games/:id/moves   legal moves, optional ?square=e2\n")
	fmt.Fprintf(os.Stderr, "  GET    /ws/games/:id          live game feed\n")
}
