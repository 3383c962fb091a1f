// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Listener options
	addr        = flag.String("addr", ":8080", "Listen address")
	origins     = flag.String("origins", "*", "Comma-separated CORS allowed origins")
	noWebsocket = flag.Bool("nows", false, "Don't serve the websocket game feed")
	noAccessLog = flag.Bool("noaccesslog", false, "Don't log each request")

	// Persistence options
	dataDir  = flag.String("data", "", "Directory for persisted games (default: no persistence)")
	memStore = flag.Bool("memstore", false, "Keep a store in memory only")
	autoSave = flag.Bool("autosave", false, "Persist every change instead of saving on shutdown")
	syncSave = flag.Bool("sync", false, "Sync the store to disk on every write")

	// Perft endpoint
	workers = flag.Int("workers", 0, "Perft worker goroutines (0 = one per CPU)")

	// Logging options
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=normal, 2=debug")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	applyServerFlags(cfg)
	applyStorageFlags(cfg)
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *addr
	cfg.Server.AllowOrigins = *origins
	cfg.Server.EnableWebsocket = !*noWebsocket
	cfg.Server.AccessLog = !*noAccessLog
}

func applyStorageFlags(cfg *config.Config) {
	cfg.Storage.DataDir = *dataDir
	cfg.Storage.InMemory = *memStore
	cfg.Storage.AutoSave = *autoSave
	cfg.Storage.SyncWrites = *syncSave
}
