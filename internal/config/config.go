// Package config provides configuration for the chess rules hosts: the
// HTTP game server and the perft tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity controls diagnostics: 0=nothing, 1=summary, 2=running commentary
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Settings grouped by host component
	Server  *ServerConfig
	Storage *StorageConfig
	Perft   *PerftConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Server:     NewServerConfig(),
		Storage:    NewStorageConfig(),
		Perft:      NewPerftConfig(),
	}
}

// Validate checks the configuration for values no component can run with.
// Errors wrap errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return invalid("verbosity %d", c.Verbosity)
	}
	if c.Server.Addr == "" {
		return invalid("empty listen address")
	}
	if c.Server.BodyLimit <= 0 {
		return invalid("body limit %d", c.Server.BodyLimit)
	}
	if c.Server.PerftTimeout < 0 {
		return invalid("perft timeout %v", c.Server.PerftTimeout)
	}
	if c.Storage.AutoSave && c.Storage.DataDir == "" && !c.Storage.InMemory {
		return invalid("auto-save needs a data directory or in-memory storage")
	}
	if c.Perft.Depth < 0 {
		return invalid("perft depth %d", c.Perft.Depth)
	}
	if c.Perft.Workers < 0 {
		return invalid("perft workers %d", c.Perft.Workers)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidConfig)
}
