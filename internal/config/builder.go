package config

import (
	"io"
	"time"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// BuildValid returns the built Config after validating it.
func (b *ConfigBuilder) BuildValid() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithAddr sets the server listen address.
func (b *ConfigBuilder) WithAddr(addr string) *ConfigBuilder {
	b.cfg.Server.Addr = addr
	return b
}

// WithAllowOrigins sets the CORS allow-list.
func (b *ConfigBuilder) WithAllowOrigins(origins string) *ConfigBuilder {
	b.cfg.Server.AllowOrigins = origins
	return b
}

// WithWebsocket enables or disables the live game feed.
func (b *ConfigBuilder) WithWebsocket(enabled bool) *ConfigBuilder {
	b.cfg.Server.EnableWebsocket = enabled
	return b
}

// WithAccessLog enables or disables the request access log.
func (b *ConfigBuilder) WithAccessLog(enabled bool) *ConfigBuilder {
	b.cfg.Server.AccessLog = enabled
	return b
}

// WithPerftTimeout bounds the time a perft request may take.
func (b *ConfigBuilder) WithPerftTimeout(d time.Duration) *ConfigBuilder {
	b.cfg.Server.PerftTimeout = d
	return b
}

// WithDataDir sets the snapshot store directory.
func (b *ConfigBuilder) WithDataDir(dir string) *ConfigBuilder {
	b.cfg.Storage.DataDir = dir
	return b
}

// WithInMemoryStorage keeps the snapshot store in memory.
func (b *ConfigBuilder) WithInMemoryStorage(enabled bool) *ConfigBuilder {
	b.cfg.Storage.InMemory = enabled
	return b
}

// WithAutoSave enables write-through persistence of game changes.
func (b *ConfigBuilder) WithAutoSave(enabled bool) *ConfigBuilder {
	b.cfg.Storage.AutoSave = enabled
	return b
}

// WithPerft sets the perft root position and depth.
func (b *ConfigBuilder) WithPerft(fen string, depth int) *ConfigBuilder {
	b.cfg.Perft.FEN = fen
	b.cfg.Perft.Depth = depth
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithDivide enables per-root-move perft output.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the diagnostics writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
