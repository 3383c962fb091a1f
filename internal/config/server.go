package config

import "time"

// ServerConfig holds settings for the HTTP and websocket game server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// AllowOrigins is the CORS allow-list passed to the cors middleware
	AllowOrigins string

	// ReadTimeout and WriteTimeout bound a single request
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// BodyLimit is the maximum request body size in bytes
	BodyLimit int

	// EnableWebsocket mounts the live game feed under /ws
	EnableWebsocket bool

	// AccessLog enables the per-request access log
	AccessLog bool

	// PerftTimeout bounds a perft request; zero means no limit
	PerftTimeout time.Duration
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:            ":8080",
		AllowOrigins:    "*",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    10 * time.Second,
		BodyLimit:       64 * 1024,
		EnableWebsocket: true,
		AccessLog:       true,
		PerftTimeout:    30 * time.Second,
	}
}
