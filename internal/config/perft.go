package config

import "runtime"

// PerftConfig holds settings for the perft tool.
type PerftConfig struct {
	// FEN is the root position
	FEN string

	// Depth is the search depth in plies
	Depth int

	// Workers is the number of goroutines; 0 means one per CPU
	Workers int

	// Divide prints the node count below each root move
	Divide bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   4,
		Workers: runtime.NumCPU(),
	}
}
