// Package testutil provides shared test utilities for the chess rules engine.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Common positions used across test files.
const (
	// FoolsMateMoves is the move sequence f3 e5 g4 Qh4#.
	FoolsMateMoves = "f2f3 e7e5 g2g4 d8h4"

	// KingsAndBishopsSameColour is K+B vs K+B with both bishops on dark squares.
	KingsAndBishopsSameColour = "8/8/8/4k3/8/8/8/2B1K1b1 w - - 0 1"

	// KingsAndBishopsOppositeColour is K+B vs K+B on opposite-coloured squares.
	KingsAndBishopsOppositeColour = "8/8/8/4k3/8/8/8/2B1Kb2 w - - 0 1"
)

// MustGameFromFEN creates a game from a FEN string.
// It calls t.Fatal if the FEN is rejected.
func MustGameFromFEN(t testing.TB, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q) error = %v", fen, err)
	}
	return g
}

// MustPlay plays space-separated long algebraic moves on g.
// It calls t.Fatal on the first move that is rejected.
func MustPlay(t testing.TB, g *engine.Game, moves string) {
	t.Helper()
	for _, uci := range strings.Fields(moves) {
		if err := g.PlayUCI(uci); err != nil {
			t.Fatalf("PlayUCI(%q) at ply %d error = %v", uci, g.Ply()+1, err)
		}
	}
}
