package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"K vs K", "8/8/8/4k3/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "8/8/8/4k3/8/8/8/2B1K3 w - - 0 1", true},
		{"K+N vs K", "8/8/8/4k3/8/8/8/1N2K3 w - - 0 1", true},
		{"K vs K+N", "1n6/8/8/4k3/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same colour", "8/8/8/4k3/8/8/8/2B1K1b1 w - - 0 1", true},
		{"K+B vs K+B opposite colour", "8/8/8/4k3/8/8/8/2B1Kb2 w - - 0 1", false},
		{"K+BB same colour one side", "8/8/8/4k3/8/8/8/B1B1K3 w - - 0 1", true},
		{"K+BB opposite colour one side", "8/8/8/4k3/8/8/8/1BB1K3 w - - 0 1", false},
		{"K+NN vs K", "8/8/8/4k3/8/8/8/1N2K1N1 w - - 0 1", false},
		{"K+B vs K+N", "8/8/8/4k3/8/8/8/2B1Kn2 w - - 0 1", false},
		{"K+P vs K", "8/8/8/4k3/8/8/4P3/4K3 w - - 0 1", false},
		{"K+R vs K", "8/8/8/4k3/8/8/8/R3K3 w - - 0 1", false},
		{"K+Q vs K", "8/8/8/4k3/8/8/8/3QK3 w - - 0 1", false},
		{"three minors", "8/8/8/4k3/8/8/8/1NB1KB2 w - - 0 1", false},
		{"initial", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustParseFEN(tt.fen)
			if got := HasInsufficientMaterial(&p.Board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateStatus(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		repetitions int
		want        chess.Status
		wantReason  chess.DrawReason
	}{
		{"initial", InitialFEN, 1, chess.Active, chess.NoDraw},
		{"check", "4k3/8/8/8/8/8/8/4K2r w - - 0 1", 1, chess.Check, chess.NoDraw},
		{"fools mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", 1, chess.Checkmate, chess.NoDraw},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", 1, chess.Stalemate, chess.NoDraw},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", 1, chess.Draw, chess.FiftyMoveRule},
		{"ninety nine half moves", "4k3/8/8/8/8/8/8/R3K3 w - - 99 80", 1, chess.Active, chess.NoDraw},
		{"insufficient material", "8/8/8/4k3/8/8/8/2B1K3 w - - 0 1", 1, chess.Draw, chess.InsufficientMaterial},
		{"threefold repetition", InitialFEN, 3, chess.Draw, chess.ThreefoldRepetition},
		{"twofold repetition", InitialFEN, 2, chess.Active, chess.NoDraw},
		{"mate beats fifty moves", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 120 3", 1, chess.Checkmate, chess.NoDraw},
		{"fifty moves beats repetition", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", 3, chess.Draw, chess.FiftyMoveRule},
		{"check with fifty moves", "4k3/8/8/8/8/8/8/4K2r w - - 100 80", 1, chess.Draw, chess.FiftyMoveRule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustParseFEN(tt.fen)
			got, reason := EvaluateStatus(&p, tt.repetitions)
			if got != tt.want || reason != tt.wantReason {
				t.Errorf("EvaluateStatus() = %v/%v, want %v/%v", got, reason, tt.want, tt.wantReason)
			}
		})
	}
}
