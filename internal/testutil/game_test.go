package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

func TestMustGameFromFEN(t *testing.T) {
	g := MustGameFromFEN(t, KingsAndBishopsSameColour)
	AssertEqual(t, g.ExportFEN(), KingsAndBishopsSameColour)
	AssertEqual(t, g.Status(), chess.Draw)
}

func TestMustPlay(t *testing.T) {
	tests := []struct {
		name       string
		moves      string
		wantPly    int
		wantStatus chess.Status
	}{
		{"no moves", "", 0, chess.Active},
		{"extra spaces", "  e2e4   e7e5 ", 2, chess.Active},
		{"fools mate", FoolsMateMoves, 4, chess.Checkmate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := engine.NewGame()
			MustPlay(t, g, tt.moves)
			AssertEqual(t, g.Ply(), tt.wantPly, "Ply()")
			AssertEqual(t, g.Status(), tt.wantStatus, "Status()")
		})
	}
}
