package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func foolsMate(t *testing.T) *engine.Snapshot {
	t.Helper()
	g := engine.NewGame()
	testutil.MustPlay(t, g, testutil.FoolsMateMoves)
	s := g.ExportState()
	return &s
}

func TestGameToJSON(t *testing.T) {
	jg := GameToJSON(foolsMate(t))

	if jg.Status != "checkmate" {
		t.Errorf("Status = %q, want checkmate", jg.Status)
	}
	if jg.Turn != "white" || !jg.InCheck {
		t.Errorf("Turn/InCheck = %q/%v, want white/true", jg.Turn, jg.InCheck)
	}
	if jg.DrawReason != "" {
		t.Errorf("DrawReason = %q, want empty", jg.DrawReason)
	}
	if len(jg.Moves) != 4 {
		t.Fatalf("len(Moves) = %d, want 4", len(jg.Moves))
	}

	last := jg.Moves[3]
	want := JSONMove{Ply: 4, Colour: "black", UCI: "d8h4", From: "d8", To: "h4", Piece: "queen"}
	if last != want {
		t.Errorf("Moves[3] = %+v, want %+v", last, want)
	}
}

func TestGameToJSON_SpecialMoves(t *testing.T) {
	g := testutil.MustGameFromFEN(t, "r3k2r/6P1/8/8/8/8/8/R3K2R w KQkq - 0 1")
	testutil.MustPlay(t, g, "g7h8n e8c8")
	s := g.ExportState()
	jg := GameToJSON(&s)

	promo := jg.Moves[0]
	if promo.Promotion != "knight" || promo.Captured != "rook" || promo.Special != "promotion" {
		t.Errorf("promotion move = %+v", promo)
	}
	if castle := jg.Moves[1]; castle.Special != "castling" || castle.UCI != "e8c8" {
		t.Errorf("castling move = %+v", castle)
	}
}

func TestWriteGameJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGameJSON(&buf, engine.NewGame()); err != nil {
		t.Fatalf("WriteGameJSON() error = %v", err)
	}

	var jg JSONGame
	if err := json.Unmarshal(buf.Bytes(), &jg); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if jg.FEN != engine.InitialFEN {
		t.Errorf("FEN = %q, want %q", jg.FEN, engine.InitialFEN)
	}
	if jg.Moves == nil || len(jg.Moves) != 0 {
		t.Errorf("Moves = %v, want empty array", jg.Moves)
	}
	if !strings.Contains(buf.String(), `"moves": []`) {
		t.Error("moves should encode as an empty array")
	}
}

func TestWriteMoves(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves string
		width int
		want  string
	}{
		{"white first", engine.InitialFEN, testutil.FoolsMateMoves, 80, "1. f2f3 e7e5 2. g2g4 d8h4\n"},
		{"black first", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "e7e5 g1f3", 80, "1... e7e5 2. g1f3\n"},
		{"wrapped", engine.InitialFEN, testutil.FoolsMateMoves, 12, "1. f2f3 e7e5\n2. g2g4 d8h4\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustGameFromFEN(t, tt.fen)
			testutil.MustPlay(t, g, tt.moves)
			s := g.ExportState()

			var buf bytes.Buffer
			WriteMoves(&buf, s.History, s.History[0].PrevFullmoveNumber, tt.width)
			if got := buf.String(); got != tt.want {
				t.Errorf("WriteMoves() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteBoard(t *testing.T) {
	var buf bytes.Buffer
	p := engine.NewInitialPosition()
	WriteBoard(&buf, &p)

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "8  r n b q k b n r" {
		t.Errorf("rank 8 = %q", lines[0])
	}
	if lines[4] != "4  . . . . . . . ." {
		t.Errorf("rank 4 = %q", lines[4])
	}
	if !strings.Contains(buf.String(), engine.InitialFEN) {
		t.Error("diagram should end with the FEN")
	}
}

func TestTextWriter_WriteGame(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, 80)
	if err := w.WriteGame(foolsMate(t)); err != nil {
		t.Fatalf("WriteGame() error = %v", err)
	}
	s := engine.NewGame().ExportState()
	if err := w.WriteGame(&s); err != nil {
		t.Fatalf("WriteGame() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"1. f2f3 e7e5 2. g2g4 d8h4", "checkmate\n", "active, White to move"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	for i := 0; i < 2; i++ {
		if err := w.WriteGame(foolsMate(t)); err != nil {
			t.Fatalf("WriteGame() error = %v", err)
		}
	}
	if buf.Len() != 0 {
		t.Error("batch writer should not write before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out.Games) != 2 {
		t.Errorf("len(Games) = %d, want 2", len(out.Games))
	}
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	if err := w.WriteGame(foolsMate(t)); err != nil {
		t.Fatalf("WriteGame() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("single writer should write immediately")
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestGameWriter_Interface(t *testing.T) {
	var _ GameWriter = (*TextWriter)(nil)
	var _ GameWriter = (*JSONWriter)(nil)
}
