package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// playUCI plays a generated move on p by its long algebraic form.
func playUCI(t *testing.T, p *Position, uci string) chess.MoveRecord {
	t.Helper()
	m, ok := findMove(p.AllLegalMoves(), uci)
	if !ok {
		t.Fatalf("%s is not legal in %s", uci, p.FEN())
	}
	return p.makeMove(m)
}

func TestMakeMove_FEN(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		moves []string
		want  string
	}{
		{
			name:  "e2e4 sets en passant",
			fen:   InitialFEN,
			moves: []string{"e2e4"},
			want:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:  "full move after black",
			fen:   InitialFEN,
			moves: []string{"e2e4", "c7c5", "g1f3"},
			want:  "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
		},
		{
			name:  "king side castling",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 10",
			moves: []string{"e1g1"},
			want:  "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 4 10",
		},
		{
			name:  "queen side castling",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 3 10",
			moves: []string{"e8c8"},
			want:  "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 4 11",
		},
		{
			name:  "rook move clears one side",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"h1h4"},
			want:  "r3k2r/8/8/8/7R/8/8/R3K3 b Qkq - 1 1",
		},
		{
			name:  "capturing a home rook clears the opponent side",
			fen:   "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves: []string{"a1a8"},
			want:  "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:  "en passant removes the pawn",
			fen:   "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			moves: []string{"e5d6"},
			want:  "rnbqkbnr/ppp1pppp/3P4/8/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:  "promotion replaces the pawn",
			fen:   "8/4P3/8/8/8/8/8/k6K w - - 5 40",
			moves: []string{"e7e8n"},
			want:  "4N3/8/8/8/8/8/8/k6K b - - 0 40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustParseFEN(tt.fen)
			for _, uci := range tt.moves {
				playUCI(t, &p, uci)
			}
			if got := p.FEN(); got != tt.want {
				t.Errorf("FEN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMakeMove_MovedFlags(t *testing.T) {
	p := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	rec := playUCI(t, &p, "e1g1")

	if !p.Board.Get(sq("g1")).Moved || !p.Board.Get(sq("f1")).Moved {
		t.Error("castling should set the king and rook moved flags")
	}
	if rec.Piece.Moved || rec.RookMoved {
		t.Error("record should hold the pre-move moved flags")
	}
}

func TestMakeMove_Record(t *testing.T) {
	p := MustParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 4 3")
	rec := playUCI(t, &p, "e5d6")

	if rec.Captured != chess.B(chess.Pawn).WithMoved() {
		t.Errorf("Captured = %v, want moved black pawn", rec.Captured)
	}
	if rec.CapturedSquare != sq("d5") {
		t.Errorf("CapturedSquare = %v, want d5", rec.CapturedSquare)
	}
	if rec.PrevEnPassant != sq("d6") || rec.PrevHalfmoveClock != 4 || rec.PrevFullmoveNumber != 3 {
		t.Errorf("record prior state = %v/%d/%d, want d6/4/3", rec.PrevEnPassant, rec.PrevHalfmoveClock, rec.PrevFullmoveNumber)
	}
	if rec.PrevCastling != chess.AllCastlingRights {
		t.Errorf("PrevCastling = %v, want KQkq", rec.PrevCastling)
	}
}

// TestUnmakeMove_Exact plays and takes back every legal move of rich
// positions, two plies deep, and compares the whole position.
func TestUnmakeMove_Exact(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			p := MustParseFEN(fen)
			for _, m := range p.AllLegalMoves() {
				before := p
				rec := p.makeMove(m)
				for _, reply := range p.AllLegalMoves() {
					mid := p
					replyRec := p.makeMove(reply)
					p.unmakeMove(replyRec)
					if p != mid {
						t.Fatalf("unmake %v after %v: got %s, want %s", reply, m, p.FEN(), mid.FEN())
					}
				}
				p.unmakeMove(rec)
				if p != before {
					t.Fatalf("unmake %v: got %s, want %s", m, p.FEN(), before.FEN())
				}
			}
		})
	}
}

func TestApply_DoesNotModifyReceiver(t *testing.T) {
	p := NewInitialPosition()
	before := p
	for _, m := range p.AllLegalMoves() {
		_ = p.Apply(m)
	}
	if p != before {
		t.Error("Apply() modified the receiver")
	}
}
