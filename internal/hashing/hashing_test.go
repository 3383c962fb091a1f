package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func initialBoard() *chess.Board {
	var b chess.Board
	b.SetupInitialPosition()
	return &b
}

func TestKeyConsistency(t *testing.T) {
	key1 := Key(initialBoard(), chess.White, chess.AllCastlingRights, chess.NoSquare)
	key2 := Key(initialBoard(), chess.White, chess.AllCastlingRights, chess.NoSquare)

	if key1 != key2 {
		t.Errorf("Identical positions produced different keys: %x != %x", key1, key2)
	}
}

func TestKeyDifferentPositions(t *testing.T) {
	board1 := initialBoard()

	// Manually move e2 to e4
	board2 := initialBoard()
	board2.Clear(chess.MustParseSquare("e2"))
	board2.Set(chess.MustParseSquare("e4"), chess.W(chess.Pawn))

	key1 := Key(board1, chess.White, chess.AllCastlingRights, chess.NoSquare)
	key2 := Key(board2, chess.White, chess.AllCastlingRights, chess.NoSquare)

	if key1 == key2 {
		t.Error("Different positions produced the same key")
	}
}

func TestKeyComponents(t *testing.T) {
	board := initialBoard()
	base := Key(board, chess.White, chess.AllCastlingRights, chess.NoSquare)

	noQueenSide := chess.AllCastlingRights
	noQueenSide.Clear(chess.White, false)

	tests := []struct {
		name string
		key  uint64
	}{
		{"side to move", Key(board, chess.Black, chess.AllCastlingRights, chess.NoSquare)},
		{"castling rights", Key(board, chess.White, noQueenSide, chess.NoSquare)},
		{"en passant", Key(board, chess.White, chess.AllCastlingRights, chess.MustParseSquare("e3"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.key == base {
				t.Errorf("Key() ignores %s", tt.name)
			}
		})
	}
}

func TestKeyIgnoresMovedFlag(t *testing.T) {
	board1 := initialBoard()
	board2 := initialBoard()
	e1 := chess.MustParseSquare("e1")
	board2.Set(e1, board2.Get(e1).WithMoved())

	key1 := Key(board1, chess.White, chess.CastlingRights{}, chess.NoSquare)
	key2 := Key(board2, chess.White, chess.CastlingRights{}, chess.NoSquare)
	if key1 != key2 {
		t.Error("Key() should not depend on moved flags")
	}
}

func TestRepetitionTable(t *testing.T) {
	table := NewRepetitionTable(1)

	if got := table.Push(2); got != 1 {
		t.Errorf("Push(2) = %d, want 1", got)
	}
	if got := table.Push(1); got != 2 {
		t.Errorf("Push(1) = %d, want 2", got)
	}
	table.Push(2)
	if got := table.Push(1); got != 3 {
		t.Errorf("Push(1) = %d, want 3", got)
	}

	if table.Max() != 3 {
		t.Errorf("Max() = %d, want 3", table.Max())
	}
	if table.Current() != 3 {
		t.Errorf("Current() = %d, want 3", table.Current())
	}

	if !table.Pop() {
		t.Fatal("Pop() = false, want true")
	}
	if table.Count(1) != 2 {
		t.Errorf("Count(1) = %d, want 2", table.Count(1))
	}
	if table.Current() != 2 {
		t.Errorf("Current() = %d, want 2", table.Current())
	}
}

func TestRepetitionTablePopEmpty(t *testing.T) {
	table := NewRepetitionTable()
	if table.Pop() {
		t.Error("Pop() on empty table = true, want false")
	}
	if table.Current() != 0 || table.Max() != 0 {
		t.Error("empty table should report zero counts")
	}
}

func TestRepetitionTableReset(t *testing.T) {
	table := NewRepetitionTable(7, 7, 8)
	table.Reset(9)

	if table.Count(7) != 0 {
		t.Errorf("Count(7) after Reset = %d, want 0", table.Count(7))
	}
	if table.Current() != 1 || table.Max() != 1 {
		t.Errorf("Current()/Max() after Reset = %d/%d, want 1/1", table.Current(), table.Max())
	}
}
