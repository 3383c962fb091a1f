package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Failure paths cannot be observed on a real *testing.T, so these tests
// cover the passing cases and the message formatting.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.MustParseSquare("e4"), chess.Sq(4, 3), "square e4")
}

func TestAssertTrueFalse_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertTrue(t, engine.NewGame().Ply() == 0, "new game")
	AssertFalse(t, false)
	AssertFalse(t, engine.NewGame().InCheck(), "initial position")
}

func TestIsNil(t *testing.T) {
	var moves []chess.Move
	var game *engine.Game
	tests := []struct {
		name string
		v    interface{}
		want bool
	}{
		{"untyped nil", nil, true},
		{"nil slice", moves, true},
		{"nil pointer", game, true},
		{"empty slice", []chess.Move{}, false},
		{"value", 0, false},
		{"pointer", engine.NewGame(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNil(tt.v); got != tt.want {
				t.Errorf("isNil(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}

	AssertNil(t, moves)
	AssertNil(t, nil)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	err := fmt.Errorf("move 3: %w", errors.ErrIllegalMove)
	AssertErrorIs(t, err, errors.ErrIllegalMove)
	AssertErrorIs(t, nil, nil)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestAssertStatus_Success(t *testing.T) {
	AssertStatus(t, engine.NewGame(), chess.Active, chess.NoDraw)
	AssertStatus(t, MustGameFromFEN(t, KingsAndBishopsSameColour), chess.Draw, chess.InsufficientMaterial)
}

func TestAssertMoves_Success(t *testing.T) {
	g := engine.NewGame()
	AssertMoves(t, g.LegalMoves(chess.MustParseSquare("g1")), "g1h3", "g1f3")
	AssertMoves(t, g.LegalMoves(chess.MustParseSquare("e4")))
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format string", []interface{}{"ply %d", 3}, "ply 3"},
		{"non-string first arg", []interface{}{42}, "42"},
		{"several values", []interface{}{42, "plies"}, "42 plies"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}

	if got := prefix("ctx"); got != "ctx: " {
		t.Errorf("prefix() = %q, want %q", got, "ctx: ")
	}
}
