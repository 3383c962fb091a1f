// Package errors holds the sentinel errors shared by the rules engine, the
// session registry and the HTTP host, plus two context carrying wrappers.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver indicates a move attempted after checkmate, stalemate or a draw.
	ErrGameOver = errors.New("game is over")

	// ErrNoPiece indicates the origin square holds no piece of the side to move.
	ErrNoPiece = errors.New("no piece of the side to move on square")

	// ErrNoHistory indicates an undo with an empty move history.
	ErrNoHistory = errors.New("no move to undo")

	// ErrInvalidSnapshot indicates a snapshot that breaks a board invariant.
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrGameNotFound indicates an unknown game id.
	ErrGameNotFound = errors.New("game not found")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// GameError attaches the game, ply and move to a rejected operation.
type GameError struct {
	Err      error
	GameID   string // empty outside the session registry
	PlyNum   int    // 1-based ply of the move, 0 if none
	MoveText string // long algebraic text as submitted
}

func (e *GameError) Error() string {
	var parts []string
	if e.GameID != "" {
		parts = append(parts, "game "+e.GameID)
	}
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil && context == "":
		return "game error"
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError reports which field of a notation string could not be parsed.
type ParseError struct {
	Err   error
	Field string // e.g. "castling"
	Got   string
}

func (e *ParseError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}
	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap prefixes err with context. It returns nil for a nil err.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
