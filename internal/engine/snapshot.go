package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Snapshot is a deep, independent copy of a game's full state. It is the
// unit persisted by storage and published to subscribers.
type Snapshot struct {
	Board          chess.Board          `json:"board"`
	ToMove         chess.Colour         `json:"toMove"`
	Status         chess.Status         `json:"status"`
	DrawReason     chess.DrawReason     `json:"drawReason,omitempty"`
	History        []chess.MoveRecord   `json:"history"`
	EnPassant      chess.Square         `json:"enPassant"`
	Castling       chess.CastlingRights `json:"castling"`
	HalfmoveClock  int                  `json:"halfmoveClock"`
	FullmoveNumber int                  `json:"fullmoveNumber"`
}

// Position returns the position part of the snapshot.
func (s *Snapshot) Position() Position {
	return Position{
		Board:          s.Board,
		ToMove:         s.ToMove,
		Castling:       s.Castling,
		EnPassant:      s.EnPassant,
		HalfmoveClock:  s.HalfmoveClock,
		FullmoveNumber: s.FullmoveNumber,
	}
}

// FEN returns the FEN string of the snapshot's position.
func (s *Snapshot) FEN() string {
	p := s.Position()
	return p.FEN()
}

// InCheck reports whether the side to move is in check.
func (s *Snapshot) InCheck() bool {
	p := s.Position()
	return p.IsInCheck(p.ToMove)
}

// Validate checks the invariants a loaded snapshot must satisfy. Errors
// wrap errors.ErrInvalidSnapshot.
func (s *Snapshot) Validate() error {
	if s.ToMove != chess.White && s.ToMove != chess.Black {
		return invalidSnapshot("side to move %d", s.ToMove)
	}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := s.Board.Count(colour, chess.King); n != 1 {
			return invalidSnapshot("%d %s kings", n, colour)
		}
	}
	if s.EnPassant != chess.NoSquare && !s.EnPassant.OnBoard() {
		return invalidSnapshot("en passant square %v", s.EnPassant)
	}
	if s.HalfmoveClock < 0 || s.FullmoveNumber < 1 {
		return invalidSnapshot("clocks %d/%d", s.HalfmoveClock, s.FullmoveNumber)
	}
	for i := range s.History {
		if err := validateRecord(&s.History[i]); err != nil {
			return errors.Wrapf(err, "history entry %d", i+1)
		}
	}
	return nil
}

func validateRecord(rec *chess.MoveRecord) error {
	if !rec.From.OnBoard() || !rec.To.OnBoard() || rec.Piece.IsEmpty() {
		return invalidSnapshot("move %v", rec.Move())
	}
	if rec.IsCapture() && !rec.CapturedSquare.OnBoard() {
		return invalidSnapshot("capture square %v", rec.CapturedSquare)
	}
	if rec.Special.Kind == chess.Castling && (!rec.Special.RookFrom.OnBoard() || !rec.Special.RookTo.OnBoard()) {
		return invalidSnapshot("castling rook squares in %v", rec.Move())
	}
	return nil
}

func invalidSnapshot(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidSnapshot)
}
