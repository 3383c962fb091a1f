// Package engine implements the chess rules: move generation, legality,
// special moves, game status and FEN.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Position is everything about a game that the rules need to generate and
// execute moves. It is a value type; copying a Position yields an
// independent candidate state.
type Position struct {
	Board          chess.Board
	ToMove         chess.Colour
	Castling       chess.CastlingRights
	EnPassant      chess.Square
	HalfmoveClock  int
	FullmoveNumber int
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	p := Position{
		ToMove:         chess.White,
		Castling:       chess.AllCastlingRights,
		EnPassant:      chess.NoSquare,
		FullmoveNumber: 1,
	}
	p.Board.SetupInitialPosition()
	return p
}

// Apply returns the position reached by playing m. The receiver is not
// modified. m must come from the move generator for this position.
func (p Position) Apply(m chess.Move) Position {
	next := p
	next.makeMove(m)
	return next
}

// HasEnPassant reports whether an en-passant target is set.
func (p *Position) HasEnPassant() bool {
	return p.EnPassant.OnBoard()
}

// kingSquare finds the king of the given colour.
func (p *Position) kingSquare(colour chess.Colour) (chess.Square, bool) {
	return p.Board.FindKing(colour)
}
