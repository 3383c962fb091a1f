package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castlingMoves appends the castling candidates of an unmoved king on its
// home square.
func (p *Position) castlingMoves(moves []chess.Move, from chess.Square, king chess.Piece) []chess.Move {
	colour := king.Colour
	if king.Moved || from != chess.KingHome(colour) {
		return moves
	}
	enemy := colour.Opposite()
	if p.IsSquareAttacked(from, enemy) {
		return moves
	}

	for _, kingSide := range []bool{true, false} {
		if m, ok := p.castle(from, colour, kingSide); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

// castle builds the castling move for one side if all preconditions other
// than the king's own state hold.
func (p *Position) castle(from chess.Square, colour chess.Colour, kingSide bool) (chess.Move, bool) {
	if !p.Castling.Has(colour, kingSide) {
		return chess.Move{}, false
	}

	rookFrom := chess.RookHome(colour, kingSide)
	rook := p.Board.Get(rookFrom)
	if !rook.Is(colour, chess.Rook) || rook.Moved {
		return chess.Move{}, false
	}

	// Squares strictly between king and rook must be empty.
	dir := sign(rookFrom.File - from.File)
	for sq := from.Offset(dir, 0); sq != rookFrom; sq = sq.Offset(dir, 0) {
		if !p.Board.IsEmpty(sq) {
			return chess.Move{}, false
		}
	}

	// The king may not pass through or land on an attacked square.
	enemy := colour.Opposite()
	transit := from.Offset(dir, 0)
	to := from.Offset(2*dir, 0)
	if p.IsSquareAttacked(transit, enemy) || p.IsSquareAttacked(to, enemy) {
		return chess.Move{}, false
	}

	return chess.Move{
		From: from,
		To:   to,
		Special: chess.Special{
			Kind:     chess.Castling,
			RookFrom: rookFrom,
			RookTo:   transit,
		},
	}, true
}

// updateCastlingRightsForRook removes the right tied to a rook home square
// when a rook leaves it or is captured on it.
func (p *Position) updateCastlingRightsForRook(colour chess.Colour, sq chess.Square) {
	for _, kingSide := range []bool{true, false} {
		if sq == chess.RookHome(colour, kingSide) {
			p.Castling.Clear(colour, kingSide)
		}
	}
}
