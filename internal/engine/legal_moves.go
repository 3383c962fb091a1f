package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the legal moves of the side-to-move's piece on sq, in
// generation order. It returns nil if sq is empty or holds an opponent
// piece.
func (p *Position) LegalMoves(sq chess.Square) []chess.Move {
	piece := p.Board.Get(sq)
	if piece.IsEmpty() || piece.Colour != p.ToMove {
		return nil
	}
	return p.filterLegal(p.PseudoLegalMoves(sq, false), piece.Colour)
}

// AllLegalMoves returns every legal move of the side to move, squares
// ordered rank 1 to 8 and file a to h.
func (p *Position) AllLegalMoves() []chess.Move {
	var moves []chess.Move
	p.Board.ForEach(func(sq chess.Square, piece chess.Piece) {
		if piece.Colour == p.ToMove {
			moves = append(moves, p.filterLegal(p.PseudoLegalMoves(sq, false), piece.Colour)...)
		}
	})
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := p.Board[file][rank]
			if piece.IsEmpty() || piece.Colour != p.ToMove {
				continue
			}
			for _, m := range p.PseudoLegalMoves(chess.Sq(file, rank), false) {
				if p.leavesKingSafe(m, piece.Colour) {
					return true
				}
			}
		}
	}
	return false
}

// filterLegal keeps the candidates that do not leave the mover's king in
// check.
func (p *Position) filterLegal(candidates []chess.Move, colour chess.Colour) []chess.Move {
	legal := candidates[:0]
	for _, m := range candidates {
		if p.leavesKingSafe(m, colour) {
			legal = append(legal, m)
		}
	}
	return legal
}

// leavesKingSafe plays m on a copy of the position and reports whether the
// mover's king is safe afterwards. The receiver is never modified.
func (p *Position) leavesKingSafe(m chess.Move, colour chess.Colour) bool {
	trial := p.Apply(m)
	return !trial.IsInCheck(colour)
}
