package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

type offset struct{ df, dr int }

var (
	knightOffsets = []offset{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = []offset{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = []offset{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = []offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// PseudoLegalMoves returns every geometrically possible move of the piece
// on sq, ignoring whether it exposes the mover's king. In attack-only mode
// pawns emit only their diagonal attack squares and kings omit castling.
func (p *Position) PseudoLegalMoves(sq chess.Square, attackOnly bool) []chess.Move {
	piece := p.Board.Get(sq)
	if piece.IsEmpty() {
		return nil
	}

	moves := make([]chess.Move, 0, 16)
	switch piece.Kind {
	case chess.Pawn:
		moves = p.pawnMoves(moves, sq, piece.Colour, attackOnly)
	case chess.Knight:
		moves = p.stepMoves(moves, sq, piece.Colour, knightOffsets)
	case chess.Bishop:
		moves = p.slidingMoves(moves, sq, piece.Colour, diagonalDirs)
	case chess.Rook:
		moves = p.slidingMoves(moves, sq, piece.Colour, straightDirs)
	case chess.Queen:
		moves = p.slidingMoves(moves, sq, piece.Colour, diagonalDirs)
		moves = p.slidingMoves(moves, sq, piece.Colour, straightDirs)
	case chess.King:
		moves = p.stepMoves(moves, sq, piece.Colour, kingOffsets)
		if !attackOnly {
			moves = p.castlingMoves(moves, sq, piece)
		}
	}
	return moves
}

// stepMoves generates single-step moves for knights and kings.
func (p *Position) stepMoves(moves []chess.Move, from chess.Square, colour chess.Colour, offsets []offset) []chess.Move {
	for _, o := range offsets {
		to := from.Offset(o.df, o.dr)
		if p.isFreeOrEnemy(to, colour) {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// slidingMoves generates moves for bishops, rooks and queens.
func (p *Position) slidingMoves(moves []chess.Move, from chess.Square, colour chess.Colour, dirs []offset) []chess.Move {
	for _, dir := range dirs {
		to := from.Offset(dir.df, dir.dr)
		for to.OnBoard() {
			target := p.Board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					moves = append(moves, chess.Move{From: from, To: to})
				}
				break // Blocked
			}
			moves = append(moves, chess.Move{From: from, To: to})
			to = to.Offset(dir.df, dir.dr)
		}
	}
	return moves
}

// isFreeOrEnemy reports whether sq is on the board and not occupied by a
// piece of the given colour.
func (p *Position) isFreeOrEnemy(sq chess.Square, colour chess.Colour) bool {
	if !sq.OnBoard() {
		return false
	}
	target := p.Board.Get(sq)
	return target.IsEmpty() || target.Colour != colour
}

// isEmpty reports whether sq is on the board and empty.
func (p *Position) isEmpty(sq chess.Square) bool {
	return sq.OnBoard() && p.Board.IsEmpty(sq)
}
