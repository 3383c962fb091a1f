package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsSquareAttacked returns true if any piece of byColour has sq among its
// attack-only destinations.
func (p *Position) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := p.Board[file][rank]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			for _, m := range p.PseudoLegalMoves(chess.Sq(file, rank), true) {
				if m.To == sq {
					return true
				}
			}
		}
	}
	return false
}

// IsInCheck returns true if the given colour's king is attacked.
func (p *Position) IsInCheck(colour chess.Colour) bool {
	kingSq, ok := p.kingSquare(colour)
	if !ok {
		return false // No king found
	}
	return p.IsSquareAttacked(kingSq, colour.Opposite())
}

