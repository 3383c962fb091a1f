package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Draw thresholds.
const (
	// FiftyMoveLimit is the half-move clock value at which the game is drawn.
	FiftyMoveLimit = 100

	// RepetitionLimit is the number of occurrences of a position that draws.
	RepetitionLimit = 3
)

// EvaluateStatus computes the status of the position for the side to move.
// repetitions is the number of times the current position has occurred in
// the game, including now.
func EvaluateStatus(p *Position, repetitions int) (chess.Status, chess.DrawReason) {
	status := chess.Active
	inCheck := p.IsInCheck(p.ToMove)
	if inCheck {
		status = chess.Check
	}

	if !p.HasLegalMoves() {
		if inCheck {
			return chess.Checkmate, chess.NoDraw
		}
		return chess.Stalemate, chess.NoDraw
	}

	switch {
	case p.HalfmoveClock >= FiftyMoveLimit:
		return chess.Draw, chess.FiftyMoveRule
	case HasInsufficientMaterial(&p.Board):
		return chess.Draw, chess.InsufficientMaterial
	case repetitions >= RepetitionLimit:
		return chess.Draw, chess.ThreefoldRepetition
	}
	return status, chess.NoDraw
}

// HasInsufficientMaterial returns true if neither side can deliver mate:
// bare kings, a single minor piece, or two bishops on squares of the same
// colour whichever side owns them.
func HasInsufficientMaterial(board *chess.Board) bool {
	var minors []chess.PieceKind
	var bishopSquares []chess.Square

	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			piece := board[file][rank]
			switch piece.Kind {
			case chess.NoKind, chess.King:
				continue
			case chess.Knight:
				minors = append(minors, piece.Kind)
			case chess.Bishop:
				minors = append(minors, piece.Kind)
				bishopSquares = append(bishopSquares, chess.Sq(file, rank))
			default:
				// Any pawn, rook, or queen means sufficient material
				return false
			}
			if len(minors) > 2 {
				return false
			}
		}
	}

	switch len(minors) {
	case 0, 1:
		return true
	case 2:
		return len(bishopSquares) == 2 && bishopSquares[0].IsLight() == bishopSquares[1].IsLight()
	default:
		return false
	}
}
