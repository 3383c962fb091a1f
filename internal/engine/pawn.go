package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pawn pushes, captures, en passant and promotions.
func (p *Position) pawnMoves(moves []chess.Move, from chess.Square, colour chess.Colour, attackOnly bool) []chess.Move {
	dir := chess.ColourOffset(colour)

	if attackOnly {
		// Diagonal attack squares only, whatever occupies them.
		for _, df := range []int{-1, 1} {
			if to := from.Offset(df, dir); to.OnBoard() {
				moves = append(moves, chess.Move{From: from, To: to})
			}
		}
		return moves
	}

	// Forward moves
	one := from.Offset(0, dir)
	if p.isEmpty(one) {
		moves = appendPawnMove(moves, chess.Move{From: from, To: one}, colour)

		// Double push from the starting rank
		two := from.Offset(0, 2*dir)
		if from.Rank == chess.PawnStartRank(colour) && p.isEmpty(two) {
			moves = append(moves, chess.Move{From: from, To: two})
		}
	}

	// Captures
	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.OnBoard() {
			continue
		}
		target := p.Board.Get(to)
		if !target.IsEmpty() && target.Colour != colour {
			moves = appendPawnMove(moves, chess.Move{From: from, To: to}, colour)
			continue
		}
		if p.HasEnPassant() && to == p.EnPassant {
			victim := chess.Sq(to.File, from.Rank)
			if p.Board.Get(victim).Is(colour.Opposite(), chess.Pawn) {
				moves = append(moves, chess.Move{
					From:    from,
					To:      to,
					Special: chess.Special{Kind: chess.EnPassant, CapturedPawn: victim},
				})
			}
		}
	}
	return moves
}

// appendPawnMove appends m, expanding it into the four promotion variants
// when it reaches the last rank.
func appendPawnMove(moves []chess.Move, m chess.Move, colour chess.Colour) []chess.Move {
	if m.To.Rank != chess.PromotionRank(colour) {
		return append(moves, m)
	}
	for _, kind := range chess.PromotionKinds {
		promo := m
		promo.Special = chess.Special{Kind: chess.Promotion}
		promo.Promotion = kind
		moves = append(moves, promo)
	}
	return moves
}

// isDoublePush reports whether a pawn move from -> to skips a square.
func isDoublePush(from, to chess.Square) bool {
	return from.File == to.File && abs(to.Rank-from.Rank) == 2
}
