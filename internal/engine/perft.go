package engine

// Perft counts the leaf nodes of the legal move tree of the given depth.
func Perft(pos Position, depth int) uint64 {
	return perft(&pos, depth)
}

func perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.AllLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		rec := p.makeMove(m)
		nodes += perft(p, depth-1)
		p.unmakeMove(rec)
	}
	return nodes
}

// Divide returns the perft count below each root move, keyed by the move
// in long algebraic form.
func Divide(pos Position, depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	if depth <= 0 {
		return counts
	}
	for _, m := range pos.AllLegalMoves() {
		counts[m.String()] = Perft(pos.Apply(m), depth-1)
	}
	return counts
}
