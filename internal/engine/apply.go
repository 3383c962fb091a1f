package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// makeMove executes a generated move on the position and returns the record
// needed to reverse it. The move is not validated.
func (p *Position) makeMove(m chess.Move) chess.MoveRecord {
	piece := p.Board.Get(m.From)
	colour := piece.Colour

	rec := chess.MoveRecord{
		Piece:              piece,
		From:               m.From,
		To:                 m.To,
		CapturedSquare:     chess.NoSquare,
		Promotion:          m.Promotion,
		Special:            m.Special,
		PrevEnPassant:      p.EnPassant,
		PrevCastling:       p.Castling,
		PrevHalfmoveClock:  p.HalfmoveClock,
		PrevFullmoveNumber: p.FullmoveNumber,
	}

	// Captured piece
	capturedSq := m.To
	if m.IsEnPassant() {
		capturedSq = m.Special.CapturedPawn
	}
	if captured := p.Board.Get(capturedSq); !captured.IsEmpty() {
		rec.Captured = captured
		rec.CapturedSquare = capturedSq
		p.Board.Clear(capturedSq)
	}

	p.EnPassant = chess.NoSquare

	// Rook relocation
	if m.IsCastle() {
		rook := p.Board.Get(m.Special.RookFrom)
		rec.RookMoved = rook.Moved
		p.Board.Clear(m.Special.RookFrom)
		p.Board.Set(m.Special.RookTo, rook.WithMoved())
	}

	// Castling rights
	switch piece.Kind {
	case chess.King:
		p.Castling.ClearColour(colour)
	case chess.Rook:
		p.updateCastlingRightsForRook(colour, m.From)
	}
	if rec.Captured.Kind == chess.Rook {
		p.updateCastlingRightsForRook(rec.Captured.Colour, rec.CapturedSquare)
	}

	if piece.Kind == chess.Pawn && isDoublePush(m.From, m.To) {
		p.EnPassant = chess.Sq(m.From.File, (m.From.Rank+m.To.Rank)/2)
	}

	// Place the piece
	placed := piece.WithMoved()
	if m.IsPromotion() {
		placed = chess.NewPiece(colour, m.Promotion).WithMoved()
	}
	p.Board.Clear(m.From)
	p.Board.Set(m.To, placed)

	// Clocks
	if piece.Kind == chess.Pawn || rec.IsCapture() {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if colour == chess.Black {
		p.FullmoveNumber++
	}

	p.ToMove = colour.Opposite()
	return rec
}

// unmakeMove reverses a move made by makeMove, restoring every field from
// the record.
func (p *Position) unmakeMove(rec chess.MoveRecord) {
	p.Board.Clear(rec.To)
	p.Board.Set(rec.From, rec.Piece)

	if rec.IsCapture() {
		p.Board.Set(rec.CapturedSquare, rec.Captured)
	}

	if rec.Special.Kind == chess.Castling {
		rook := p.Board.Get(rec.Special.RookTo)
		rook.Moved = rec.RookMoved
		p.Board.Clear(rec.Special.RookTo)
		p.Board.Set(rec.Special.RookFrom, rook)
	}

	p.EnPassant = rec.PrevEnPassant
	p.Castling = rec.PrevCastling
	p.HalfmoveClock = rec.PrevHalfmoveClock
	p.FullmoveNumber = rec.PrevFullmoveNumber
	p.ToMove = rec.Piece.Colour
}
