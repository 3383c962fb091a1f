package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Game is the game-state controller. It owns the position, the move
// history and the status, and is the only way to change them. A Game is
// not safe for concurrent use.
type Game struct {
	pos        Position
	status     chess.Status
	drawReason chess.DrawReason
	history    []chess.MoveRecord
	reps       *hashing.RepetitionTable
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// NewGameFromFEN creates a game starting at the given FEN position.
func NewGameFromFEN(fen string) (*Game, error) {
	g := &Game{}
	if err := g.LoadFEN(fen); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset returns the game to the standard starting position with an empty
// history.
func (g *Game) Reset() {
	g.start(NewInitialPosition())
}

// start replaces all state with a fresh game from pos.
func (g *Game) start(pos Position) {
	g.pos = pos
	g.history = nil
	g.reps = hashing.NewRepetitionTable(g.positionKey())
	g.updateStatus(true)
}

// MakeMove plays the legal move from -> to. promotion selects the piece for
// a promoting pawn and is ignored otherwise. Errors wrap ErrGameOver,
// ErrNoPiece or ErrIllegalMove; on error the game is unchanged.
func (g *Game) MakeMove(from, to chess.Square, promotion chess.PieceKind) error {
	if g.status.IsTerminal() {
		return fmt.Errorf("%s: %w", g.status, errors.ErrGameOver)
	}
	if !from.OnBoard() || !to.OnBoard() {
		return fmt.Errorf("%v-%v: %w", from, to, errors.ErrIllegalMove)
	}
	piece := g.pos.Board.Get(from)
	if piece.IsEmpty() || piece.Colour != g.pos.ToMove {
		return fmt.Errorf("%v: %w", from, errors.ErrNoPiece)
	}

	for _, m := range g.pos.LegalMoves(from) {
		if m.To != to {
			continue
		}
		if m.IsPromotion() && m.Promotion != promotion {
			continue
		}
		g.play(m)
		return nil
	}

	text := chess.Move{From: from, To: to, Promotion: promotion}.String()
	return fmt.Errorf("%s: %w", text, errors.ErrIllegalMove)
}

// ApplyMove is MakeMove reporting success as a bool.
func (g *Game) ApplyMove(from, to chess.Square, promotion chess.PieceKind) bool {
	return g.MakeMove(from, to, promotion) == nil
}

// PlayUCI plays a move given in long algebraic form, e.g. "e2e4" or "e7e8q".
func (g *Game) PlayUCI(uci string) error {
	from, to, promotion, err := chess.ParseMove(uci)
	if err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrIllegalMove)
	}
	return g.MakeMove(from, to, promotion)
}

// play executes a legal move and recomputes the status.
func (g *Game) play(m chess.Move) {
	rec := g.pos.makeMove(m)
	g.history = append(g.history, rec)
	g.reps.Push(g.positionKey())
	g.updateStatus(false)
}

// Undo takes back the last move. It returns false if there is no history.
func (g *Game) Undo() bool {
	if len(g.history) == 0 {
		return false
	}
	last := len(g.history) - 1
	rec := g.history[last]
	g.history = g.history[:last]

	g.pos.unmakeMove(rec)
	g.reps.Pop()

	// The position before any move in the history was not terminal.
	g.updateStatus(true)
	return true
}

// LegalMoves returns the legal moves of the piece on sq. It is empty if the
// square has no piece of the side to move or the game is over.
func (g *Game) LegalMoves(sq chess.Square) []chess.Move {
	if g.status.IsTerminal() || !sq.OnBoard() {
		return nil
	}
	return g.pos.LegalMoves(sq)
}

// AllLegalMoves returns every legal move of the side to move, or nil once
// the game is over.
func (g *Game) AllLegalMoves() []chess.Move {
	if g.status.IsTerminal() {
		return nil
	}
	return g.pos.AllLegalMoves()
}

// ExportState returns a deep copy of the game state.
func (g *Game) ExportState() Snapshot {
	return Snapshot{
		Board:          g.pos.Board,
		ToMove:         g.pos.ToMove,
		Status:         g.status,
		DrawReason:     g.drawReason,
		History:        g.History(),
		EnPassant:      g.pos.EnPassant,
		Castling:       g.pos.Castling,
		HalfmoveClock:  g.pos.HalfmoveClock,
		FullmoveNumber: g.pos.FullmoveNumber,
	}
}

// LoadState replaces the whole game state with a snapshot and recomputes
// the status. A terminal status carried by the snapshot is kept. On error
// the game is unchanged.
func (g *Game) LoadState(s Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}

	g.pos = s.Position()
	g.history = append([]chess.MoveRecord(nil), s.History...)
	g.status = s.Status
	g.drawReason = s.DrawReason
	g.reps = hashing.NewRepetitionTable(g.historyKeys()...)
	g.updateStatus(false)
	return nil
}

// historyKeys rebuilds the key of every position in the history by taking
// the moves back on a scratch copy.
func (g *Game) historyKeys() []uint64 {
	keys := make([]uint64, len(g.history)+1)
	scratch := g.pos
	keys[len(g.history)] = keyOf(&scratch)
	for i := len(g.history) - 1; i >= 0; i-- {
		scratch.unmakeMove(g.history[i])
		keys[i] = keyOf(&scratch)
	}
	return keys
}

// ExportFEN returns the FEN string of the current position.
func (g *Game) ExportFEN() string {
	return g.pos.FEN()
}

// LoadFEN replaces the game with the FEN position, clearing the history.
// Errors wrap ErrInvalidFEN; on error the game is unchanged.
func (g *Game) LoadFEN(fen string) error {
	pos, err := ParseFEN(fen)
	if err != nil {
		return err
	}
	g.start(pos)
	return nil
}

// ImportFEN is LoadFEN reporting success as a bool.
func (g *Game) ImportFEN(fen string) bool {
	return g.LoadFEN(fen) == nil
}

// Status returns the current game status.
func (g *Game) Status() chess.Status {
	return g.status
}

// DrawReason returns why the game was drawn, or NoDraw.
func (g *Game) DrawReason() chess.DrawReason {
	return g.drawReason
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.pos.ToMove
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.pos.IsInCheck(g.pos.ToMove)
}

// IsSquareAttacked reports whether any piece of byColour attacks sq.
func (g *Game) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	return g.pos.IsSquareAttacked(sq, byColour)
}

// History returns a copy of the move history, oldest first.
func (g *Game) History() []chess.MoveRecord {
	return append([]chess.MoveRecord(nil), g.history...)
}

// Ply returns the number of half-moves played.
func (g *Game) Ply() int {
	return len(g.history)
}

// Position returns a copy of the current position.
func (g *Game) Position() Position {
	return g.pos
}

// Repetitions returns how often the current position has occurred.
func (g *Game) Repetitions() int {
	return g.reps.Current()
}

// MaxRepetitions returns the highest occurrence count of any position in
// the game so far.
func (g *Game) MaxRepetitions() int {
	return g.reps.Max()
}

// updateStatus recomputes the status. Unless force is set, a terminal
// status is left as it is.
func (g *Game) updateStatus(force bool) {
	if !force && g.status.IsTerminal() {
		return
	}
	g.status, g.drawReason = EvaluateStatus(&g.pos, g.reps.Current())
}

func (g *Game) positionKey() uint64 {
	return keyOf(&g.pos)
}

func keyOf(p *Position) uint64 {
	return hashing.Key(&p.Board, p.ToMove, p.Castling, p.EnPassant)
}
