// Package processing provides game analysis and validation by replaying a
// game's history.
package processing

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameAnalysis holds analysis results from replaying a game.
type GameAnalysis struct {
	StartFEN string `json:"startFen"`
	FinalFEN string `json:"finalFen"`
	Plies    int    `json:"plies"`

	Captures   int `json:"captures"`
	Checks     int `json:"checks"`
	Castles    int `json:"castles"`
	EnPassants int `json:"enPassants"`
	Promotions int `json:"promotions"`

	HasUnderpromotion bool `json:"hasUnderpromotion"`

	// Draw rule detection over the whole game, not only the final position
	MaxRepetitions          int  `json:"maxRepetitions"`
	HasRepetition           bool `json:"hasRepetition"`
	MaxHalfmoveClock        int  `json:"maxHalfmoveClock"`
	HasFiftyMoveRule        bool `json:"hasFiftyMoveRule"`
	HasInsufficientMaterial bool `json:"hasInsufficientMaterial"`

	FinalStatus     chess.Status     `json:"finalStatus"`
	FinalDrawReason chess.DrawReason `json:"finalDrawReason,omitempty"`
}

// ValidationResult holds the result of move list validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int   // ply of the rejected move, 0 for a bad start position
	Err      error // why validation failed
	Final    engine.Snapshot
}

// StartPosition returns the game with every move of the snapshot taken
// back.
func StartPosition(s *engine.Snapshot) (*engine.Game, error) {
	g := engine.NewGame()
	if err := g.LoadState(*s); err != nil {
		return nil, err
	}
	for g.Undo() {
	}
	return g, nil
}

// AnalyzeGame replays the history of a snapshot from its start position
// and analyzes it for various features.
func AnalyzeGame(s *engine.Snapshot) (*GameAnalysis, error) {
	g, err := StartPosition(s)
	if err != nil {
		return nil, err
	}

	analysis := &GameAnalysis{
		StartFEN:         g.ExportFEN(),
		MaxHalfmoveClock: g.Position().HalfmoveClock,
	}

	for i := range s.History {
		rec := &s.History[i]
		if err := g.MakeMove(rec.From, rec.To, rec.Promotion); err != nil {
			return nil, errors.Wrapf(err, "replay ply %d", i+1)
		}
		analysis.Plies++
		countMove(analysis, rec)

		if g.InCheck() {
			analysis.Checks++
		}
		if n := g.Position().HalfmoveClock; n > analysis.MaxHalfmoveClock {
			analysis.MaxHalfmoveClock = n
		}
	}

	pos := g.Position()
	analysis.MaxRepetitions = g.MaxRepetitions()
	analysis.FinalFEN = pos.FEN()
	analysis.HasRepetition = analysis.MaxRepetitions >= engine.RepetitionLimit
	analysis.HasFiftyMoveRule = analysis.MaxHalfmoveClock >= engine.FiftyMoveLimit
	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(&pos.Board)
	analysis.FinalStatus = g.Status()
	analysis.FinalDrawReason = g.DrawReason()
	return analysis, nil
}

func countMove(analysis *GameAnalysis, rec *chess.MoveRecord) {
	if rec.IsCapture() {
		analysis.Captures++
	}
	switch rec.Special.Kind {
	case chess.Castling:
		analysis.Castles++
	case chess.EnPassant:
		analysis.EnPassants++
	}
	if rec.Promotion != chess.NoKind {
		analysis.Promotions++
		if rec.Promotion != chess.Queen {
			analysis.HasUnderpromotion = true
		}
	}
}

// ValidateMoves plays a space-separated list of long algebraic moves from
// fen (the initial position if empty) and reports the first rejected move.
func ValidateMoves(fen, moves string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	g := engine.NewGame()
	if fen != "" {
		if err := g.LoadFEN(fen); err != nil {
			result.Valid = false
			result.Err = err
			return result
		}
	}

	for _, uci := range strings.Fields(moves) {
		if err := g.PlayUCI(uci); err != nil {
			result.Valid = false
			result.ErrorPly = g.Ply() + 1
			result.Err = &errors.GameError{Err: err, PlyNum: result.ErrorPly, MoveText: uci}
			break
		}
	}
	result.Final = g.ExportState()
	return result
}

// CountPlies counts the number of plies (half-moves) in a snapshot.
func CountPlies(s *engine.Snapshot) int {
	return len(s.History)
}
