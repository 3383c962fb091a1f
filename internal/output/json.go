package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// JSONGame is the client view of a game.
type JSONGame struct {
	ID             string     `json:"id,omitempty"`
	FEN            string     `json:"fen"`
	Turn           string     `json:"turn"` // "white" or "black"
	Status         string     `json:"status"`
	DrawReason     string     `json:"drawReason,omitempty"`
	InCheck        bool       `json:"inCheck"`
	HalfmoveClock  int        `json:"halfmoveClock"`
	FullmoveNumber int        `json:"fullmoveNumber"`
	Moves          []JSONMove `json:"moves"`
}

// JSONMove is one played move in the game view.
type JSONMove struct {
	Ply       int    `json:"ply"`
	Colour    string `json:"colour"`
	UCI       string `json:"uci"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Special   string `json:"special,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a snapshot to its JSON view.
func GameToJSON(s *engine.Snapshot) *JSONGame {
	turn, _ := s.ToMove.MarshalText()
	jg := &JSONGame{
		FEN:            s.FEN(),
		Turn:           string(turn),
		Status:         s.Status.String(),
		DrawReason:     s.DrawReason.String(),
		InCheck:        s.InCheck(),
		HalfmoveClock:  s.HalfmoveClock,
		FullmoveNumber: s.FullmoveNumber,
		Moves:          make([]JSONMove, 0, len(s.History)),
	}
	for i := range s.History {
		jg.Moves = append(jg.Moves, convertRecord(i+1, &s.History[i]))
	}
	return jg
}

func convertRecord(ply int, rec *chess.MoveRecord) JSONMove {
	colour, _ := rec.Piece.Colour.MarshalText()
	jm := JSONMove{
		Ply:     ply,
		Colour:  string(colour),
		UCI:     rec.Move().String(),
		From:    rec.From.String(),
		To:      rec.To.String(),
		Piece:   rec.Piece.Kind.String(),
		Special: rec.Special.Kind.String(),
	}
	if rec.IsCapture() {
		jm.Captured = rec.Captured.Kind.String()
	}
	if rec.Promotion != chess.NoKind {
		jm.Promotion = rec.Promotion.String()
	}
	return jm
}

// WriteGameJSON writes the indented JSON view of a game.
func WriteGameJSON(w io.Writer, g *engine.Game) error {
	s := g.ExportState()
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(&s))
}
