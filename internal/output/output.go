// Package output renders games and positions as text and JSON.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, separated from the previous one by a space or,
// when the line would overflow, a newline.
func (o *OutputWriter) Write(s string) {
	if s == "" {
		return
	}
	if o.needsSpace {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteBoard draws the position as an 8x8 diagram, rank 8 first, followed
// by the FEN.
func WriteBoard(w io.Writer, p *engine.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(w, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			piece := p.Board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				fmt.Fprint(w, " .")
			} else {
				fmt.Fprintf(w, " %c", piece.Letter())
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "   a b c d e f g h")
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.FEN())
}

// WriteMoves writes a numbered move list in long algebraic notation,
// wrapped at maxLineLength. startMove is the fullmove number of the first
// record; a history starting with black is numbered "N...".
func WriteMoves(w io.Writer, history []chess.MoveRecord, startMove int, maxLineLength int) {
	if len(history) == 0 {
		return
	}
	ow := NewOutputWriter(w, maxLineLength)
	moveNum := startMove
	for i := range history {
		rec := &history[i]
		switch {
		case rec.Piece.Colour == chess.White:
			ow.Write(strconv.Itoa(moveNum) + ".")
		case i == 0:
			ow.Write(strconv.Itoa(moveNum) + "...")
		}
		ow.Write(rec.Move().String())
		if rec.Piece.Colour == chess.Black {
			moveNum++
		}
	}
	ow.NewLine()
}

// WriteGame writes the game's move list, final diagram and status line.
func WriteGame(w io.Writer, s *engine.Snapshot, maxLineLength int) {
	start := s.FullmoveNumber
	if len(s.History) > 0 {
		start = s.History[0].PrevFullmoveNumber
	}
	WriteMoves(w, s.History, start, maxLineLength)
	pos := s.Position()
	WriteBoard(w, &pos)
	fmt.Fprintln(w, statusLine(s))
}

func statusLine(s *engine.Snapshot) string {
	line := s.Status.String()
	if s.DrawReason != chess.NoDraw {
		line += " (" + s.DrawReason.String() + ")"
	}
	if !s.Status.IsTerminal() {
		line += ", " + s.ToMove.String() + " to move"
	}
	return line
}
