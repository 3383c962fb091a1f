package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// GameWriter is the interface for writing games to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(s *engine.Snapshot) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. Batch writers write pending output here.
	Close() error
}

// TextWriter writes games as a move list and board diagram.
type TextWriter struct {
	w             io.Writer
	maxLineLength int
	count         int
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, maxLineLength int) *TextWriter {
	return &TextWriter{w: w, maxLineLength: maxLineLength}
}

// WriteGame writes a game immediately, separated from the previous one by
// a blank line.
func (tw *TextWriter) WriteGame(s *engine.Snapshot) error {
	if tw.count > 0 {
		if _, err := io.WriteString(tw.w, "\n"); err != nil {
			return err
		}
	}
	tw.count++
	WriteGame(tw.w, s, tw.maxLineLength)
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	games  []*JSONGame
	single bool // write each game immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches games into one array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(s *engine.Snapshot) error {
	jg := GameToJSON(s)
	if jw.single {
		return jw.encode(jg)
	}
	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := jw.encode(&JSONOutput{Games: jw.games})
	jw.games = nil
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
