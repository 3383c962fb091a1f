package chess

import "fmt"

// SpecialKind classifies moves with side effects beyond moving one piece.
type SpecialKind int

const (
	NoSpecial SpecialKind = iota
	Castling
	EnPassant
	Promotion
)

var specialNames = [...]string{"", "castling", "enPassant", "promotion"}

// String returns the special-move name, or "" for ordinary moves.
func (k SpecialKind) String() string {
	if k >= 0 && int(k) < len(specialNames) {
		return specialNames[k]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (k SpecialKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SpecialKind) UnmarshalText(text []byte) error {
	for i, name := range specialNames {
		if name == string(text) {
			*k = SpecialKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown special move %q", text)
}

// Special describes the side effects of a special move. Castling uses
// RookFrom/RookTo; en passant uses CapturedPawn.
type Special struct {
	Kind         SpecialKind `json:"kind,omitempty"`
	RookFrom     Square      `json:"rookFrom"`
	RookTo       Square      `json:"rookTo"`
	CapturedPawn Square      `json:"capturedPawn"`
}

// Move represents a candidate or legal move.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`

	// Side effects for castling, en passant and promotion.
	Special Special `json:"special"`

	// The piece promoted to (NoKind if not a promotion).
	Promotion PieceKind `json:"promotion,omitempty"`
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Special.Kind == Castling
}

// IsEnPassant returns true if this move is an en-passant capture.
func (m Move) IsEnPassant() bool {
	return m.Special.Kind == EnPassant
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Special.Kind == Promotion
}

// String returns the move in long algebraic (UCI) form, e.g. "e2e4" or
// "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// ParseMove parses a long algebraic move such as "e2e4" or "a7a8n" into its
// origin, destination and promotion kind.
func ParseMove(s string) (from, to Square, promotion PieceKind, err error) {
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("invalid move %q", s)
	}
	if from, err = ParseSquare(s[0:2]); err != nil {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("invalid move %q: %w", s, err)
	}
	if to, err = ParseSquare(s[2:4]); err != nil {
		return NoSquare, NoSquare, NoKind, fmt.Errorf("invalid move %q: %w", s, err)
	}
	if len(s) == 5 {
		promotion = KindFromLetter(s[4])
		if !promotion.IsPromotionTarget() {
			return NoSquare, NoSquare, NoKind, fmt.Errorf("invalid promotion in move %q", s)
		}
	}
	return from, to, promotion, nil
}

// MoveRecord is an immutable history entry holding everything needed to
// reverse a move exactly.
type MoveRecord struct {
	// The piece as it stood before the move, including its moved flag.
	Piece Piece  `json:"piece"`
	From  Square `json:"from"`
	To    Square `json:"to"`

	// The captured piece (empty if none) and the square it stood on, which
	// differs from To for en passant.
	Captured       Piece  `json:"captured"`
	CapturedSquare Square `json:"capturedSquare"`

	Promotion PieceKind `json:"promotion,omitempty"`
	Special   Special   `json:"special"`

	// Moved flag of the castling rook before the move.
	RookMoved bool `json:"rookMoved,omitempty"`

	// State before the move.
	PrevEnPassant      Square         `json:"prevEnPassant"`
	PrevCastling       CastlingRights `json:"prevCastling"`
	PrevHalfmoveClock  int            `json:"prevHalfmoveClock"`
	PrevFullmoveNumber int            `json:"prevFullmoveNumber"`
}

// IsCapture returns true if the recorded move captured a piece.
func (r *MoveRecord) IsCapture() bool {
	return !r.Captured.IsEmpty()
}

// Move returns the move this record was created from.
func (r *MoveRecord) Move() Move {
	return Move{From: r.From, To: r.To, Special: r.Special, Promotion: r.Promotion}
}
