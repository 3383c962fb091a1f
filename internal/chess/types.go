// Package chess provides the core chess data types shared by the rules engine
// and its hosts.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the FEN active-colour letter.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// MarshalText implements encoding.TextMarshaler.
func (c Colour) MarshalText() ([]byte, error) {
	if c == White {
		return []byte("white"), nil
	}
	return []byte("black"), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Colour) UnmarshalText(text []byte) error {
	switch string(text) {
	case "white", "w":
		*c = White
	case "black", "b":
		*c = Black
	default:
		return fmt.Errorf("unknown colour %q", text)
	}
	return nil
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceKind identifies the kind of a chess piece. The zero value NoKind
// marks an empty square or an absent promotion.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

// String returns the lower-case name of a piece kind.
func (k PieceKind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Letter returns the upper-case FEN letter of a piece kind.
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// TracksMoved reports whether pieces of this kind carry a moved flag.
// Kings and rooks need it for castling, pawns for their home-rank state.
func (k PieceKind) TracksMoved() bool {
	switch k {
	case King, Rook, Pawn:
		return true
	default:
		return false
	}
}

// IsPromotionTarget reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotionTarget() bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// PromotionKinds lists promotion targets in the order moves are generated.
var PromotionKinds = [4]PieceKind{Queen, Rook, Bishop, Knight}

// KindFromLetter converts a FEN or UCI letter of either case to a piece kind.
// NoKind is returned for unrecognised letters.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k PieceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *PieceKind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = PieceKind(i)
			return nil
		}
	}
	if len(text) == 1 {
		if kind := KindFromLetter(text[0]); kind != NoKind {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown piece kind %q", text)
}

// Piece is a piece on the board. The zero Piece is an empty square.
type Piece struct {
	Kind   PieceKind `json:"kind"`
	Colour Colour    `json:"colour"`
	Moved  bool      `json:"moved,omitempty"`
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind PieceKind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates an unmoved white piece.
func W(kind PieceKind) Piece {
	return NewPiece(White, kind)
}

// B creates an unmoved black piece.
func B(kind PieceKind) Piece {
	return NewPiece(Black, kind)
}

// IsEmpty reports whether the piece is the empty square value.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind PieceKind) bool {
	return p.Kind == kind && p.Colour == colour
}

// Letter returns the FEN letter: upper case for white, lower case for black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// WithMoved returns a copy of p with the moved flag set, for kinds that
// track it.
func (p Piece) WithMoved() Piece {
	if p.Kind.TracksMoved() {
		p.Moved = true
	}
	return p
}

// String returns a readable description such as "white knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	colour, _ := p.Colour.MarshalText()
	return string(colour) + " " + p.Kind.String()
}

// Status is the game status computed after every move or load.
type Status int

const (
	Active Status = iota
	Check
	Checkmate
	Stalemate
	Draw
)

var statusNames = [...]string{"active", "check", "checkmate", "stalemate", "draw"}

// String returns the lower-case status name.
func (s Status) String() string {
	if s >= 0 && int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// IsTerminal reports whether the game is over.
func (s Status) IsTerminal() bool {
	return s == Checkmate || s == Stalemate || s == Draw
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for i, name := range statusNames {
		if name == string(text) {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

// DrawReason explains why a game was drawn.
type DrawReason int

const (
	NoDraw DrawReason = iota
	FiftyMoveRule
	InsufficientMaterial
	ThreefoldRepetition
)

// String returns a short identifier for the draw reason.
func (r DrawReason) String() string {
	switch r {
	case FiftyMoveRule:
		return "fifty-move-rule"
	case InsufficientMaterial:
		return "insufficient-material"
	case ThreefoldRepetition:
		return "threefold-repetition"
	default:
		return ""
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r DrawReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *DrawReason) UnmarshalText(text []byte) error {
	for _, reason := range []DrawReason{NoDraw, FiftyMoveRule, InsufficientMaterial, ThreefoldRepetition} {
		if reason.String() == string(text) {
			*r = reason
			return nil
		}
	}
	return fmt.Errorf("unknown draw reason %q", text)
}

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingSide  bool `json:"whiteKingSide"`
	WhiteQueenSide bool `json:"whiteQueenSide"`
	BlackKingSide  bool `json:"blackKingSide"`
	BlackQueenSide bool `json:"blackQueenSide"`
}

// AllCastlingRights is the set of rights at the start of a game.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Has reports the right for a colour and side.
func (cr CastlingRights) Has(colour Colour, kingSide bool) bool {
	switch {
	case colour == White && kingSide:
		return cr.WhiteKingSide
	case colour == White:
		return cr.WhiteQueenSide
	case kingSide:
		return cr.BlackKingSide
	default:
		return cr.BlackQueenSide
	}
}

// Clear removes the right for a colour and side.
func (cr *CastlingRights) Clear(colour Colour, kingSide bool) {
	switch {
	case colour == White && kingSide:
		cr.WhiteKingSide = false
	case colour == White:
		cr.WhiteQueenSide = false
	case kingSide:
		cr.BlackKingSide = false
	default:
		cr.BlackQueenSide = false
	}
}

// ClearColour removes both rights of a colour.
func (cr *CastlingRights) ClearColour(colour Colour) {
	cr.Clear(colour, true)
	cr.Clear(colour, false)
}

// Bits packs the rights into four bits (K=1, Q=2, k=4, q=8).
func (cr CastlingRights) Bits() int {
	bits := 0
	if cr.WhiteKingSide {
		bits |= 1
	}
	if cr.WhiteQueenSide {
		bits |= 2
	}
	if cr.BlackKingSide {
		bits |= 4
	}
	if cr.BlackQueenSide {
		bits |= 8
	}
	return bits
}

// String returns the FEN castling field.
func (cr CastlingRights) String() string {
	s := ""
	if cr.WhiteKingSide {
		s += "K"
	}
	if cr.WhiteQueenSide {
		s += "Q"
	}
	if cr.BlackKingSide {
		s += "k"
	}
	if cr.BlackQueenSide {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}
