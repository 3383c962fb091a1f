package chess

import "fmt"

// Constants for board dimensions.
const (
	BoardSize = 8

	FileBase = 'a'
	RankBase = '1'
)

// Square is a board coordinate. File 0 is the a-file and rank 0 is white's
// back rank.
type Square struct {
	File int
	Rank int
}

// NoSquare marks the absence of a square, e.g. no en-passant target.
var NoSquare = Square{File: -1, Rank: -1}

// Sq is shorthand for Square{file, rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// OnBoard reports whether both coordinates lie in [0,7].
func (s Square) OnBoard() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square shifted by the given file and rank deltas.
// The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 1
}

// String returns the square in file-rank form, e.g. "e4", or "-" for
// squares off the board.
func (s Square) String() string {
	if !s.OnBoard() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare parses a square in file-rank form.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	sq := Square{File: int(s[0]) - FileBase, Rank: int(s[1]) - RankBase}
	if !sq.OnBoard() {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// It is intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// MarshalText implements encoding.TextMarshaler.
func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Square) UnmarshalText(text []byte) error {
	if string(text) == "-" || len(text) == 0 {
		*s = NoSquare
		return nil
	}
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// Board is an 8x8 grid of pieces indexed [file][rank]. It is a value type:
// assigning a Board copies every square.
type Board [BoardSize][BoardSize]Piece

// Get returns the piece on a square.
func (b *Board) Get(sq Square) Piece {
	return b[sq.File][sq.Rank]
}

// Set places a piece on a square.
func (b *Board) Set(sq Square, p Piece) {
	b[sq.File][sq.Rank] = p
}

// Clear empties a square.
func (b *Board) Clear(sq Square) {
	b[sq.File][sq.Rank] = Piece{}
}

// IsEmpty reports whether a square holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b[sq.File][sq.Rank].IsEmpty()
}

// FindKing returns the square of the given colour's king.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b[file][rank].Is(colour, King) {
				return Sq(file, rank), true
			}
		}
	}
	return NoSquare, false
}

// Count returns the number of pieces of the given colour and kind.
func (b *Board) Count(colour Colour, kind PieceKind) int {
	n := 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if b[file][rank].Is(colour, kind) {
				n++
			}
		}
	}
	return n
}

// ForEach calls fn for every occupied square, ranks 1 to 8, files a to h.
func (b *Board) ForEach(fn func(sq Square, p Piece)) {
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b[file][rank]; !p.IsEmpty() {
				fn(Sq(file, rank), p)
			}
		}
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b[file][0] = W(backRank[file])
		b[file][1] = W(Pawn)
		b[file][6] = B(Pawn)
		b[file][7] = B(backRank[file])
	}
}

// HomeRank returns the back rank of a colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank pawns of a colour start on.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank on which pawns of a colour promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// KingHome returns the starting square of a colour's king.
func KingHome(colour Colour) Square {
	return Sq(4, HomeRank(colour))
}

// RookHome returns the starting corner of a colour's king-side or
// queen-side rook.
func RookHome(colour Colour, kingSide bool) Square {
	if kingSide {
		return Sq(7, HomeRank(colour))
	}
	return Sq(0, HomeRank(colour))
}
