package hashing

import "github.com/lgbarn/chessrules-go/internal/chess"

// Zobrist keys for position hashing.
// Generated from a fixed seed so keys are stable across runs and stored
// snapshots.
var (
	zobristPiece      [2][7][64]uint64 // [Colour][PieceKind][Square], index 0 of kind unused
	zobristEnPassant  [8]uint64        // One per file
	zobristCastling   [16]uint64       // All 16 castling combinations
	zobristSideToMove uint64           // XOR when black to move
)

func init() {
	initZobrist()
}

// prng is a small xorshift64* generator.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := newPRNG(0x98F107A2BEEF1234)

	for c := chess.White; c <= chess.Black; c++ {
		for kind := chess.Pawn; kind <= chess.King; kind++ {
			for sq := 0; sq < 64; sq++ {
				zobristPiece[c][kind][sq] = rng.next()
			}
		}
	}

	for file := 0; file < chess.BoardSize; file++ {
		zobristEnPassant[file] = rng.next()
	}

	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// squareIndex maps a square to 0..63, a1 first.
func squareIndex(sq chess.Square) int {
	return sq.Rank*chess.BoardSize + sq.File
}

// PieceKey returns the Zobrist key for a piece on a square. Moved flags do
// not contribute.
func PieceKey(p chess.Piece, sq chess.Square) uint64 {
	if p.IsEmpty() {
		return 0
	}
	return zobristPiece[p.Colour][p.Kind][squareIndex(sq)]
}

// Key computes the reduced position key used for repetition detection:
// piece placement, side to move, castling rights and en passant target.
func Key(board *chess.Board, toMove chess.Colour, rights chess.CastlingRights, enPassant chess.Square) uint64 {
	var h uint64
	board.ForEach(func(sq chess.Square, p chess.Piece) {
		h ^= PieceKey(p, sq)
	})
	if toMove == chess.Black {
		h ^= zobristSideToMove
	}
	h ^= zobristCastling[rights.Bits()]
	if enPassant.OnBoard() {
		h ^= zobristEnPassant[enPassant.File]
	}
	return h
}
