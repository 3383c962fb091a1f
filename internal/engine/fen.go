package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a FEN string.
const fenFields = 6

// ParseFEN parses a six-field FEN string into a position. Errors wrap
// errors.ErrInvalidFEN.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return Position{}, fenError("field count", strconv.Itoa(len(parts)))
	}

	p := Position{EnPassant: chess.NoSquare}

	if err := parsePiecePositions(&p.Board, parts[0]); err != nil {
		return Position{}, err
	}
	if err := parseSideToMove(&p, parts[1]); err != nil {
		return Position{}, err
	}
	if err := parseCastlingRights(&p, parts[2]); err != nil {
		return Position{}, err
	}
	if err := parseEnPassant(&p, parts[3]); err != nil {
		return Position{}, err
	}
	if err := parseClocks(&p, parts[4], parts[5]); err != nil {
		return Position{}, err
	}
	if err := checkKings(&p.Board); err != nil {
		return Position{}, err
	}

	inferMovedFlags(&p)
	return p, nil
}

// MustParseFEN is like ParseFEN but panics on malformed input.
// It is intended for constants and tests.
func MustParseFEN(fen string) Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

func fenError(field, got string) error {
	return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: field, Got: got}
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError("rank count", positions)
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind := chess.KindFromLetter(c)
				if kind == chess.NoKind {
					return fenError("piece placement", string(c))
				}
				if file >= chess.BoardSize {
					return fenError("rank "+strconv.Itoa(rank+1), row)
				}
				colour := chess.White
				if c >= 'a' && c <= 'z' {
					colour = chess.Black
				}
				board.Set(chess.Sq(file, rank), chess.NewPiece(colour, kind))
				file++
			}
			if file > chess.BoardSize {
				return fenError("rank "+strconv.Itoa(rank+1), row)
			}
		}
		if file != chess.BoardSize {
			return fenError("rank "+strconv.Itoa(rank+1), row)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(p *Position, field string) error {
	switch field {
	case "w":
		p.ToMove = chess.White
	case "b":
		p.ToMove = chess.Black
	default:
		return fenError("side to move", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(p *Position, field string) error {
	if field == "-" {
		return nil
	}
	for _, c := range field {
		var flag *bool
		switch c {
		case 'K':
			flag = &p.Castling.WhiteKingSide
		case 'Q':
			flag = &p.Castling.WhiteQueenSide
		case 'k':
			flag = &p.Castling.BlackKingSide
		case 'q':
			flag = &p.Castling.BlackQueenSide
		}
		if flag == nil || *flag {
			return fenError("castling", field)
		}
		*flag = true
	}
	return nil
}

// parseEnPassant parses the en passant target field. The target must lie
// behind a pawn of the side that just moved.
func parseEnPassant(p *Position, field string) error {
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError("en passant", field)
	}
	wantRank := 5
	if p.ToMove == chess.Black {
		wantRank = 2
	}
	if sq.Rank != wantRank {
		return fenError("en passant", field)
	}
	p.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(p *Position, halfmove, fullmove string) error {
	h, err := strconv.Atoi(halfmove)
	if err != nil || h < 0 {
		return fenError("halfmove clock", halfmove)
	}
	f, err := strconv.Atoi(fullmove)
	if err != nil || f < 1 {
		return fenError("fullmove number", fullmove)
	}
	p.HalfmoveClock = h
	p.FullmoveNumber = f
	return nil
}

// checkKings enforces exactly one king per colour.
func checkKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(colour, chess.King); n != 1 {
			return fenError(colour.String()+" kings", strconv.Itoa(n))
		}
	}
	return nil
}

// inferMovedFlags derives moved flags that FEN does not carry. Kings and
// rooks count as unmoved only where a castling right still needs them;
// pawns count as unmoved only on their starting rank.
func inferMovedFlags(p *Position) {
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			sq := chess.Sq(file, rank)
			piece := p.Board.Get(sq)
			colour := piece.Colour
			switch piece.Kind {
			case chess.King:
				piece.Moved = sq != chess.KingHome(colour) ||
					!(p.Castling.Has(colour, true) || p.Castling.Has(colour, false))
			case chess.Rook:
				piece.Moved = !((sq == chess.RookHome(colour, true) && p.Castling.Has(colour, true)) ||
					(sq == chess.RookHome(colour, false) && p.Castling.Has(colour, false)))
			case chess.Pawn:
				piece.Moved = rank != chess.PawnStartRank(colour)
			default:
				continue
			}
			p.Board.Set(sq, piece)
		}
	}
}

// FEN returns the six-field FEN string of the position.
func (p *Position) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &p.Board)
	sb.WriteByte(' ')
	sb.WriteByte(p.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(p.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())
	fmt.Fprintf(&sb, " %d %d", p.HalfmoveClock, p.FullmoveNumber)

	return sb.String()
}

// BoardToFEN returns only the piece placement field for a board.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement field, rank 8 first.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board[file][rank]
			if piece.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}
