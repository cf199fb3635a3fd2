package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hollowrook/chesscore/internal/chess"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var letterToKind = map[byte]chess.PieceKind{
	'p': chess.Pawn, 'n': chess.Knight, 'b': chess.Bishop,
	'r': chess.Rook, 'q': chess.Queen, 'k': chess.King,
}

// ParseFEN parses a four-, five-, or six-field FEN string (§6): missing
// trailing fields default to halfmove=0, fullmove=1. It rejects malformed
// piece placements, requires exactly one king per side, and checks
// en-passant target consistency with the side to move.
func ParseFEN(fen string) (*Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return nil, fmt.Errorf("fen: expected at least 4 fields, got %d", len(fields))
	}

	p := New()
	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.SideToMove = chess.White
	case "b":
		p.SideToMove = chess.Black
	default:
		return nil, fmt.Errorf("fen: invalid side to move %q", fields[1])
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	p.CastlingRights = rights

	ep, err := parseEnPassant(fields[3], p.SideToMove)
	if err != nil {
		return nil, err
	}
	p.EnPassant = ep

	p.HalfmoveClock = 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("fen: invalid halfmove clock %q", fields[4])
		}
		p.HalfmoveClock = n
	}

	p.FullmoveNumber = 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("fen: invalid fullmove number %q", fields[5])
		}
		p.FullmoveNumber = n
	}

	if p.Pieces[chess.White][chess.King].Count() != 1 {
		return nil, fmt.Errorf("fen: white must have exactly one king")
	}
	if p.Pieces[chess.Black][chess.King].Count() != 1 {
		return nil, fmt.Errorf("fen: black must have exactly one king")
	}

	p.Hash = p.Recompute()
	p.RepetitionKeys = append(p.RepetitionKeys, p.Hash)
	return p, nil
}

func parsePlacement(p *Position, field string) error {
	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen: expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range []byte(rankStr) {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			kind, ok := letterToKind[toLower(ch)]
			if !ok {
				return fmt.Errorf("fen: invalid piece letter %q", string(ch))
			}
			if file > 7 {
				return fmt.Errorf("fen: rank %q overflows the board", rankStr)
			}
			color := chess.White
			if ch >= 'a' && ch <= 'z' {
				color = chess.Black
			}
			p.putPiece(color, kind, chess.NewSquare(file, rank))
			file++
		}
		if file != 8 {
			return fmt.Errorf("fen: rank %q does not sum to 8 files", rankStr)
		}
	}
	return nil
}

func toLower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

func parseCastling(field string) (uint8, error) {
	if field == "-" {
		return 0, nil
	}
	var rights uint8
	for _, ch := range []byte(field) {
		switch ch {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		default:
			return 0, fmt.Errorf("fen: invalid castling field %q", field)
		}
	}
	return rights, nil
}

func parseEnPassant(field string, stm chess.Color) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return chess.NoSquare, fmt.Errorf("fen: invalid en-passant square %q", field)
	}
	// The target sits on rank 6 (Black just pushed) when White is to move,
	// or rank 3 (White just pushed) when Black is to move (§3).
	wantRank := 5 // 0-based rank 6
	if stm == chess.Black {
		wantRank = 2 // 0-based rank 3
	}
	if sq.Rank() != wantRank {
		return chess.NoSquare, fmt.Errorf("fen: en-passant square %q inconsistent with side to move", field)
	}
	return sq, nil
}

// FEN renders the position back to Forsyth-Edwards Notation. Round-trips
// exactly for every position produced by ParseFEN (§6, §8).
func (p *Position) FEN() string {
	var b strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			piece := p.PieceAt(chess.NewSquare(f, r))
			if piece == chess.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(piece.String())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			b.WriteByte('/')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.SideToMove.String())
	b.WriteByte(' ')
	if p.CastlingRights == 0 {
		b.WriteByte('-')
	} else {
		if p.CanCastle(WhiteKingside) {
			b.WriteByte('K')
		}
		if p.CanCastle(WhiteQueenside) {
			b.WriteByte('Q')
		}
		if p.CanCastle(BlackKingside) {
			b.WriteByte('k')
		}
		if p.CanCastle(BlackQueenside) {
			b.WriteByte('q')
		}
	}
	b.WriteByte(' ')
	b.WriteString(p.EnPassant.String())
	fmt.Fprintf(&b, " %d %d", p.HalfmoveClock, p.FullmoveNumber)
	return b.String()
}
