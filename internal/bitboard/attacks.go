package bitboard

import "github.com/hollowrook/chesscore/internal/chess"

// Precomputed, immutable after init: pawn/knight/king attack sets, and the
// between/line tables used by pin detection and check-evasion blocking.
// Sliding attacks for bishop/rook/queen are computed by ray iteration at
// query time (§4.1 permits this explicitly in place of magic bitboards);
// perft correctness does not depend on constant-time lookups.
var (
	PawnAttacks  [2][64]Board // [color][square]
	KnightMoves  [64]Board
	KingMoves    [64]Board
	betweenTable [64][64]Board
	lineTable    [64][64]Board
)

func init() {
	initLeaperAttacks()
	initRayTables()
}

func initLeaperAttacks() {
	knightDeltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingDeltas := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			sq := chess.NewSquare(f, r)
			var knight, king Board
			for _, d := range knightDeltas {
				if nf, nr := f+d[0], r+d[1]; inBounds(nf, nr) {
					knight = knight.Set(chess.NewSquare(nf, nr))
				}
			}
			for _, d := range kingDeltas {
				if nf, nr := f+d[0], r+d[1]; inBounds(nf, nr) {
					king = king.Set(chess.NewSquare(nf, nr))
				}
			}
			KnightMoves[sq] = knight
			KingMoves[sq] = king

			var whitePawn, blackPawn Board
			if inBounds(f-1, r+1) {
				whitePawn = whitePawn.Set(chess.NewSquare(f-1, r+1))
			}
			if inBounds(f+1, r+1) {
				whitePawn = whitePawn.Set(chess.NewSquare(f+1, r+1))
			}
			if inBounds(f-1, r-1) {
				blackPawn = blackPawn.Set(chess.NewSquare(f-1, r-1))
			}
			if inBounds(f+1, r-1) {
				blackPawn = blackPawn.Set(chess.NewSquare(f+1, r-1))
			}
			PawnAttacks[chess.White][sq] = whitePawn
			PawnAttacks[chess.Black][sq] = blackPawn
		}
	}
}

func inBounds(f, r int) bool {
	return f >= 0 && f < 8 && r >= 0 && r < 8
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// rayAttacks casts rays from sq in the given directions, stopping (but
// including) the first occupied square in each direction.
func rayAttacks(sq chess.Square, occupied Board, dirs [4][2]int) Board {
	var attacks Board
	f0, r0 := sq.File(), sq.Rank()
	for _, d := range dirs {
		f, r := f0+d[0], r0+d[1]
		for inBounds(f, r) {
			s := chess.NewSquare(f, r)
			attacks = attacks.Set(s)
			if occupied.Has(s) {
				break
			}
			f += d[0]
			r += d[1]
		}
	}
	return attacks
}

// BishopAttacks returns the bishop attack set from sq given occupancy.
func BishopAttacks(sq chess.Square, occupied Board) Board {
	return rayAttacks(sq, occupied, bishopDirs)
}

// RookAttacks returns the rook attack set from sq given occupancy.
func RookAttacks(sq chess.Square, occupied Board) Board {
	return rayAttacks(sq, occupied, rookDirs)
}

// QueenAttacks returns the queen attack set from sq given occupancy.
func QueenAttacks(sq chess.Square, occupied Board) Board {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// Attacks returns the attack set for a non-pawn piece kind. Pawns are
// excluded since their attacks depend on color; callers use PawnAttacks.
func Attacks(kind chess.PieceKind, sq chess.Square, occupied Board) Board {
	switch kind {
	case chess.Knight:
		return KnightMoves[sq]
	case chess.Bishop:
		return BishopAttacks(sq, occupied)
	case chess.Rook:
		return RookAttacks(sq, occupied)
	case chess.Queen:
		return QueenAttacks(sq, occupied)
	case chess.King:
		return KingMoves[sq]
	default:
		return 0
	}
}

// Between returns the bitboard of squares strictly between a and b along a
// shared rank, file, or diagonal; 0 if they don't share a ray.
func Between(a, b chess.Square) Board {
	return betweenTable[a][b]
}

// Line returns the full board-spanning line through a and b (both
// endpoints and everything between and beyond, along the shared ray); 0 if
// they don't share a ray.
func Line(a, b chess.Square) Board {
	return lineTable[a][b]
}

func initRayTables() {
	dirs := append(append([][2]int{}, bishopDirs[:]...), rookDirs[:]...)
	for a := chess.Square(0); a < 64; a++ {
		for b := chess.Square(0); b < 64; b++ {
			if a == b {
				continue
			}
			fa, ra := a.File(), a.Rank()
			fb, rb := b.File(), b.Rank()
			for _, d := range dirs {
				f, r := fa+d[0], ra+d[1]
				var between Board
				found := false
				for inBounds(f, r) {
					s := chess.NewSquare(f, r)
					if s == b {
						found = true
						break
					}
					between = between.Set(s)
					f += d[0]
					r += d[1]
				}
				if !found {
					continue
				}
				betweenTable[a][b] = between
				// Extend the line beyond both endpoints.
				line := between.Set(a).Set(b)
				bf, br := fa-d[0], ra-d[1]
				for inBounds(bf, br) {
					line = line.Set(chess.NewSquare(bf, br))
					bf -= d[0]
					br -= d[1]
				}
				ff, fr := fb+d[0], rb+d[1]
				for inBounds(ff, fr) {
					line = line.Set(chess.NewSquare(ff, fr))
					ff += d[0]
					fr += d[1]
				}
				lineTable[a][b] = line
				break
			}
			_ = rb
		}
	}
}
