// Package zobrist is the ZobristTable component: a deterministic, seeded
// set of 64-bit keys for incremental position hashing. The table is built
// once at package init with a fixed seed (grounded on the splitmix64
// generator used by both the teacher's zobrist.go and the original
// engine's Zobrist class) and is immutable and safe to share thereafter.
package zobrist

import "github.com/hollowrook/chesscore/internal/chess"

// pieceIndex packs (color, kind) into 0..11 for the PieceSquare table.
func pieceIndex(c chess.Color, k chess.PieceKind) int {
	return int(k-chess.Pawn)*2 + int(c)
}

// Table holds all Zobrist components. It is safe for concurrent read-only
// use; nothing mutates it after New().
type Table struct {
	PieceSquare [12][64]uint64
	Side        uint64
	Castling    [16]uint64 // indexed by the 4-bit castling-rights bitmask
	EPFile      [8]uint64
}

const seed = 0xC0FFEE_F00D_DEAD

// splitmix64 is a small deterministic PRNG; identical seed always produces
// an identical key stream, which is what makes hashes reproducible across
// runs and platforms.
type splitmix64 struct{ state uint64 }

func (s *splitmix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Default is the package-wide Zobrist table, built once at init from a
// fixed seed. §9 permits either eager or lazy one-time initialization of
// shared read-only tables; this package chooses eager since the table is
// cheap to build and always needed.
var Default = New(seed)

// New builds a Zobrist table from the given seed. Exposed mainly for
// tests that want to confirm determinism against a second, independently
// built table with the same seed.
func New(seed uint64) *Table {
	rng := splitmix64{state: seed}
	t := &Table{}
	for p := 0; p < 12; p++ {
		for sq := 0; sq < 64; sq++ {
			t.PieceSquare[p][sq] = rng.next()
		}
	}
	t.Side = rng.next()
	// Castling rights are combined XOR of four independent per-right keys,
	// keyed here by the 16 possible combinations so callers can look up the
	// whole-rights key in one indexed read instead of four XORs.
	var rightKey [4]uint64
	for i := range rightKey {
		rightKey[i] = rng.next()
	}
	for mask := 0; mask < 16; mask++ {
		var k uint64
		for bit := 0; bit < 4; bit++ {
			if mask&(1<<uint(bit)) != 0 {
				k ^= rightKey[bit]
			}
		}
		t.Castling[mask] = k
	}
	for f := range t.EPFile {
		t.EPFile[f] = rng.next()
	}
	return t
}

// PieceKey returns the key for a piece of the given color/kind on sq.
func (t *Table) PieceKey(c chess.Color, k chess.PieceKind, sq chess.Square) uint64 {
	return t.PieceSquare[pieceIndex(c, k)][sq]
}

// CastlingKey returns the combined key for a 4-bit castling-rights mask
// (bit0=WK bit1=WQ bit2=BK bit3=BQ).
func (t *Table) CastlingKey(mask uint8) uint64 {
	return t.Castling[mask&0xF]
}

// EnPassantKey returns the key for the en-passant target's file.
func (t *Table) EnPassantKey(file int) uint64 {
	return t.EPFile[file]
}
