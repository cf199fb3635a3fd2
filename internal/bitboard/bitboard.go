// Package bitboard is the BitboardGeometry component: precomputed attack
// masks and ray tables, immutable after package init. Nothing here mutates
// after the init() below runs, so it is safe to share across concurrent
// searches without synchronization.
package bitboard

import (
	"math/bits"

	"github.com/hollowrook/chesscore/internal/chess"
)

// Board is a 64-bit set of squares, bit s set iff square s is occupied.
type Board uint64

// File and rank masks, indexed 0(a/1)..7(h/8).
var (
	FileMask [8]Board
	RankMask [8]Board
)

const (
	fileA Board = 0x0101010101010101
	rank1 Board = 0x00000000000000FF
)

func init() {
	for f := 0; f < 8; f++ {
		FileMask[f] = fileA << uint(f)
	}
	for r := 0; r < 8; r++ {
		RankMask[r] = rank1 << uint(8*r)
	}
}

// FromSquare returns a board with only sq set.
func FromSquare(sq chess.Square) Board {
	return Board(1) << uint(sq)
}

// Set returns b with sq set.
func (b Board) Set(sq chess.Square) Board { return b | FromSquare(sq) }

// Clear returns b with sq cleared.
func (b Board) Clear(sq chess.Square) Board { return b &^ FromSquare(sq) }

// Has reports whether sq is set in b.
func (b Board) Has(sq chess.Square) bool { return b&FromSquare(sq) != 0 }

// Count returns the population count.
func (b Board) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the lowest set square, or NoSquare if b is empty.
func (b Board) LSB() chess.Square {
	if b == 0 {
		return chess.NoSquare
	}
	return chess.Square(bits.TrailingZeros64(uint64(b)))
}

// PopLSB clears and returns the lowest set square.
func (b *Board) PopLSB() chess.Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Empty reports whether the board has no bits set.
func (b Board) Empty() bool { return b == 0 }
