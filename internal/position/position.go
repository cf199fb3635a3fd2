// Package position is the Position component: mutable board state plus
// make/unmake over an undo stack of reversible deltas (§3, §4.3). Every
// exported mutator keeps the twelve piece bitboards, the per-color and
// all-occupancy bitboards, the mailbox, and the incrementally maintained
// Zobrist hash in lockstep; nothing here ever recomputes the hash from
// scratch on a hot path (§9) except the debug-only Recompute used by
// tests and assertions.
package position

import (
	"fmt"
	"strings"

	"github.com/hollowrook/chesscore/internal/bitboard"
	"github.com/hollowrook/chesscore/internal/chess"
	"github.com/hollowrook/chesscore/internal/zobrist"
)

// Castling right bits, matching the zobrist package's mask convention.
const (
	WhiteKingside uint8 = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside
)

// UndoRecord captures everything apply() cannot cheaply re-derive on
// undo(): the previous irreversible state plus what was captured, if
// anything. Position.undo reverses the move using this record and the
// move itself; it never recomputes from scratch.
type UndoRecord struct {
	Move            chess.Move
	PrevCastling    uint8
	PrevEnPassant   chess.Square
	PrevHalfmove    int
	PrevHash        uint64
	CapturedKind    chess.PieceKind
	CapturedSquare  chess.Square
	CapturedColor   chess.Color
	RookFrom        chess.Square
	RookTo          chess.Square
	PrevFullmove    int
}

// Position is the mutable board state described in spec §3.
type Position struct {
	Pieces  [2][7]bitboard.Board // [color][kind], kind 0 (NoKind) unused
	ColorBB [2]bitboard.Board
	AllBB   bitboard.Board
	Mailbox [64]chess.Piece

	SideToMove     chess.Color
	CastlingRights uint8
	EnPassant      chess.Square
	HalfmoveClock  int
	FullmoveNumber int

	Hash uint64

	History        []UndoRecord
	RepetitionKeys []uint64

	zt *zobrist.Table
}

// New returns an empty position wired to the default Zobrist table.
func New() *Position {
	p := &Position{zt: zobrist.Default}
	for c := range p.Mailbox {
		p.Mailbox[c] = chess.NoPiece
	}
	p.EnPassant = chess.NoSquare
	p.FullmoveNumber = 1
	return p
}

// StartPosition returns the standard chess starting position.
func StartPosition() *Position {
	p, err := ParseFEN(StartFEN)
	if err != nil {
		panic("startFEN must always parse: " + err.Error())
	}
	return p
}

// PieceAt returns the piece occupying sq, or NoPiece.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	return p.Mailbox[sq]
}

// King returns the square of the given color's king.
func (p *Position) King(c chess.Color) chess.Square {
	return p.Pieces[c][chess.King].LSB()
}

// CanCastle reports whether the given right is currently held.
func (p *Position) CanCastle(right uint8) bool {
	return p.CastlingRights&right != 0
}

// Clone returns a deep, independent copy including undo history.
func (p *Position) Clone() *Position {
	clone := *p
	clone.History = append([]UndoRecord(nil), p.History...)
	clone.RepetitionKeys = append([]uint64(nil), p.RepetitionKeys...)
	return &clone
}

// placeRaw and clearRaw touch only the bitboards and mailbox, never the
// hash. apply() uses putPiece/removePiece (below), which pair a raw update
// with the matching hash XOR; undo() uses the raw form directly because it
// restores the whole hash from the UndoRecord in one write instead of
// re-deriving it move by move.
func (p *Position) placeRaw(c chess.Color, k chess.PieceKind, sq chess.Square) {
	bb := bitboard.FromSquare(sq)
	p.Pieces[c][k] |= bb
	p.ColorBB[c] |= bb
	p.AllBB |= bb
	p.Mailbox[sq] = chess.MakePiece(c, k)
}

func (p *Position) clearRaw(c chess.Color, k chess.PieceKind, sq chess.Square) {
	bb := bitboard.FromSquare(sq)
	p.Pieces[c][k] &^= bb
	p.ColorBB[c] &^= bb
	p.AllBB &^= bb
	p.Mailbox[sq] = chess.NoPiece
}

func (p *Position) putPiece(c chess.Color, k chess.PieceKind, sq chess.Square) {
	p.placeRaw(c, k, sq)
	p.Hash ^= p.zt.PieceKey(c, k, sq)
}

func (p *Position) removePiece(c chess.Color, k chess.PieceKind, sq chess.Square) {
	p.clearRaw(c, k, sq)
	p.Hash ^= p.zt.PieceKey(c, k, sq)
}

// InCheck reports whether the side to move is currently in check. Defined
// here (rather than in movegen) so the invariant in §3 — "a position in
// which the side not to move is in check is illegal" — can be asserted
// without importing movegen from position.
func (p *Position) InCheck() bool {
	return p.SquareAttacked(p.King(p.SideToMove), p.SideToMove.Other())
}

// SquareAttacked reports whether sq is attacked by any piece of color by.
func (p *Position) SquareAttacked(sq chess.Square, by chess.Color) bool {
	if sq == chess.NoSquare {
		return false
	}
	if bitboard.PawnAttacks[by.Other()][sq]&p.Pieces[by][chess.Pawn] != 0 {
		return true
	}
	if bitboard.KnightMoves[sq]&p.Pieces[by][chess.Knight] != 0 {
		return true
	}
	if bitboard.KingMoves[sq]&p.Pieces[by][chess.King] != 0 {
		return true
	}
	bishopsQueens := p.Pieces[by][chess.Bishop] | p.Pieces[by][chess.Queen]
	if bitboard.BishopAttacks(sq, p.AllBB)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.Pieces[by][chess.Rook] | p.Pieces[by][chess.Queen]
	if bitboard.RookAttacks(sq, p.AllBB)&rooksQueens != 0 {
		return true
	}
	return false
}

// AttackersTo returns every square occupied by a piece of color `by` that
// attacks sq, given the supplied occupancy (callers pass a modified
// occupancy for x-ray checks such as the en-passant discovered-check test).
func (p *Position) AttackersTo(sq chess.Square, by chess.Color, occ bitboard.Board) bitboard.Board {
	var attackers bitboard.Board
	attackers |= bitboard.PawnAttacks[by.Other()][sq] & p.Pieces[by][chess.Pawn]
	attackers |= bitboard.KnightMoves[sq] & p.Pieces[by][chess.Knight]
	attackers |= bitboard.KingMoves[sq] & p.Pieces[by][chess.King]
	attackers |= bitboard.BishopAttacks(sq, occ) & (p.Pieces[by][chess.Bishop] | p.Pieces[by][chess.Queen])
	attackers |= bitboard.RookAttacks(sq, occ) & (p.Pieces[by][chess.Rook] | p.Pieces[by][chess.Queen])
	return attackers
}

// Recompute rebuilds the Zobrist hash from scratch. Reserved for debug
// assertions and tests per §9; never called on the search hot path.
func (p *Position) Recompute() uint64 {
	var h uint64
	for c := chess.White; c <= chess.Black; c++ {
		for k := chess.Pawn; k <= chess.King; k++ {
			bb := p.Pieces[c][k]
			for bb != 0 {
				sq := bb.PopLSB()
				h ^= p.zt.PieceKey(c, k, sq)
			}
		}
	}
	if p.SideToMove == chess.Black {
		h ^= p.zt.Side
	}
	h ^= p.zt.CastlingKey(p.CastlingRights)
	if p.EnPassant != chess.NoSquare {
		h ^= p.zt.EnPassantKey(p.EnPassant.File())
	}
	return h
}

// String renders an ASCII board for debugging.
func (p *Position) String() string {
	var b strings.Builder
	for r := 7; r >= 0; r-- {
		fmt.Fprintf(&b, "%d ", r+1)
		for f := 0; f < 8; f++ {
			b.WriteString(p.PieceAt(chess.NewSquare(f, r)).String())
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteString("  a b c d e f g h\n")
	return b.String()
}
