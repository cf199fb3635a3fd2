package search

import (
	"github.com/hollowrook/chesscore/internal/bitboard"
	"github.com/hollowrook/chesscore/internal/chess"
	"github.com/hollowrook/chesscore/internal/eval"
	"github.com/hollowrook/chesscore/internal/position"
)

// seeValue mirrors eval's material scale; kept separate so a change to
// positional evaluation never perturbs capture ordering.
var seeValue = [7]int{0, eval.PawnValue, eval.KnightValue, eval.BishopValue, eval.RookValue, eval.QueenValue, 20000}

// staticExchangeEval runs the classic swap algorithm on m's destination
// square: repeatedly bring in the least valuable attacker of the side to
// move next, alternating sides, and minimax the resulting gain sequence.
// Grounded on chessvariantengine-lib's see() (search.go), adapted from its
// figure-array representation to this module's per-color piece bitboards.
func staticExchangeEval(p *position.Position, m chess.Move) int {
	sq := m.To
	occ := p.AllBB
	attacker := m.Piece
	side := p.SideToMove

	var gains [32]int
	depth := 0
	gains[0] = seeValue[capturedKind(p, m)]

	fromBB := bitboard.FromSquare(m.From)
	occ &^= fromBB
	side = side.Other()

	for {
		attackers := p.AttackersTo(sq, side, occ) & occ
		if attackers == 0 {
			break
		}
		kind, from, ok := leastValuableAttacker(p, attackers, side)
		if !ok {
			break
		}
		depth++
		gains[depth] = seeValue[attacker] - gains[depth-1]
		attacker = kind
		occ &^= bitboard.FromSquare(from)
		side = side.Other()
		if depth >= len(gains)-1 {
			break
		}
	}

	for depth > 0 {
		if -gains[depth] < gains[depth-1] {
			gains[depth-1] = -gains[depth]
		}
		depth--
	}
	return gains[0]
}

func capturedKind(p *position.Position, m chess.Move) chess.PieceKind {
	if m.Flag == chess.EnPassant {
		return chess.Pawn
	}
	return m.Captured
}

// leastValuableAttacker picks the cheapest piece of color side among
// attackers, in material order pawn..king.
func leastValuableAttacker(p *position.Position, attackers bitboard.Board, side chess.Color) (chess.PieceKind, chess.Square, bool) {
	for k := chess.Pawn; k <= chess.King; k++ {
		bb := attackers & p.Pieces[side][k]
		if bb != 0 {
			return k, bb.LSB(), true
		}
	}
	return chess.NoKind, chess.NoSquare, false
}
