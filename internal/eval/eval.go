// Package eval is the Evaluator component (§4.5): a pure, deterministic
// static evaluation function returning an integer centipawn score from the
// side-to-move's perspective.
package eval

import (
	"github.com/hollowrook/chesscore/internal/bitboard"
	"github.com/hollowrook/chesscore/internal/chess"
	"github.com/hollowrook/chesscore/internal/position"
)

const bishopPairBonus = 30
const rookOpenFileBonus = 20
const rookHalfOpenFileBonus = 10
const rookSeventhRankBonus = 15
const knightOutpostBonus = 20
const kingShieldPenalty = 10
const kingAttackerPenalty = 8

// Evaluate returns the static score of p from the side-to-move's
// perspective (positive favors the mover). It sums material, piece-square
// tables (tapered between middlegame and endgame weights), mobility, king
// safety, passed pawns, rook activity, knight outposts, and the bishop
// pair, then flips sign for Black to move (§4.5).
func Evaluate(p *position.Position) int {
	var mg, eg, phase int

	for c := chess.White; c <= chess.Black; c++ {
		sign := 1
		if c == chess.Black {
			sign = -1
		}
		for k := chess.Pawn; k <= chess.King; k++ {
			bb := p.Pieces[c][k]
			for bb != 0 {
				sq := bb.PopLSB()
				mg += sign * pieceValue[k]
				eg += sign * pieceValue[k]

				pstSq := sq
				if c == chess.Black {
					pstSq = mirror(sq)
				}
				mg += sign * mgPST[k][pstSq]
				eg += sign * egPST[k][pstSq]

				phase += phaseWeight[k]
			}
		}
	}

	if phase > maxPhase {
		phase = maxPhase
	}
	score := (mg*phase + eg*(maxPhase-phase)) / maxPhase

	score += mobility(p, chess.White) - mobility(p, chess.Black)
	score += kingSafety(p, chess.White) - kingSafety(p, chess.Black)
	score += passedPawns(p, chess.White) - passedPawns(p, chess.Black)
	score += rookActivity(p, chess.White) - rookActivity(p, chess.Black)
	score += knightOutposts(p, chess.White) - knightOutposts(p, chess.Black)
	score += bishopPair(p, chess.White) - bishopPair(p, chess.Black)

	if p.SideToMove == chess.Black {
		return -score
	}
	return score
}

// mobility counts pseudo-legal non-pawn destination squares per kind,
// weighted by mobilityWeight (§4.5 "count of pseudo-legal non-pawn moves").
func mobility(p *position.Position, c chess.Color) int {
	own := p.ColorBB[c]
	occ := p.AllBB
	var score int
	for k := chess.Knight; k <= chess.King; k++ {
		bb := p.Pieces[c][k]
		for bb != 0 {
			sq := bb.PopLSB()
			targets := bitboard.Attacks(k, sq, occ) &^ own
			score += targets.Count() * mobilityWeight[k]
		}
	}
	return score
}

// kingSafety penalizes a missing pawn shield in front of the king and
// each square adjacent to it that at least one enemy piece attacks.
func kingSafety(p *position.Position, c chess.Color) int {
	kingSq := p.King(c)
	them := c.Other()
	forward := 1
	if c == chess.Black {
		forward = -1
	}

	var penalty int
	shieldRank := kingSq.Rank() + forward
	if shieldRank >= 0 && shieldRank <= 7 {
		for df := -1; df <= 1; df++ {
			f := kingSq.File() + df
			if f < 0 || f > 7 {
				continue
			}
			if !p.Pieces[c][chess.Pawn].Has(chess.NewSquare(f, shieldRank)) {
				penalty += kingShieldPenalty
			}
		}
	}

	adjacent := bitboard.KingMoves[kingSq]
	for adjacent != 0 {
		sq := adjacent.PopLSB()
		if p.AttackersTo(sq, them, p.AllBB) != 0 {
			penalty += kingAttackerPenalty
		}
	}
	return -penalty
}

// passedPawns rewards pawns with no enemy pawn able to block or capture
// them on their way to promotion, scaling with how far advanced they are.
func passedPawns(p *position.Position, c chess.Color) int {
	them := c.Other()
	enemyPawns := p.Pieces[them][chess.Pawn]
	var score int

	pawns := p.Pieces[c][chess.Pawn]
	for pawns != 0 {
		sq := pawns.PopLSB()
		file, rank := sq.File(), sq.Rank()

		blocked := false
		for f := file - 1; f <= file+1; f++ {
			if f < 0 || f > 7 {
				continue
			}
			bb := enemyPawns & bitboard.FileMask[f]
			for bb != 0 {
				esq := bb.PopLSB()
				if c == chess.White && esq.Rank() > rank {
					blocked = true
				}
				if c == chess.Black && esq.Rank() < rank {
					blocked = true
				}
			}
		}
		if blocked {
			continue
		}
		advancement := rank
		if c == chess.Black {
			advancement = 7 - rank
		}
		score += advancement * advancement
	}
	return score
}

// rookActivity rewards rooks on open or half-open files and on the 7th
// rank (the board's 2nd rank for Black).
func rookActivity(p *position.Position, c chess.Color) int {
	them := c.Other()
	seventhRank := 6
	if c == chess.Black {
		seventhRank = 1
	}

	var score int
	rooks := p.Pieces[c][chess.Rook]
	for rooks != 0 {
		sq := rooks.PopLSB()
		file := sq.File()
		ownPawnsOnFile := p.Pieces[c][chess.Pawn] & bitboard.FileMask[file]
		enemyPawnsOnFile := p.Pieces[them][chess.Pawn] & bitboard.FileMask[file]
		switch {
		case ownPawnsOnFile == 0 && enemyPawnsOnFile == 0:
			score += rookOpenFileBonus
		case ownPawnsOnFile == 0:
			score += rookHalfOpenFileBonus
		}
		if sq.Rank() == seventhRank {
			score += rookSeventhRankBonus
		}
	}
	return score
}

// knightOutposts rewards knights on squares no enemy pawn can ever attack
// and that a friendly pawn currently supports.
func knightOutposts(p *position.Position, c chess.Color) int {
	them := c.Other()
	var score int
	knights := p.Pieces[c][chess.Knight]
	for knights != 0 {
		sq := knights.PopLSB()
		if bitboard.PawnAttacks[c.Other()][sq]&p.Pieces[c][chess.Pawn] == 0 {
			continue // not pawn-supported
		}
		if canEverBeAttackedByPawn(p, sq, them, c) {
			continue
		}
		score += knightOutpostBonus
	}
	return score
}

// canEverBeAttackedByPawn reports whether any enemy pawn on an adjacent
// file could still advance to attack sq.
func canEverBeAttackedByPawn(p *position.Position, sq chess.Square, enemy, us chess.Color) bool {
	file, rank := sq.File(), sq.Rank()
	for df := -1; df <= 1; df += 2 {
		f := file + df
		if f < 0 || f > 7 {
			continue
		}
		bb := p.Pieces[enemy][chess.Pawn] & bitboard.FileMask[f]
		for bb != 0 {
			esq := bb.PopLSB()
			if us == chess.White && esq.Rank() > rank {
				return true
			}
			if us == chess.Black && esq.Rank() < rank {
				return true
			}
		}
	}
	return false
}

// bishopPair returns a fixed bonus when a side holds both bishops.
func bishopPair(p *position.Position, c chess.Color) int {
	if p.Pieces[c][chess.Bishop].Count() >= 2 {
		return bishopPairBonus
	}
	return 0
}
