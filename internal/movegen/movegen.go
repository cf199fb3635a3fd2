// Package movegen is the MoveGenerator component (§4.4): legal move
// generation over a *position.Position, built from BitboardGeometry attack
// sets plus a legality filter grounded on pin detection and a clone-based
// attack test for the rare cases (king safety, en-passant) that pin
// detection alone cannot settle cheaply.
package movegen

import (
	"github.com/hollowrook/chesscore/internal/bitboard"
	"github.com/hollowrook/chesscore/internal/chess"
	"github.com/hollowrook/chesscore/internal/position"
)

// GenerateLegal returns every legal move in p. Order is unspecified but
// stable given the same position (§4.4).
func GenerateLegal(p *position.Position) []chess.Move {
	pseudo := pseudoLegalMoves(p, false)
	return filterLegal(p, pseudo)
}

// GenerateCaptures returns captures and promotions only (including quiet
// promoting pushes, which are not captures but are not filtered out
// either), for quiescence (§4.4).
func GenerateCaptures(p *position.Position) []chess.Move {
	pseudo := pseudoLegalMoves(p, true)
	return filterLegal(p, pseudo)
}

// GenerateEvasions returns the legal moves available when the side to move
// is in check. It is equivalent to GenerateLegal on such a position; the
// distinct name documents the caller's intent at the search boundary (§4.7
// step 6) since the underlying filter already restricts to check-resolving
// moves whenever InCheck is true.
func GenerateEvasions(p *position.Position) []chess.Move {
	return GenerateLegal(p)
}

// pseudoLegalMoves enumerates moves obeying piece movement rules and basic
// castling preconditions, without checking whether the mover's own king
// ends up in check. capturesOnly restricts pawns to captures/promotions and
// other pieces to captures, matching quiescence's needs.
func pseudoLegalMoves(p *position.Position, capturesOnly bool) []chess.Move {
	us := p.SideToMove
	them := us.Other()
	own := p.ColorBB[us]
	enemy := p.ColorBB[them]
	occ := p.AllBB

	var moves []chess.Move
	moves = generatePawnMoves(p, us, them, enemy, occ, capturesOnly, moves)

	for _, kind := range []chess.PieceKind{chess.Knight, chess.Bishop, chess.Rook, chess.Queen} {
		pieces := p.Pieces[us][kind]
		for pieces != 0 {
			from := pieces.PopLSB()
			targets := bitboard.Attacks(kind, from, occ) &^ own
			if capturesOnly {
				targets &= enemy
			}
			moves = appendTargets(moves, p, from, kind, targets)
		}
	}

	kingSq := p.King(us)
	kingTargets := bitboard.KingMoves[kingSq] &^ own
	if capturesOnly {
		kingTargets &= enemy
	}
	moves = appendTargets(moves, p, kingSq, chess.King, kingTargets)

	if !capturesOnly {
		moves = generateCastling(p, us, them, kingSq, occ, moves)
	}
	return moves
}

func appendTargets(moves []chess.Move, p *position.Position, from chess.Square, kind chess.PieceKind, targets bitboard.Board) []chess.Move {
	for targets != 0 {
		to := targets.PopLSB()
		moves = append(moves, chess.Move{
			From:     from,
			To:       to,
			Piece:    kind,
			Captured: p.PieceAt(to).Kind(),
		})
	}
	return moves
}

var promotionKinds = [4]chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

func generatePawnMoves(p *position.Position, us, them chess.Color, enemy, occ bitboard.Board, capturesOnly bool, moves []chess.Move) []chess.Move {
	pawns := p.Pieces[us][chess.Pawn]
	empty := ^occ

	forward, startRank, promoRank := 1, 1, 7
	if us == chess.Black {
		forward, startRank, promoRank = -1, 6, 0
	}

	addPawnMove := func(from, to chess.Square, captured chess.PieceKind, flag chess.MoveFlag) []chess.Move {
		if to.Rank() == promoRank {
			for _, promo := range promotionKinds {
				moves = append(moves, chess.Move{From: from, To: to, Piece: chess.Pawn, Captured: captured, Promotion: promo, Flag: flag})
			}
			return moves
		}
		moves = append(moves, chess.Move{From: from, To: to, Piece: chess.Pawn, Captured: captured, Flag: flag})
		return moves
	}

	rest := pawns
	for rest != 0 {
		from := rest.PopLSB()
		file, rank := from.File(), from.Rank()

		oneRank := rank + forward
		if oneRank >= 0 && oneRank <= 7 {
			oneSq := chess.NewSquare(file, oneRank)
			if empty.Has(oneSq) {
				// A promoting push is a capturesOnly move (§4.4:
				// "captures and promotions only"); only the quiet
				// non-promoting push and the double push are gated.
				if oneRank == promoRank || !capturesOnly {
					moves = addPawnMove(from, oneSq, chess.NoKind, chess.Normal)
				}
				if !capturesOnly && rank == startRank {
					twoSq := chess.NewSquare(file, rank+2*forward)
					if empty.Has(twoSq) {
						moves = append(moves, chess.Move{From: from, To: twoSq, Piece: chess.Pawn, Flag: chess.DoublePush})
					}
				}
			}
		}

		for _, df := range [2]int{-1, 1} {
			nf := file + df
			nr := rank + forward
			if nf < 0 || nf > 7 || nr < 0 || nr > 7 {
				continue
			}
			to := chess.NewSquare(nf, nr)
			if enemy.Has(to) {
				moves = addPawnMove(from, to, p.PieceAt(to).Kind(), chess.Normal)
			} else if to == p.EnPassant {
				moves = append(moves, chess.Move{From: from, To: to, Piece: chess.Pawn, Captured: chess.Pawn, Flag: chess.EnPassant})
			}
		}
	}
	return moves
}

func generateCastling(p *position.Position, us, them chess.Color, kingSq chess.Square, occ bitboard.Board, moves []chess.Move) []chess.Move {
	if p.SquareAttacked(kingSq, them) {
		return moves
	}
	rank := 0
	if us == chess.Black {
		rank = 7
	}
	kingsideRight, queensideRight := position.WhiteKingside, position.WhiteQueenside
	if us == chess.Black {
		kingsideRight, queensideRight = position.BlackKingside, position.BlackQueenside
	}

	if p.CanCastle(kingsideRight) {
		f, g := chess.NewSquare(5, rank), chess.NewSquare(6, rank)
		if !occ.Has(f) && !occ.Has(g) && !p.SquareAttacked(f, them) && !p.SquareAttacked(g, them) {
			moves = append(moves, chess.Move{From: kingSq, To: g, Piece: chess.King, Flag: chess.CastleKingside})
		}
	}
	if p.CanCastle(queensideRight) {
		d, c, b := chess.NewSquare(3, rank), chess.NewSquare(2, rank), chess.NewSquare(1, rank)
		if !occ.Has(d) && !occ.Has(c) && !occ.Has(b) && !p.SquareAttacked(d, them) && !p.SquareAttacked(c, them) {
			moves = append(moves, chess.Move{From: kingSq, To: c, Piece: chess.King, Flag: chess.CastleQueenside})
		}
	}
	return moves
}
