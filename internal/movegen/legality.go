package movegen

import (
	"github.com/hollowrook/chesscore/internal/bitboard"
	"github.com/hollowrook/chesscore/internal/chess"
	"github.com/hollowrook/chesscore/internal/position"
)

// filterLegal drops pseudo-legal moves that leave the mover's own king in
// check (§4.4 steps 2, 5, 6). Castling has already been fully validated
// during generation (rights, empty squares, no attacked square along the
// king's path), so it passes through untouched here.
func filterLegal(p *position.Position, pseudo []chess.Move) []chess.Move {
	us := p.SideToMove
	them := us.Other()
	kingSq := p.King(us)
	pinned := pinnedPieces(p, us, them, kingSq)

	checkers := p.AttackersTo(kingSq, them, p.AllBB)
	inCheck := checkers != 0
	var checkerSq chess.Square
	var blockSquares bitboard.Board
	doubleCheck := false
	if inCheck {
		if checkers.Count() > 1 {
			doubleCheck = true
		} else {
			checkerSq = checkers.LSB()
			blockSquares = bitboard.Between(checkerSq, kingSq)
		}
	}

	legal := make([]chess.Move, 0, len(pseudo))
	for _, m := range pseudo {
		if m.Piece == chess.King {
			if m.Flag == chess.CastleKingside || m.Flag == chess.CastleQueenside {
				legal = append(legal, m)
				continue
			}
			occWithoutKing := p.AllBB &^ bitboard.FromSquare(kingSq)
			if p.AttackersTo(m.To, them, occWithoutKing) == 0 {
				legal = append(legal, m)
			}
			continue
		}

		if doubleCheck {
			continue
		}

		if inCheck {
			if m.Flag == chess.EnPassant {
				if isLegalEnPassant(p, m) {
					legal = append(legal, m)
				}
				continue
			}
			target := m.To
			resolvesCheck := target == checkerSq || blockSquares.Has(target)
			if !resolvesCheck {
				continue
			}
			if pinned.Has(m.From) && !aligned(kingSq, m.From, m.To) {
				continue
			}
			legal = append(legal, m)
			continue
		}

		if m.Flag == chess.EnPassant {
			if isLegalEnPassant(p, m) {
				legal = append(legal, m)
			}
			continue
		}
		if pinned.Has(m.From) && !aligned(kingSq, m.From, m.To) {
			continue
		}
		legal = append(legal, m)
	}
	return legal
}

// pinnedPieces returns the bitboard of squares holding a friendly piece
// pinned to its king by an enemy slider (§4.4 step 2): exactly one friendly
// piece lying on the ray between king and slider.
func pinnedPieces(p *position.Position, us, them chess.Color, kingSq chess.Square) bitboard.Board {
	var pinned bitboard.Board
	kf, kr := kingSq.File(), kingSq.Rank()

	diagPinners := p.Pieces[them][chess.Bishop] | p.Pieces[them][chess.Queen]
	orthoPinners := p.Pieces[them][chess.Rook] | p.Pieces[them][chess.Queen]

	scan := func(sliders bitboard.Board, diagonal bool) {
		for sliders != 0 {
			s := sliders.PopLSB()
			sf, sr := s.File(), s.Rank()
			df, dr := sf-kf, sr-kr
			if diagonal {
				if df == 0 || dr == 0 || abs(df) != abs(dr) {
					continue
				}
			} else {
				if df != 0 && dr != 0 {
					continue
				}
			}
			between := bitboard.Between(kingSq, s)
			blockers := between & p.AllBB
			if blockers.Count() == 1 && blockers&p.ColorBB[us] != 0 {
				pinned |= blockers
			}
		}
	}
	scan(diagPinners, true)
	scan(orthoPinners, false)
	return pinned
}

// aligned reports whether from, and thus its move to `to`, still lies on
// the king-through-pinner ray — i.e. whether the pinned piece staying
// aligned is legal.
func aligned(kingSq, from, to chess.Square) bool {
	line := bitboard.Line(kingSq, from)
	return line != 0 && line.Has(to)
}

// isLegalEnPassant validates the rare horizontal-pin case (§4.4 step 4, §8
// scenario 6) by playing the capture on a cloned position and running a
// single attack test, exactly as the spec's design permits in place of a
// bespoke discovered-check scan.
func isLegalEnPassant(p *position.Position, m chess.Move) bool {
	clone := p.Clone()
	us := clone.SideToMove
	them := us.Other()
	clone.Apply(m)
	return !clone.SquareAttacked(clone.King(us), them)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
