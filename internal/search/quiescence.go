package search

import (
	"github.com/hollowrook/chesscore/internal/chess"
	"github.com/hollowrook/chesscore/internal/eval"
	"github.com/hollowrook/chesscore/internal/movegen"
	"github.com/hollowrook/chesscore/internal/position"
	"github.com/hollowrook/chesscore/internal/tt"
)

// maxQuiescencePly bounds the selective-depth extension quiescence can
// reach when repeatedly evading check, matching §4.7's "bounded by a
// seldepth cap".
const maxQuiescencePly = maxPly - 1

const deltaPruningMargin = 200

// quiescence implements §4.7's qsearch: stand-pat cutoff, then the
// captures-and-promotions set movegen.GenerateCaptures defines
// (SUPPLEMENTED FEATURES: no quiet checks, matching the original engine's
// quiescence), with SEE and delta pruning on candidate captures; check
// evasions bypass stand-pat entirely.
func (s *searcher) quiescence(p *position.Position, alpha, beta, ply int) int {
	s.stats.Nodes++
	s.stats.QNodes++
	if s.checkStop() {
		return eval.Evaluate(p)
	}
	if ply > s.stats.SelDepth {
		s.stats.SelDepth = ply
	}

	if p.HalfmoveClock >= 100 || (ply > 0 && isRepetition(p)) {
		return 0
	}

	inCheck := p.InCheck()
	if inCheck {
		if ply >= maxQuiescencePly {
			return eval.Evaluate(p)
		}
		moves := movegen.GenerateEvasions(p)
		if len(moves) == 0 {
			return -(tt.Mate - ply)
		}
		moves = orderMoves(p, moves, chess.Move{}, false, &s.killers, &s.history, minInt(ply, maxKillerPly-1))
		best := -tt.Mate - 1
		for _, m := range moves {
			p.Apply(m)
			score := -s.quiescence(p, -beta, -alpha, ply+1)
			p.Undo()
			if s.stopped {
				return best
			}
			if score > best {
				best = score
			}
			if score > alpha {
				alpha = score
			}
			if alpha >= beta {
				return beta
			}
		}
		return best
	}

	standPat := eval.Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := movegen.GenerateCaptures(p)
	moves = orderMoves(p, moves, chess.Move{}, false, &s.killers, &s.history, minInt(ply, maxKillerPly-1))

	for _, m := range moves {
		capturedValue := seeValue[capturedKind(p, m)]
		if standPat+capturedValue+deltaPruningMargin < alpha {
			continue
		}
		if m.IsCapture() && staticExchangeEval(p, m) < 0 {
			continue
		}

		p.Apply(m)
		score := -s.quiescence(p, -beta, -alpha, ply+1)
		p.Undo()

		if s.stopped {
			return alpha
		}
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			return beta
		}
	}
	return alpha
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
