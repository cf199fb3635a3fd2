// Package search is the Searcher component (§4.7): iterative-deepening
// negamax with aspiration windows, transposition-table probing/storing,
// null-move pruning, late-move reductions, futility pruning,
// principal-variation search, and quiescence. Grounded on the teacher's
// minimax/orderCandidateMoves/killers/history machinery in
// ai_scoring.go and ai_player.go, replacing gomoku's board-region
// candidate generation with chess's movegen package and gomoku's float64
// heuristic scores with eval's integer centipawn scale.
package search

import (
	"time"

	"github.com/hollowrook/chesscore/internal/chess"
	"github.com/hollowrook/chesscore/internal/eval"
	"github.com/hollowrook/chesscore/internal/movegen"
	"github.com/hollowrook/chesscore/internal/position"
	"github.com/hollowrook/chesscore/internal/tt"
)

const maxPly = 128

// Result is what search(position, limits, options) returns (§4.7).
type Result struct {
	BestMove chess.Move
	Score    int
	PV       []chess.Move
	Depth    int
	Stats    Stats
}

// searcher holds the mutable state of one search(...) call: the shared TT
// (owned by the caller, spans multiple searches per §4.6), per-call killer
// and history tables, and the cooperative stop machinery of §4.7's "Time
// and cancellation".
type searcher struct {
	tt      *tt.Table
	opts    Options
	stats   Stats
	killers killerTable
	history historyTable

	stopFn      func() bool
	hasDeadline bool
	deadline    time.Time
	nodeCheck   uint64
	maxNodes    uint64
	stopped     bool

	pvTable  [maxPly][maxPly]chess.Move
	pvLength [maxPly]int
}

// Search runs iterative deepening from depth 1 to limits.MaxDepth (or until
// stopped), against a caller-owned transposition table. stop is polled
// cooperatively; it may be nil.
func Search(p *position.Position, table *tt.Table, limits Limits, opts Options, stop func() bool) Result {
	s := &searcher{tt: table, opts: opts, stopFn: stop, maxNodes: limits.MaxNodes}
	s.stats.Start = time.Now()
	if limits.MoveTime > 0 {
		s.hasDeadline = true
		s.deadline = s.stats.Start.Add(time.Duration(limits.MoveTime) * time.Millisecond)
	}
	table.NewGeneration()

	maxDepth := limits.MaxDepth
	if maxDepth <= 0 {
		maxDepth = maxPly - 1
	}
	if maxDepth > maxPly-1 {
		maxDepth = maxPly - 1
	}

	var best Result
	score := 0
	for depth := 1; depth <= maxDepth; depth++ {
		depthStart := time.Now()
		var depthScore int
		if depth >= 5 {
			depthScore = s.aspirationSearch(p, depth, score)
		} else {
			depthScore = s.negamax(p, -tt.Mate-1, tt.Mate+1, depth, 0)
		}
		s.stats.DepthDurations = append(s.stats.DepthDurations, time.Since(depthStart))

		if s.stopped && (depth > 1 || s.pvLength[0] == 0) {
			// Mid-iteration cancellation: keep the previous depth's result.
			// Depth 1 has none, so its partial result is kept only when at
			// least one root move finished.
			break
		}
		score = depthScore
		s.stats.CompletedDepths = depth
		best = Result{
			BestMove: s.pvTable[0][0],
			Score:    score,
			PV:       append([]chess.Move(nil), s.pvTable[0][:s.pvLength[0]]...),
			Depth:    depth,
			Stats:    s.stats,
		}
		if s.stopped {
			break
		}
	}
	best.Stats = s.stats
	return best
}

// aspirationSearch implements §4.7's aspiration window: center on the
// previous score with a small half-width, widen on fail-high/fail-low, and
// fall back to a full window after two widening failures.
func (s *searcher) aspirationSearch(p *position.Position, depth, prevScore int) int {
	half := s.opts.AspirationHalfWidthCP
	if half <= 0 {
		half = 25
	}
	alpha, beta := prevScore-half, prevScore+half
	for fails := 0; ; fails++ {
		if fails >= 2 {
			alpha, beta = -tt.Mate-1, tt.Mate+1
		}
		score := s.negamax(p, alpha, beta, depth, 0)
		if s.stopped {
			return score
		}
		if score <= alpha {
			alpha -= half << uint(fails+1)
			if alpha < -tt.Mate-1 {
				alpha = -tt.Mate - 1
			}
			continue
		}
		if score >= beta {
			beta += half << uint(fails+1)
			if beta > tt.Mate+1 {
				beta = tt.Mate + 1
			}
			continue
		}
		return score
	}
}

// checkStop polls the cooperative stop signal every NodeCheckInterval
// nodes and at the deadline, per §4.7 "Time and cancellation".
func (s *searcher) checkStop() bool {
	if s.stopped {
		return true
	}
	s.nodeCheck++
	interval := s.opts.NodeCheckInterval
	if interval == 0 {
		interval = 4096
	}
	if s.maxNodes != 0 && s.stats.Nodes >= s.maxNodes {
		s.stopped = true
		return true
	}
	if s.nodeCheck%interval != 0 {
		return false
	}
	if s.hasDeadline && !time.Now().Before(s.deadline) {
		s.stopped = true
		return true
	}
	if s.stopFn != nil && s.stopFn() {
		s.stopped = true
		return true
	}
	return false
}

// isRepetition reports whether the current hash already occurred earlier
// within the reversible-move window (§4.7 step 1): RepetitionKeys is
// appended to on every Apply, so a match within the last HalfmoveClock
// entries is a repetition since the last irreversible move.
func isRepetition(p *position.Position) bool {
	n := len(p.RepetitionKeys)
	if n == 0 {
		return false
	}
	limit := p.HalfmoveClock
	if limit > n-1 {
		limit = n - 1
	}
	for i := 1; i <= limit; i++ {
		if p.RepetitionKeys[n-1-i] == p.Hash {
			return true
		}
	}
	return false
}

func hasNonPawnMaterial(p *position.Position, c chess.Color) bool {
	return p.Pieces[c][chess.Knight] != 0 || p.Pieces[c][chess.Bishop] != 0 ||
		p.Pieces[c][chess.Rook] != 0 || p.Pieces[c][chess.Queen] != 0
}

// negamax implements §4.7's numbered recursion.
func (s *searcher) negamax(p *position.Position, alpha, beta, depth, ply int) int {
	s.pvLength[ply] = ply

	// 1. repetition / 50-move rule.
	if ply > 0 && (isRepetition(p) || p.HalfmoveClock >= 100) {
		return 0
	}

	origAlpha := alpha

	// 2. TT probe.
	var ttMove chess.Move
	hasTTMove := false
	if s.tt != nil {
		s.stats.TTProbes++
		res := s.tt.Probe(p.Hash, depth, alpha, beta, ply)
		if res.HasMove {
			ttMove, hasTTMove = res.StoredMove, true
		}
		if res.Hit {
			s.stats.TTHits++
			switch res.Bound {
			case tt.Exact:
				s.stats.TTExactHits++
			case tt.Lower:
				s.stats.TTLowerHits++
			case tt.Upper:
				s.stats.TTUpperHits++
			}
			if res.UsableCut && ply > 0 {
				s.stats.TTCutoffs++
				return res.Score
			}
		}
	}

	// 3. quiescence at the frontier.
	if depth <= 0 {
		return s.quiescence(p, alpha, beta, ply)
	}

	s.stats.Nodes++
	if s.checkStop() {
		return eval.Evaluate(p)
	}
	if ply > s.stats.SelDepth {
		s.stats.SelDepth = ply
	}

	// 4. in-check status.
	inCheck := p.InCheck()

	// 5. null-move pruning. Skipped when beta is already inside the mate
	// window: a null move must never be trusted to refute a threatened
	// mate (SUPPLEMENTED FEATURES, original_source/src/search/service.py).
	if s.opts.EnableNullMove && !inCheck && depth >= 3 && ply > 0 &&
		beta < tt.MateBound && hasNonPawnMaterial(p, p.SideToMove) {
		r := s.opts.NullMoveReduction
		if r <= 0 {
			r = nullMoveReduction
		}
		prevEP, prevHash := p.MakeNullMove()
		score := -s.negamax(p, -beta, -beta+1, depth-1-r, ply+1)
		p.UnmakeNullMove(prevEP, prevHash)
		if !s.stopped && score >= beta {
			s.stats.NullMoveCuts++
			return beta
		}
	}

	// 6. generate and order moves.
	var moves []chess.Move
	if inCheck {
		moves = movegen.GenerateEvasions(p)
	} else {
		moves = movegen.GenerateLegal(p)
	}

	// 7. terminal node.
	if len(moves) == 0 {
		if inCheck {
			return -(tt.Mate - ply)
		}
		return 0
	}

	moves = orderMoves(p, moves, ttMove, hasTTMove, &s.killers, &s.history, ply)

	staticEval := eval.Evaluate(p)

	bestScore := -tt.Mate - 1
	var bestMove chess.Move
	quietIndex := 0
	searched := 0

	for i, m := range moves {
		isQuiet := !m.IsCapture() && !m.IsPromotion()
		givesCheck := moveGivesCheck(p, m)

		// 8a. futility pruning at the frontier. Never prune every move: a
		// node must always search at least one to have a defined score.
		if s.opts.EnableFutility && searched > 0 && depth == 1 && !inCheck && isQuiet && !givesCheck {
			if staticEval+futilityMargin <= alpha {
				quietIndex++
				continue
			}
		}
		searched++

		p.Apply(m)

		reduction := 0
		if s.opts.EnableLMR && isQuiet && !givesCheck && !inCheck {
			reduction = lmrReduction(quietIndex, depth)
			quietIndex++
		} else if isQuiet {
			quietIndex++
		}

		var score int
		if i == 0 || !s.opts.EnablePVS {
			score = -s.negamax(p, -beta, -alpha, depth-1-reduction, ply+1)
			if reduction > 0 && score > alpha {
				score = -s.negamax(p, -beta, -alpha, depth-1, ply+1)
			}
		} else {
			score = -s.negamax(p, -alpha-1, -alpha, depth-1-reduction, ply+1)
			if score > alpha && (score < beta || reduction > 0) {
				score = -s.negamax(p, -beta, -alpha, depth-1, ply+1)
			}
		}

		p.Undo()

		if s.stopped {
			return bestScore
		}

		if score > bestScore {
			bestScore = score
			bestMove = m
			if score > alpha {
				alpha = score
				s.pvTable[ply][ply] = m
				copy(s.pvTable[ply][ply+1:], s.pvTable[ply+1][ply+1:s.pvLength[ply+1]])
				s.pvLength[ply] = s.pvLength[ply+1]
				if s.pvLength[ply] <= ply {
					s.pvLength[ply] = ply + 1
				}
			}
		}

		if alpha >= beta {
			s.stats.Cutoffs++
			if isQuiet {
				s.killers.record(ply, m)
				s.history.bump(p.SideToMove, m, depth)
			}
			if s.tt != nil {
				s.stats.TTStores++
				if s.tt.Store(p.Hash, depth, beta, tt.Lower, m, ply) {
					s.stats.TTReplacements++
				}
			}
			return beta
		}
	}

	if s.tt != nil {
		bound := tt.Upper
		if alpha > origAlpha {
			bound = tt.Exact
		}
		s.stats.TTStores++
		if s.tt.Store(p.Hash, depth, bestScore, bound, bestMove, ply) {
			s.stats.TTReplacements++
		}
	}
	return bestScore
}

// moveGivesCheck reports whether applying m would put the opponent in
// check, used to decide whether a move is exempt from futility/LMR as a
// forcing move even though it is not itself a capture or promotion.
func moveGivesCheck(p *position.Position, m chess.Move) bool {
	p.Apply(m)
	check := p.InCheck()
	p.Undo()
	return check
}
