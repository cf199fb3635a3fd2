package search

import (
	"sort"

	"github.com/hollowrook/chesscore/internal/chess"
	"github.com/hollowrook/chesscore/internal/position"
)

const maxKillerPly = 128

// killerTable holds up to two quiet killer moves per ply, grounded on the
// teacher's ctx.killers ([][]Move) in ai_scoring.go, sized statically here
// since chess search depth is bounded by maxKillerPly rather than a
// gomoku board's dynamic move count.
type killerTable [maxKillerPly][2]chess.Move

func (k *killerTable) is(ply int, m chess.Move) bool {
	if ply < 0 || ply >= maxKillerPly {
		return false
	}
	return k[ply][0] == m || k[ply][1] == m
}

// record inserts m as the newest killer at ply, pushing the previous
// primary killer to the secondary slot (teacher's recordKiller).
func (k *killerTable) record(ply int, m chess.Move) {
	if ply < 0 || ply >= maxKillerPly {
		return
	}
	if k[ply][0] == m {
		return
	}
	k[ply][1] = k[ply][0]
	k[ply][0] = m
}

// historyTable scores quiet moves by [color][from][to], bumped by depth^2
// on a fail-high the way the teacher's recordHistory scales by
// depthLeft*depthLeft.
type historyTable [2][64][64]int

func (h *historyTable) bump(c chess.Color, m chess.Move, depth int) {
	h[c][m.From][m.To] += depth * depth
}

func (h *historyTable) score(c chess.Color, m chess.Move) int {
	return h[c][m.From][m.To]
}

const (
	scoreTTMove       = 1_000_000
	scoreGoodCapture  = 800_000
	scoreKillerFirst  = 700_001
	scoreKillerSecond = 700_000
	scoreBadCapture   = -900_000
)

// orderMoves scores and stably sorts moves per §4.7 step 6: TT move first,
// then winning captures by SEE (losing captures sink below quiet moves),
// then killers for this ply, then history rank, then the remainder in
// generation order.
func orderMoves(p *position.Position, moves []chess.Move, ttMove chess.Move, hasTTMove bool, killers *killerTable, history *historyTable, ply int) []chess.Move {
	type scored struct {
		m     chess.Move
		score int
	}
	list := make([]scored, len(moves))
	us := p.SideToMove
	for i, m := range moves {
		s := 0
		switch {
		case hasTTMove && m == ttMove:
			s = scoreTTMove
		case m.IsCapture():
			see := staticExchangeEval(p, m)
			if see >= 0 {
				s = scoreGoodCapture + see
			} else {
				s = scoreBadCapture + see
			}
		case killers.is(ply, m):
			if killers[ply][0] == m {
				s = scoreKillerFirst
			} else {
				s = scoreKillerSecond
			}
		default:
			s = history.score(us, m)
		}
		list[i] = scored{m: m, score: s}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].score > list[j].score
	})
	out := make([]chess.Move, len(list))
	for i, s := range list {
		out[i] = s.m
	}
	return out
}
