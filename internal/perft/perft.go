// Package perft is the PerftDriver component (§4.8): a node-count
// correctness oracle over MoveGenerator and Position's make/unmake, used to
// validate the engine core against known perft results rather than to
// drive play.
package perft

import (
	"github.com/hollowrook/chesscore/internal/movegen"
	"github.com/hollowrook/chesscore/internal/position"
)

// Count returns the number of leaf positions reachable from p in exactly
// depth plies. depth 0 always returns 1 (the position itself).
func Count(p *position.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := movegen.GenerateLegal(p)
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		p.Apply(m)
		nodes += Count(p, depth-1)
		p.Undo()
	}
	return nodes
}

// Divide returns the perft count of the depth-1 subtree rooted at each
// legal move, keyed by long-algebraic move string. Used to isolate a
// move-generation bug against a reference engine's per-move breakdown.
func Divide(p *position.Position, depth int) map[string]uint64 {
	moves := movegen.GenerateLegal(p)
	result := make(map[string]uint64, len(moves))
	for _, m := range moves {
		p.Apply(m)
		result[m.String()] = Count(p, depth-1)
		p.Undo()
	}
	return result
}
