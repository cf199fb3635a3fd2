package search

import (
	"time"

	"github.com/hollowrook/chesscore/internal/position"
	"github.com/hollowrook/chesscore/internal/tt"
)

// benchFENs is the fixed suite searched by Bench, standing in for the
// original engine's scripts/bench.py corpus (SUPPLEMENTED FEATURES): a
// mix of the opening position, a tactically dense middlegame (Kiwipete),
// and a simplified endgame, so a regression in ordering or pruning shows
// up across more than one kind of position.
var benchFENs = []string{
	position.StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
}

// BenchResult is one FEN's outcome in a Bench run.
type BenchResult struct {
	FEN      string
	Result   Result
	Elapsed  time.Duration
	NodesPS  float64
}

// Bench runs Search to a fixed depth over benchFENs and reports
// nodes-per-second, a timing oracle alongside perft's node-count oracle
// (SUPPLEMENTED FEATURES).
func Bench(depth int) []BenchResult {
	opts := DefaultOptions()
	results := make([]BenchResult, 0, len(benchFENs))
	for _, fen := range benchFENs {
		p, err := position.ParseFEN(fen)
		if err != nil {
			continue
		}
		table := tt.New(opts.TTCapacityEntries * 40)
		start := time.Now()
		res := Search(p, table, Limits{MaxDepth: depth}, opts, nil)
		elapsed := time.Since(start)

		nps := 0.0
		if elapsed > 0 {
			nps = float64(res.Stats.Nodes) / elapsed.Seconds()
		}
		results = append(results, BenchResult{FEN: fen, Result: res, Elapsed: elapsed, NodesPS: nps})
	}
	return results
}
