// Command perft is a thin CLI over internal/engine's perft entry point,
// standing in for the perft tool the overview names as an external
// consumer of the core. Flag layout follows the flag.String/flag.Int cmd
// tools of the sibling example freeeve-chessgraph/api/cmd.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/hollowrook/chesscore/internal/engine"
	"github.com/hollowrook/chesscore/internal/position"
	"github.com/hollowrook/chesscore/internal/search"
)

func main() {
	var (
		fen    = flag.String("fen", position.StartFEN, "FEN of the position to run from")
		depth  = flag.Int("depth", 5, "perft depth")
		divide = flag.Bool("divide", false, "print a per-move node-count breakdown instead of the total")
		bench  = flag.Bool("bench", false, "run the search bench suite instead of perft")
	)
	flag.Parse()

	if *bench {
		runBench(*depth)
		return
	}

	if *divide {
		runDivide(*fen, *depth)
		return
	}

	nodes, err := engine.PerftFromFEN(*fen, *depth)
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}
	fmt.Printf("perft(%d) = %d\n", *depth, nodes)
}

func runDivide(fen string, depth int) {
	g, err := engine.NewGameFromFEN(fen, engine.DefaultSearchOptions())
	if err != nil {
		fmt.Fprintln(os.Stderr, "perft:", err)
		os.Exit(1)
	}
	breakdown := g.PerftDivide(depth)

	moves := make([]string, 0, len(breakdown))
	for m := range breakdown {
		moves = append(moves, m)
	}
	sort.Strings(moves)

	var total uint64
	for _, m := range moves {
		fmt.Printf("%s: %d\n", m, breakdown[m])
		total += breakdown[m]
	}
	fmt.Printf("total: %d\n", total)
}

func runBench(depth int) {
	for _, r := range search.Bench(depth) {
		fmt.Printf("%-70s depth=%d nodes=%d qnodes=%d nps=%.0f elapsed=%s\n",
			r.FEN, r.Result.Depth, r.Result.Stats.Nodes, r.Result.Stats.QNodes, r.NodesPS, r.Elapsed)
	}
}
