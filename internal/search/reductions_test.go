package search

import (
	"testing"

	"github.com/hollowrook/chesscore/internal/tt"
)

func TestLMRReductionSchedule(t *testing.T) {
	cases := []struct {
		moveIndex, depth, want int
	}{
		{0, 3, 0},
		{3, 3, 0},
		{4, 3, 1},
		{10, 3, 1},
		{4, 2, 0}, // below the depth >= 3 floor
	}
	for _, c := range cases {
		if got := lmrReduction(c.moveIndex, c.depth); got != c.want {
			t.Errorf("lmrReduction(%d, %d) = %d, want %d", c.moveIndex, c.depth, got, c.want)
		}
	}
}

func TestSearchAtAspirationDepthDoesNotPanic(t *testing.T) {
	p := mustFENSearch(t, "4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	table := tt.New(1 << 16)
	res := Search(p, table, Limits{MaxDepth: 5}, DefaultOptions(), nil)
	if res.BestMove.String() == "0000" {
		t.Fatalf("expected a best move at depth 5 in a simple rook endgame")
	}
}
