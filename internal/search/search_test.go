package search

import (
	"testing"

	"github.com/hollowrook/chesscore/internal/chess"
	"github.com/hollowrook/chesscore/internal/movegen"
	"github.com/hollowrook/chesscore/internal/position"
	"github.com/hollowrook/chesscore/internal/tt"
)

func legalMovesFor(p *position.Position) []chess.Move {
	return movegen.GenerateLegal(p)
}

func mustFENSearch(t *testing.T, fen string) *position.Position {
	t.Helper()
	p, err := position.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func TestSearchFindsBackRankMateInOne(t *testing.T) {
	p := mustFENSearch(t, "6k1/5ppp/8/8/8/8/8/4R2K w - - 0 1")
	table := tt.New(1 << 16)
	res := Search(p, table, Limits{MaxDepth: 1}, DefaultOptions(), nil)

	want := "e1e8"
	if res.BestMove.String() != want {
		t.Fatalf("expected the mating move %s, got %s (score %d)", want, res.BestMove, res.Score)
	}
	if res.Score < tt.MateBound {
		t.Fatalf("expected a mate score above the mate bound, got %d", res.Score)
	}
}

func TestSearchPositionUnchangedAfterSearch(t *testing.T) {
	p := mustFENSearch(t, position.StartFEN)
	before := p.FEN()
	table := tt.New(1 << 16)
	Search(p, table, Limits{MaxDepth: 3}, DefaultOptions(), nil)
	if after := p.FEN(); after != before {
		t.Fatalf("search mutated the position: before=%q after=%q", before, after)
	}
}

func TestSearchRespectsMaxNodes(t *testing.T) {
	p := mustFENSearch(t, position.StartFEN)
	table := tt.New(1 << 16)
	res := Search(p, table, Limits{MaxDepth: 32, MaxNodes: 500}, DefaultOptions(), nil)
	if res.Stats.Nodes == 0 {
		t.Fatalf("expected some nodes to have been searched")
	}
	if res.Stats.Nodes > 500+4096 {
		t.Fatalf("expected node search to stop close to the node budget, got %d nodes", res.Stats.Nodes)
	}
}

func TestSearchStopFunctionHaltsWithoutPanicking(t *testing.T) {
	p := mustFENSearch(t, position.StartFEN)
	table := tt.New(1 << 16)
	opts := DefaultOptions()
	opts.NodeCheckInterval = 1

	res := Search(p, table, Limits{MaxDepth: 32}, opts, func() bool { return true })
	if res.Stats.Nodes == 0 {
		t.Fatalf("expected at least the root node to be counted before stopping")
	}
}

func TestIsRepetitionDetectsReturnToSameHash(t *testing.T) {
	p := mustFENSearch(t, position.StartFEN)
	// Both sides move a knight out and back, returning to the start
	// position, whose hash ParseFEN recorded as the first repetition key.
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for _, alg := range moves {
		applyLongAlgebraic(t, p, alg)
	}
	if !isRepetition(p) {
		t.Fatalf("expected the knight shuffle to revisit a previously recorded position")
	}
}

func applyLongAlgebraic(t *testing.T, p *position.Position, alg string) {
	t.Helper()
	for _, m := range legalMovesFor(p) {
		if m.String() == alg {
			p.Apply(m)
			return
		}
	}
	t.Fatalf("move %s not found among legal moves", alg)
}
