package tt

import (
	"testing"

	"github.com/hollowrook/chesscore/internal/chess"
)

func TestStoreThenProbeExactHit(t *testing.T) {
	table := New(1 << 16)
	move := chess.Move{From: chess.NewSquare(4, 1), To: chess.NewSquare(4, 3)}
	table.Store(12345, 6, 42, Exact, move, 0)

	res := table.Probe(12345, 6, -1000, 1000, 0)
	if !res.Hit || !res.UsableCut {
		t.Fatalf("expected a usable exact hit, got %+v", res)
	}
	if res.Score != 42 {
		t.Fatalf("expected score 42, got %d", res.Score)
	}
	if res.StoredMove != move {
		t.Fatalf("expected stored move %s, got %s", move, res.StoredMove)
	}
}

func TestProbeMissOnDifferentKey(t *testing.T) {
	table := New(1 << 16)
	table.Store(1, 4, 10, Exact, chess.Move{}, 0)
	res := table.Probe(2, 4, -1000, 1000, 0)
	if res.Hit {
		t.Fatalf("expected a miss for a different key")
	}
}

func TestLowerBoundCutoffOnlyAboveBeta(t *testing.T) {
	table := New(1 << 16)
	table.Store(7, 5, 100, Lower, chess.Move{}, 0)

	if res := table.Probe(7, 5, -1000, 150, 0); res.UsableCut {
		t.Fatalf("a lower bound below beta should not cut off, got %+v", res)
	}
	if res := table.Probe(7, 5, -1000, 100, 0); !res.UsableCut {
		t.Fatalf("a lower bound >= beta should cut off, got %+v", res)
	}
}

func TestShallowerStoredEntryDoesNotUsableCutForDeeperSearch(t *testing.T) {
	table := New(1 << 16)
	table.Store(9, 2, 10, Exact, chess.Move{}, 0)
	res := table.Probe(9, 8, -1000, 1000, 0)
	if res.UsableCut {
		t.Fatalf("a shallower stored entry should not produce a cutoff for a deeper request")
	}
	if !res.Hit {
		t.Fatalf("expected the shallow entry to still surface as a move-ordering hint")
	}
}

func TestSameGenerationPrefersDeeperEntry(t *testing.T) {
	table := New(64) // force a single slot to collide on.
	table.Store(1, 10, 1, Exact, chess.Move{}, 0)
	table.Store(1|2, 3, 2, Exact, chess.Move{}, 0) // shallower, different key, same slot after masking.

	res := table.Probe(1, 10, -1000, 1000, 0)
	if !res.Hit {
		t.Fatalf("expected the deeper same-generation entry to survive a shallower collision")
	}
}

func TestNewGenerationAllowsEvictingOlderEntries(t *testing.T) {
	table := New(64)
	table.Store(1, 10, 1, Exact, chess.Move{}, 0)
	table.NewGeneration()
	table.Store(1|2, 1, 2, Exact, chess.Move{}, 0) // shallower but newer generation.

	res := table.Probe(1, 10, -1000, 1000, 0)
	if res.Hit {
		t.Fatalf("expected the older-generation entry to be evicted despite being deeper")
	}
}

func TestStoreReportsReplacementOfADifferentKey(t *testing.T) {
	table := New(64) // force a single slot to collide on.
	if replaced := table.Store(1, 5, 1, Exact, chess.Move{}, 0); replaced {
		t.Fatalf("expected no replacement when the slot starts empty")
	}
	if replaced := table.Store(1, 5, 2, Exact, chess.Move{}, 0); replaced {
		t.Fatalf("expected no replacement when re-storing the same key")
	}
	if replaced := table.Store(1|2, 6, 3, Exact, chess.Move{}, 0); !replaced {
		t.Fatalf("expected a replacement when a different, deeper entry evicts the slot")
	}
}

func TestHashfullReflectsOccupancyOfCurrentGeneration(t *testing.T) {
	table := New(1 << 16)
	if got := table.Hashfull(); got != 0 {
		t.Fatalf("expected an empty table to report 0 hashfull, got %d", got)
	}
	table.Store(1, 4, 10, Exact, chess.Move{}, 0)
	if got := table.Hashfull(); got == 0 {
		t.Fatalf("expected hashfull to be nonzero after a store")
	}
	table.NewGeneration()
	if got := table.Hashfull(); got != 0 {
		t.Fatalf("expected hashfull to reset to 0 after a new generation, got %d", got)
	}
}

func TestMateDistanceNormalization(t *testing.T) {
	table := New(1 << 16)
	// A mate found 3 plies deep, stored while searching from ply 5.
	mateScore := Mate - 3
	table.Store(55, 4, mateScore, Exact, chess.Move{}, 5)

	// Probed later from a different ply (2): score must adjust so the
	// mate distance is still correct relative to the new root.
	res := table.Probe(55, 4, -Mate-1, Mate+1, 2)
	if res.Score != mateScore-3 {
		t.Fatalf("expected mate score renormalized to %d, got %d", mateScore-3, res.Score)
	}
}
