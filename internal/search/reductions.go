package search

// lmrReduction returns the ply reduction applied to the Nth (0-indexed)
// quiet, non-check, non-promotion move at the given depth, per
// SPEC_FULL.md's resolution of spec §4.7's open LMR schedule: reduce by one
// ply starting at the 5th such move (index >= 4), only at depth >= 3.
// Grounded on the original engine's fixed reduction (src/search/service.py),
// not a logarithmic formula, since the retrieval pack gives no basis for one.
func lmrReduction(moveIndex, depth int) int {
	if depth < 3 || moveIndex < 4 {
		return 0
	}
	return 1
}

// nullMoveReduction is the fixed R used by null-move pruning (§4.7 step 5),
// resolved to R=2 by the same source.
const nullMoveReduction = 2

// futilityMargin is the frontier futility margin (§4.7 step 8), a single
// pawn's worth of slack beyond material.
const futilityMargin = 100
