// Package tt is the TranspositionTable component (§4.6): a fixed-capacity,
// open-addressed table keyed by Zobrist hash, striped for concurrent
// probe/store the way the teacher's own transposition table is (though the
// searcher above it currently drives it single-threaded per §5).
package tt

import (
	"sync"
	"sync/atomic"

	"github.com/hollowrook/chesscore/internal/chess"
)

// Bound classifies how a stored score relates to the search window that
// produced it.
type Bound uint8

const (
	Exact Bound = iota
	Lower
	Upper
)

// Mate scores are stored ply-relative and shifted to/from root-relative
// form on store/probe (§4.6 "Mate-distance normalization").
const (
	Mate      = 30000
	MateBound = Mate - 1000
)

// Entry is one transposition table slot.
type Entry struct {
	Key       uint64
	Depth     int
	Score     int32
	Bound     Bound
	BestMove  chess.Move
	Age       uint32
	Valid     bool
}

// ProbeResult reports what a probe found, matching §4.6's probe contract.
type ProbeResult struct {
	Hit        bool
	Score      int
	Bound      Bound
	StoredMove chess.Move
	HasMove    bool
	UsableCut  bool
}

// Table is a fixed-capacity, power-of-two-sized, stripe-locked
// transposition table. Grounded on the teacher's TranspositionTable
// (stripeLocks []sync.RWMutex, atomic generation counter), simplified to a
// single entry per bucket since chess positions carry no incremental
// "region" state analogous to gomoku's grow/frame fields — a mismatched
// key is simply an overwrite candidate, not a partial hit.
type Table struct {
	mask        uint64
	entries     []Entry
	stripeLocks []sync.RWMutex
	stripeMask  uint64
	gen         atomic.Uint32
}

// New builds a table sized to at most sizeBytes, rounded down to the
// nearest power-of-two entry count (at least one entry).
func New(sizeBytes int) *Table {
	const entrySize = 40 // approximate Entry size; sizing need not be exact.
	count := uint64(sizeBytes / entrySize)
	if count < 1 {
		count = 1
	}
	count = prevPowerOfTwo(count)

	maxStripes := 64
	if int(count) < maxStripes {
		maxStripes = int(count)
	}
	stripes := 1
	for stripes*2 <= maxStripes {
		stripes *= 2
	}

	t := &Table{
		mask:        count - 1,
		entries:     make([]Entry, count),
		stripeLocks: make([]sync.RWMutex, stripes),
		stripeMask:  uint64(stripes - 1),
	}
	t.gen.Store(1)
	return t
}

// NewGeneration bumps the search-generation counter, called once per new
// search (§4.6's "age" replacement signal).
func (t *Table) NewGeneration() {
	if t.gen.Add(1) == 0 {
		t.gen.CompareAndSwap(0, 1)
	}
}

// Clear resets every entry.
func (t *Table) Clear() {
	t.lockAll()
	defer t.unlockAll()
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.gen.Store(1)
}

func (t *Table) index(key uint64) uint64 { return key & t.mask }
func (t *Table) stripe(key uint64) uint64 { return t.index(key) & t.stripeMask }

// Probe looks up key and reports whether it produces a usable alpha-beta
// cutoff at the given depth/alpha/beta/ply (§4.6). Regardless of depth, any
// stored move is still returned as a move-ordering hint.
func (t *Table) Probe(key uint64, depth, alpha, beta, ply int) ProbeResult {
	stripe := t.stripe(key)
	t.stripeLocks[stripe].RLock()
	defer t.stripeLocks[stripe].RUnlock()

	e := t.entries[t.index(key)]
	if !e.Valid || e.Key != key {
		return ProbeResult{}
	}
	result := ProbeResult{Hit: true, StoredMove: e.BestMove, HasMove: e.BestMove != chess.Move{}}
	score := fromTTScore(int(e.Score), ply)
	result.Score = score
	result.Bound = e.Bound

	if e.Depth < depth {
		return result
	}
	switch e.Bound {
	case Exact:
		result.UsableCut = true
	case Lower:
		result.UsableCut = score >= beta
	case Upper:
		result.UsableCut = score <= alpha
	}
	return result
}

// Store records a search result. Replacement prefers, in order: the slot
// already holding this key; an empty slot; an older-generation entry; the
// shallower entry (§4.6). It reports whether a different, already-occupied
// key was evicted, for the engine boundary's replacement counter.
func (t *Table) Store(key uint64, depth, score int, bound Bound, move chess.Move, ply int) (replaced bool) {
	stripe := t.stripe(key)
	t.stripeLocks[stripe].Lock()
	defer t.stripeLocks[stripe].Unlock()

	idx := t.index(key)
	existing := t.entries[idx]
	gen := t.gen.Load()

	if existing.Valid && existing.Key != key {
		if existing.Age == gen && existing.Depth > depth {
			return false
		}
		replaced = true
	}

	t.entries[idx] = Entry{
		Key:      key,
		Depth:    depth,
		Score:    int32(toTTScore(score, ply)),
		Bound:    bound,
		BestMove: move,
		Age:      gen,
		Valid:    true,
	}
	return replaced
}

// Capacity returns the number of entry slots.
func (t *Table) Capacity() int { return len(t.entries) }

// Hashfull reports per-mille occupancy of entries from the current
// generation, sampling up to the first 1000 slots the way engines
// conventionally report "hashfull" without scanning the whole table.
func (t *Table) Hashfull() int {
	gen := t.gen.Load()
	sample := len(t.entries)
	if sample > 1000 {
		sample = 1000
	}
	if sample == 0 {
		return 0
	}
	occupied := 0
	for i := 0; i < sample; i++ {
		e := t.entries[i]
		if e.Valid && e.Age == gen {
			occupied++
		}
	}
	return occupied * 1000 / sample
}

func (t *Table) lockAll() {
	for i := range t.stripeLocks {
		t.stripeLocks[i].Lock()
	}
}

func (t *Table) unlockAll() {
	for i := len(t.stripeLocks) - 1; i >= 0; i-- {
		t.stripeLocks[i].Unlock()
	}
}

// toTTScore converts a ply-from-root mate score into one relative to the
// storing position, so it remains meaningful when probed from a different
// ply (§4.6).
func toTTScore(score, ply int) int {
	if score >= MateBound {
		return score - ply
	}
	if score <= -MateBound {
		return score + ply
	}
	return score
}

// fromTTScore reverses toTTScore on probe.
func fromTTScore(score, ply int) int {
	if score >= MateBound {
		return score + ply
	}
	if score <= -MateBound {
		return score - ply
	}
	return score
}

func prevPowerOfTwo(v uint64) uint64 {
	if v == 0 {
		return 1
	}
	v |= v >> 1
	v |= v >> 2
	v |= v >> 4
	v |= v >> 8
	v |= v >> 16
	v |= v >> 32
	return v - (v >> 1)
}
