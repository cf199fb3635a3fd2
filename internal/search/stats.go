package search

import "time"

// Stats collects the per-depth telemetry spec §4.7 requires ("time, nodes,
// quiescence nodes, selective depth reached, score, PV, TT counters").
// Grounded on the teacher's SearchStats (ai_player.go / ai_scoring.go),
// trimmed of gomoku-specific fields (board-cache counters, translated-TT
// counters) that have no chess analogue.
type Stats struct {
	Start        time.Time
	Nodes        uint64
	QNodes       uint64
	TTProbes      uint64
	TTHits        uint64
	TTExactHits   uint64
	TTLowerHits   uint64
	TTUpperHits   uint64
	TTCutoffs     uint64
	TTStores      uint64
	TTReplacements uint64
	NullMoveCuts  uint64
	Cutoffs       uint64

	CompletedDepths int
	SelDepth        int
	DepthDurations  []time.Duration
}

// Elapsed returns the wall time since the stats were started.
func (s *Stats) Elapsed() time.Duration {
	if s.Start.IsZero() {
		return 0
	}
	return time.Since(s.Start)
}
