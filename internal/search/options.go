package search

// Options is the closed, enumerated configuration struct named in spec
// §9's "duck-typed configuration" note: every tunable the searcher reads is
// a field here, never a string-keyed lookup. Grounded on the teacher's flat
// Config struct (config.go), which the same way collects a set of
// AiEnableX/AiXBoost tunables instead of scattering ad hoc globals.
type Options struct {
	TTCapacityEntries      int
	EnableNullMove         bool
	EnableLMR              bool
	EnableFutility         bool
	EnablePVS              bool
	AspirationHalfWidthCP  int
	NullMoveReduction      int
	NodeCheckInterval      uint64
}

// DefaultOptions matches spec §4.7's "defaults: all on".
func DefaultOptions() Options {
	return Options{
		TTCapacityEntries:     1 << 20,
		EnableNullMove:        true,
		EnableLMR:             true,
		EnableFutility:        true,
		EnablePVS:             true,
		AspirationHalfWidthCP: 25,
		NullMoveReduction:     2,
		NodeCheckInterval:     4096,
	}
}

// Limits bounds a single search call; any zero-valued field is
// unconstrained (§4.7 "limits is one or more of {...}").
type Limits struct {
	MaxDepth  int
	MoveTime  int64 // milliseconds; 0 means unbounded
	MaxNodes  uint64
}
