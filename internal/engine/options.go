package engine

import (
	"os"
	"strconv"

	"github.com/hollowrook/chesscore/internal/search"
)

// SearchOptions is the closed, enumerated configuration struct §9 calls
// for ("duck-typed configuration" note): no string-keyed dynamic lookup at
// runtime, just documented fields with defaults.
type SearchOptions struct {
	TTCapacityBytes       int
	EnableNullMove        bool
	EnableLMR             bool
	EnableFutility        bool
	EnablePVS             bool
	AspirationHalfWidthCP int
}

// DefaultSearchOptions returns the documented defaults (§9).
func DefaultSearchOptions() SearchOptions {
	d := search.DefaultOptions()
	return SearchOptions{
		TTCapacityBytes:       64 << 20, // 64 MiB
		EnableNullMove:        d.EnableNullMove,
		EnableLMR:             d.EnableLMR,
		EnableFutility:        d.EnableFutility,
		EnablePVS:             d.EnablePVS,
		AspirationHalfWidthCP: d.AspirationHalfWidthCP,
	}
}

// OptionsFromEnv builds SearchOptions from documented defaults, overridden
// by any CHESSCORE_* environment variables that are set. Grounded on the
// override-a-default pattern used to read STOCKFISH_PATH in
// freeeve-chessgraph/api/cmd/api/main.go, collected here into a single
// loader the way the teacher's config.go centralizes its tunables (the
// teacher itself reads its Config from JSON, not env vars, so the
// mechanism is adapted rather than copied).
func OptionsFromEnv() SearchOptions {
	opts := DefaultSearchOptions()

	if raw := os.Getenv("CHESSCORE_TT_CAPACITY_BYTES"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			opts.TTCapacityBytes = v
		}
	}
	if raw := os.Getenv("CHESSCORE_ENABLE_NULL_MOVE"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			opts.EnableNullMove = v
		}
	}
	if raw := os.Getenv("CHESSCORE_ENABLE_LMR"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			opts.EnableLMR = v
		}
	}
	if raw := os.Getenv("CHESSCORE_ENABLE_FUTILITY"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			opts.EnableFutility = v
		}
	}
	if raw := os.Getenv("CHESSCORE_ENABLE_PVS"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			opts.EnablePVS = v
		}
	}
	if raw := os.Getenv("CHESSCORE_ASPIRATION_HALF_WIDTH_CP"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			opts.AspirationHalfWidthCP = v
		}
	}
	return opts
}

func (o SearchOptions) toSearchOptions() search.Options {
	base := search.DefaultOptions()
	base.TTCapacityEntries = o.TTCapacityBytes / 40
	base.EnableNullMove = o.EnableNullMove
	base.EnableLMR = o.EnableLMR
	base.EnableFutility = o.EnableFutility
	base.EnablePVS = o.EnablePVS
	base.AspirationHalfWidthCP = o.AspirationHalfWidthCP
	return base
}
