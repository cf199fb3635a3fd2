// Package engine is the session-free engine-to-host contract of §6: a
// Game wraps Position, MoveGenerator, Searcher, and TranspositionTable
// behind create/apply/undo/query/search/perft operations, normalizing
// every failure to one of the five ErrorKinds. It holds no session map and
// no transport, the seam external protocol layers attach to — matching
// how the teacher's ai_player.go sits above minimax without itself
// speaking HTTP or websockets.
package engine

import (
	"fmt"

	"github.com/hollowrook/chesscore/internal/movegen"
	"github.com/hollowrook/chesscore/internal/perft"
	"github.com/hollowrook/chesscore/internal/position"
	"github.com/hollowrook/chesscore/internal/search"
	"github.com/hollowrook/chesscore/internal/tt"
	"github.com/rs/zerolog"

	"github.com/hollowrook/chesscore/internal/logx"
)

// Game is one in-memory game: a Position plus the search machinery bound
// to it for the game's lifetime, per §5's "TT is owned per-search" (here,
// per-game).
type Game struct {
	pos *position.Position
	tt  *tt.Table
	opts search.Options
	log  zerolog.Logger
}

// NewGame creates a game from the standard start position.
func NewGame(opts SearchOptions) *Game {
	return newGame(position.StartPosition(), opts)
}

// NewGameFromFEN creates a game from a FEN string, returning an
// InvalidFen error if the FEN is malformed.
func NewGameFromFEN(fen string, opts SearchOptions) (*Game, error) {
	p, err := position.ParseFEN(fen)
	if err != nil {
		return nil, newError(InvalidFen, "could not parse FEN", err)
	}
	return newGame(p, opts), nil
}

func newGame(p *position.Position, opts SearchOptions) *Game {
	g := &Game{
		pos:  p,
		tt:   tt.New(opts.TTCapacityBytes),
		opts: opts.toSearchOptions(),
		log:  logx.NewLogger(),
	}
	g.log.Info().Str("fen", p.FEN()).Msg("game created")
	return g
}

// FEN returns the current position's FEN string.
func (g *Game) FEN() string { return g.pos.FEN() }

// LegalMoves returns the long-algebraic strings of every legal move from
// the current position.
func (g *Game) LegalMoves() []string {
	moves := movegen.GenerateLegal(g.pos)
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool { return g.pos.InCheck() }

// IsCheckmate reports whether the side to move has no legal moves and is
// in check.
func (g *Game) IsCheckmate() bool {
	return g.pos.InCheck() && len(movegen.GenerateLegal(g.pos)) == 0
}

// IsStalemate reports whether the side to move has no legal moves and is
// not in check.
func (g *Game) IsStalemate() bool {
	return !g.pos.InCheck() && len(movegen.GenerateLegal(g.pos)) == 0
}

// IsDraw reports whether the position is drawn by the fifty-move rule or
// threefold repetition (checked over the game's own recorded history,
// matching the "repetition against previously visited positions" scope
// the searcher itself uses).
func (g *Game) IsDraw() bool {
	if g.pos.HalfmoveClock >= 100 {
		return true
	}
	seen := 0
	for _, h := range g.pos.RepetitionKeys {
		if h == g.pos.Hash {
			seen++
		}
	}
	return seen >= 3
}

// LastMove returns the last applied move, if any.
func (g *Game) LastMove() (string, bool) {
	m, ok := g.pos.LastMove()
	if !ok {
		return "", false
	}
	return m.String(), true
}

// History returns every move applied so far, in long-algebraic form,
// oldest first.
func (g *Game) History() []string {
	n := g.pos.HistoryLen()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.pos.History[i].Move.String())
	}
	return out
}

// ApplyMove parses alg as a long-algebraic move string and applies it if
// it is legal, returning an IllegalMove error otherwise.
func (g *Game) ApplyMove(alg string) error {
	for _, m := range movegen.GenerateLegal(g.pos) {
		if m.String() == alg {
			g.pos.Apply(m)
			return nil
		}
	}
	g.log.Warn().Str("move", alg).Str("fen", g.pos.FEN()).Msg("rejected illegal move")
	return newError(IllegalMove, fmt.Sprintf("%q is not a legal move", alg), nil)
}

// UndoMove undoes the last applied move, returning a HistoryEmpty error if
// there is nothing to undo.
func (g *Game) UndoMove() error {
	if g.pos.HistoryLen() == 0 {
		return newError(HistoryEmpty, "no move to undo", nil)
	}
	g.pos.Undo()
	return nil
}

// Score is the search result's evaluation, expressed either as
// centipawns or as a mate-in-N-plies count, per §6.
type Score struct {
	CP     int
	Mate   int
	IsMate bool
}

// SearchResult is the engine-boundary search response (§6).
type SearchResult struct {
	BestMove        string
	Score           Score
	PV              []string
	Nodes           uint64
	QNodes          uint64
	SelDepth        int
	TimeMS          int64
	Depth           int
	CompletedDepths int
	TT              TTStats
}

// TTStats mirrors §6's "TT counters including hits, exact/lower/upper
// hits, probes, stores, replacements, size, hashfull".
type TTStats struct {
	Probes       uint64
	Hits         uint64
	ExactHits    uint64
	LowerHits    uint64
	UpperHits    uint64
	Stores       uint64
	Replacements uint64
	Size         int
	Hashfull     int
}

// Search runs a search from the current position with the given limits.
// If the stop function fires before any root move at depth 1 completes,
// it returns the (empty) best-effort result alongside a SearchAborted
// error, per §7: the search itself never fails, but the boundary must
// still surface that the result carries nothing usable.
func (g *Game) Search(limits search.Limits, stop func() bool) (SearchResult, error) {
	res := search.Search(g.pos, g.tt, limits, g.opts, stop)

	pv := make([]string, len(res.PV))
	for i, m := range res.PV {
		pv[i] = m.String()
	}

	score := scoreFromCP(res.Score)

	g.log.Info().
		Int("depth", res.Depth).
		Int("score_cp", res.Score).
		Uint64("nodes", res.Stats.Nodes).
		Uint64("qnodes", res.Stats.QNodes).
		Dur("elapsed", res.Stats.Elapsed()).
		Str("best_move", res.BestMove.String()).
		Msg("search completed")

	result := SearchResult{
		BestMove:        res.BestMove.String(),
		Score:           score,
		PV:              pv,
		Nodes:           res.Stats.Nodes,
		QNodes:          res.Stats.QNodes,
		SelDepth:        res.Stats.SelDepth,
		TimeMS:          res.Stats.Elapsed().Milliseconds(),
		Depth:           res.Depth,
		CompletedDepths: res.Stats.CompletedDepths,
		TT: TTStats{
			Probes:       res.Stats.TTProbes,
			Hits:         res.Stats.TTHits,
			ExactHits:    res.Stats.TTExactHits,
			LowerHits:    res.Stats.TTLowerHits,
			UpperHits:    res.Stats.TTUpperHits,
			Stores:       res.Stats.TTStores,
			Replacements: res.Stats.TTReplacements,
			Size:         g.tt.Capacity(),
			Hashfull:     g.tt.Hashfull(),
		},
	}

	if res.Stats.CompletedDepths == 0 {
		g.log.Warn().Msg("search aborted before any root move completed")
		return result, newError(SearchAborted, "stopped before the first root move completed", nil)
	}
	return result, nil
}

func scoreFromCP(cp int) Score {
	if cp >= tt.MateBound {
		plies := tt.Mate - cp
		return Score{Mate: (plies + 1) / 2, IsMate: true}
	}
	if cp <= -tt.MateBound {
		plies := tt.Mate + cp
		return Score{Mate: -(plies + 1) / 2, IsMate: true}
	}
	return Score{CP: cp}
}

// Perft returns the perft node count from the current position at depth.
func (g *Game) Perft(depth int) uint64 {
	return perft.Count(g.pos, depth)
}

// PerftDivide returns the perft-divide breakdown from the current
// position at depth.
func (g *Game) PerftDivide(depth int) map[string]uint64 {
	return perft.Divide(g.pos, depth)
}

// PerftFromFEN runs perft from a fresh position parsed from fen, without
// mutating any existing game.
func PerftFromFEN(fen string, depth int) (uint64, error) {
	p, err := position.ParseFEN(fen)
	if err != nil {
		return 0, newError(InvalidFen, "could not parse FEN", err)
	}
	return perft.Count(p, depth), nil
}
