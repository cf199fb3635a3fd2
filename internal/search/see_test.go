package search

import (
	"testing"

	"github.com/hollowrook/chesscore/internal/eval"
	"github.com/hollowrook/chesscore/internal/movegen"
	"github.com/hollowrook/chesscore/internal/position"
)

func mustFENSee(t *testing.T, fen string) *position.Position {
	t.Helper()
	p, err := position.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func TestSEEWinningPawnCaptureNoRecapture(t *testing.T) {
	p := mustFENSee(t, "4k3/8/8/4p3/3P4/8/8/4K3 w - - 0 1")
	moves := movegen.GenerateCaptures(p)
	if len(moves) != 1 {
		t.Fatalf("expected exactly one capture, got %d", len(moves))
	}
	if see := staticExchangeEval(p, moves[0]); see != eval.PawnValue {
		t.Fatalf("expected SEE of an undefended pawn capture to equal a pawn's value, got %d", see)
	}
}

func TestSEELosingKnightCapture(t *testing.T) {
	p := mustFENSee(t, "4k3/8/4p3/3p4/8/2N5/8/4K3 w - - 0 1")
	moves := movegen.GenerateCaptures(p)
	if len(moves) != 1 {
		t.Fatalf("expected exactly one capture, got %d", len(moves))
	}
	if see := staticExchangeEval(p, moves[0]); see >= 0 {
		t.Fatalf("expected a pawn-defended pawn capture by a knight to lose material, got SEE=%d", see)
	}
}
