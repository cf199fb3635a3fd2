package search

import (
	"testing"

	"github.com/hollowrook/chesscore/internal/chess"
	"github.com/hollowrook/chesscore/internal/movegen"
	"github.com/hollowrook/chesscore/internal/position"
)

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	p, err := position.ParseFEN(position.StartFEN)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := movegen.GenerateLegal(p)
	tt := moves[len(moves)-1]

	var killers killerTable
	var history historyTable
	ordered := orderMoves(p, moves, tt, true, &killers, &history, 0)
	if ordered[0] != tt {
		t.Fatalf("expected the TT move to be ordered first, got %s", ordered[0])
	}
	if len(ordered) != len(moves) {
		t.Fatalf("expected orderMoves to preserve the move count")
	}
}

func TestOrderMovesRanksWinningCaptureAboveLosingCapture(t *testing.T) {
	// White queen on c1 can take an undefended pawn on h6 (winning); the
	// knight on c3 can take a pawn on d5 defended by another pawn (losing).
	p, err := position.ParseFEN("4k3/8/4p2p/3p4/8/2N5/8/2Q1K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := movegen.GenerateCaptures(p)
	if len(moves) != 2 {
		t.Fatalf("expected two candidate captures, got %d: %v", len(moves), moves)
	}
	var killers killerTable
	var history historyTable
	ordered := orderMoves(p, moves, chess.Move{}, false, &killers, &history, 0)
	if staticExchangeEval(p, ordered[0]) < staticExchangeEval(p, ordered[1]) {
		t.Fatalf("expected captures ordered best-SEE-first, got %v", ordered)
	}
}
