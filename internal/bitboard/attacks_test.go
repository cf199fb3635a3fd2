package bitboard

import (
	"testing"

	"github.com/hollowrook/chesscore/internal/chess"
)

func TestKnightCornerAttacks(t *testing.T) {
	a1 := chess.NewSquare(0, 0)
	got := KnightMoves[a1]
	want := FromSquare(chess.NewSquare(1, 2)) | FromSquare(chess.NewSquare(2, 1))
	if got != want {
		t.Fatalf("knight attacks from a1 = %064b, want %064b", got, want)
	}
}

func TestRookAttacksStopAtBlocker(t *testing.T) {
	e1 := chess.NewSquare(4, 0)
	e4 := chess.NewSquare(4, 3)
	occ := FromSquare(e4)
	attacks := RookAttacks(e1, occ)
	if !attacks.Has(e4) {
		t.Fatalf("expected rook attack to include the blocker square")
	}
	e5 := chess.NewSquare(4, 4)
	if attacks.Has(e5) {
		t.Fatalf("rook attack should not pass through a blocker")
	}
}

func TestBetweenAndLine(t *testing.T) {
	a1 := chess.NewSquare(0, 0)
	h8 := chess.NewSquare(7, 7)
	d4 := chess.NewSquare(3, 3)
	between := Between(a1, h8)
	if !between.Has(d4) {
		t.Fatalf("expected d4 to lie between a1 and h8 on the diagonal")
	}
	if between.Has(a1) || between.Has(h8) {
		t.Fatalf("between must exclude the endpoints")
	}
	line := Line(a1, h8)
	g7 := chess.NewSquare(6, 6)
	if !line.Has(g7) {
		t.Fatalf("expected the a1-h8 line to extend through g7")
	}
}

func TestBetweenNonSharedRayIsEmpty(t *testing.T) {
	a1 := chess.NewSquare(0, 0)
	b3 := chess.NewSquare(1, 2)
	if Between(a1, b3) != 0 {
		t.Fatalf("squares off any shared ray must have an empty between set")
	}
}
