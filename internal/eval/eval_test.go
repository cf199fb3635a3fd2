package eval

import (
	"strings"
	"testing"

	"github.com/hollowrook/chesscore/internal/position"
)

// mirrorFEN swaps colors and flips the board vertically, producing the
// FEN of the color-symmetric mirror position used by the mirroring test.
func mirrorFEN(t *testing.T, fen string) string {
	t.Helper()
	fields := strings.Fields(fen)
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		t.Fatalf("bad fen %q", fen)
	}
	mirroredRanks := make([]string, 8)
	for i, r := range ranks {
		var swapped strings.Builder
		for _, ch := range r {
			switch {
			case ch >= 'a' && ch <= 'z':
				swapped.WriteRune(ch - ('a' - 'A'))
			case ch >= 'A' && ch <= 'Z':
				swapped.WriteRune(ch + ('a' - 'A'))
			default:
				swapped.WriteRune(ch)
			}
		}
		mirroredRanks[7-i] = swapped.String()
	}
	placement := strings.Join(mirroredRanks, "/")

	stm := "b"
	if fields[1] == "b" {
		stm = "w"
	}

	var castling strings.Builder
	for _, ch := range fields[2] {
		switch ch {
		case 'K':
			castling.WriteByte('k')
		case 'Q':
			castling.WriteByte('q')
		case 'k':
			castling.WriteByte('K')
		case 'q':
			castling.WriteByte('Q')
		default:
			castling.WriteRune(ch)
		}
	}

	ep := fields[3]
	if ep != "-" {
		file := ep[0]
		rank := ep[1]
		mirroredRank := byte('9' - (rank - '0'))
		ep = string(file) + string(mirroredRank)
	}

	rest := strings.Join(fields[4:], " ")
	return placement + " " + stm + " " + castling.String() + " " + ep + " " + rest
}

func TestEvaluateMirrorSymmetry(t *testing.T) {
	fens := []string{
		position.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
	}
	for _, fen := range fens {
		p, err := position.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		mirrored, err := position.ParseFEN(mirrorFEN(t, fen))
		if err != nil {
			t.Fatalf("ParseFEN(mirror(%q)): %v", fen, err)
		}
		got, want := Evaluate(p), Evaluate(mirrored)
		if got != want {
			t.Errorf("evaluate(%q)=%d, evaluate(mirror)=%d, want equal", fen, got, want)
		}
	}
}

func TestEvaluateStartPositionIsBalanced(t *testing.T) {
	p := position.StartPosition()
	if got := Evaluate(p); got != 0 {
		t.Fatalf("expected the start position to be perfectly balanced, got %d", got)
	}
}

func TestEvaluateFavorsMaterialAdvantage(t *testing.T) {
	p, err := position.ParseFEN("4k3/8/8/8/8/8/8/RN2K3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := Evaluate(p); got <= 0 {
		t.Fatalf("expected a material-up position to score positive for the mover, got %d", got)
	}
}

func TestEvaluateBishopPairBonus(t *testing.T) {
	withPair, err := position.ParseFEN("4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	withOne, err := position.ParseFEN("4k3/8/8/8/8/8/8/3BK3 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// The extra bishop's square and mobility add +11 here (PST -10,
	// mobility +21), so the gap exceeds one bishop plus the pair bonus
	// only when the bonus is applied.
	if Evaluate(withPair)-Evaluate(withOne) <= BishopValue+bishopPairBonus {
		t.Fatalf("expected the bishop pair bonus to add above and beyond raw material")
	}
}
