package position

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	cases := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
		"8/8/8/K1Pp3r/8/8/8/7k w - d6 0 1",
	}
	for _, fen := range cases {
		p, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := p.FEN(); got != fen {
			t.Errorf("round trip mismatch: got %q want %q", got, fen)
		}
	}
}

func TestParseFENDefaultsTrailingFields(t *testing.T) {
	p, err := ParseFEN("8/8/8/8/8/8/8/4K2k w - -")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if p.HalfmoveClock != 0 || p.FullmoveNumber != 1 {
		t.Fatalf("expected defaulted halfmove=0 fullmove=1, got %d/%d", p.HalfmoveClock, p.FullmoveNumber)
	}
}

func TestParseFENRejectsMissingKing(t *testing.T) {
	_, err := ParseFEN("8/8/8/8/8/8/8/7k w - - 0 1")
	if err == nil {
		t.Fatalf("expected error for missing white king")
	}
}

func TestParseFENRejectsBadRank(t *testing.T) {
	_, err := ParseFEN("rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err == nil {
		t.Fatalf("expected error for a rank that doesn't sum to 8")
	}
}

func TestParseFENRejectsInconsistentEnPassant(t *testing.T) {
	// e3 is only a valid en-passant target when Black is to move.
	_, err := ParseFEN(StartFEN[:len(StartFEN)-len("KQkq - 0 1")] + "KQkq e3 0 1")
	if err == nil {
		t.Fatalf("expected error for en-passant square inconsistent with side to move")
	}
}

func TestHashMatchesRecompute(t *testing.T) {
	p, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if p.Hash != p.Recompute() {
		t.Fatalf("hash %x does not match from-scratch recompute %x", p.Hash, p.Recompute())
	}
}
