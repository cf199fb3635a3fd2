package eval

import "github.com/hollowrook/chesscore/internal/chess"

// Material values in centipawns (§4.5).
const (
	PawnValue   = 100
	KnightValue = 320
	BishopValue = 320
	RookValue   = 500
	QueenValue  = 900
	KingValue   = 0
)

var pieceValue = [7]int{0, PawnValue, KnightValue, BishopValue, RookValue, QueenValue, KingValue}

// mobilityWeight scales each non-pawn kind's pseudo-legal move count.
var mobilityWeight = [7]int{0, 0, 4, 3, 2, 1, 0}

// phaseWeight is the standard non-pawn material phase contribution,
// matching the teacher-adjacent hailam-chessplay eval's tapering scheme.
var phaseWeight = [7]int{0, 0, 1, 1, 2, 4, 0}

const maxPhase = 24

// Piece-square tables, White's perspective, a1=index 0 .. h8=index 63.
// Grounded on other_examples/hailam-chessplay__eval.go's tables.

var pawnPST = [64]int{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var knightPST = [64]int{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var bishopPST = [64]int{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var rookPST = [64]int{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var queenPST = [64]int{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var kingMidgamePST = [64]int{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, 0, 0, 0, 0, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-30, -40, -40, -50, -50, -40, -40, -30,
}

var kingEndgamePST = [64]int{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

var mgPST = [7][64]int{}
var egPST = [7][64]int{}

func init() {
	mgPST[chess.Pawn], egPST[chess.Pawn] = pawnPST, pawnPST
	mgPST[chess.Knight], egPST[chess.Knight] = knightPST, knightPST
	mgPST[chess.Bishop], egPST[chess.Bishop] = bishopPST, bishopPST
	mgPST[chess.Rook], egPST[chess.Rook] = rookPST, rookPST
	mgPST[chess.Queen], egPST[chess.Queen] = queenPST, queenPST
	mgPST[chess.King], egPST[chess.King] = kingMidgamePST, kingEndgamePST
}

// mirror flips a White-perspective square vertically for a Black piece's
// PST lookup, since every table above is written from White's point of view.
func mirror(sq chess.Square) chess.Square {
	return chess.NewSquare(sq.File(), 7-sq.Rank())
}
