package position

import "github.com/hollowrook/chesscore/internal/chess"

// castleRookSquares returns the rook's from/to squares for a castling move
// by color c in the given direction.
func castleRookSquares(c chess.Color, flag chess.MoveFlag) (from, to chess.Square) {
	rank := 0
	if c == chess.Black {
		rank = 7
	}
	if flag == chess.CastleKingside {
		return chess.NewSquare(7, rank), chess.NewSquare(5, rank)
	}
	return chess.NewSquare(0, rank), chess.NewSquare(3, rank)
}

// revokeForSquare clears the castling right, if any, anchored at sq —
// used both when a rook leaves its home square and when one is captured
// there.
func revokeForSquare(rights uint8, sq chess.Square) uint8 {
	switch sq {
	case chess.NewSquare(0, 0):
		return rights &^ WhiteQueenside
	case chess.NewSquare(7, 0):
		return rights &^ WhiteKingside
	case chess.NewSquare(0, 7):
		return rights &^ BlackQueenside
	case chess.NewSquare(7, 7):
		return rights &^ BlackKingside
	default:
		return rights
	}
}

func enemyPawnAdjacent(p *Position, them chess.Color, to chess.Square) bool {
	file, rank := to.File(), to.Rank()
	if file > 0 && p.Pieces[them][chess.Pawn].Has(chess.NewSquare(file-1, rank)) {
		return true
	}
	if file < 7 && p.Pieces[them][chess.Pawn].Has(chess.NewSquare(file+1, rank)) {
		return true
	}
	return false
}

// Apply plays m on the position, pushing an UndoRecord that Undo will pop.
// It assumes m was produced by the move generator for this exact position;
// move generation and make/unmake never fail (§7) — validating an
// arbitrary input string is the caller's job (see the engine package).
func (p *Position) Apply(m chess.Move) {
	us := p.SideToMove
	them := us.Other()

	undo := UndoRecord{
		Move:          m,
		PrevCastling:  p.CastlingRights,
		PrevEnPassant: p.EnPassant,
		PrevHalfmove:  p.HalfmoveClock,
		PrevFullmove:  p.FullmoveNumber,
		PrevHash:      p.Hash,
		CapturedKind:  chess.NoKind,
		CapturedSquare: chess.NoSquare,
		RookFrom:      chess.NoSquare,
		RookTo:        chess.NoSquare,
	}

	if p.EnPassant != chess.NoSquare {
		p.Hash ^= p.zt.EnPassantKey(p.EnPassant.File())
	}

	// 1. remove the moved piece from its source square.
	p.removePiece(us, m.Piece, m.From)

	// 2. remove a captured piece, if any (en-passant removes the pawn
	// behind the destination, not the destination itself).
	if m.Flag == chess.EnPassant {
		capSq := chess.NewSquare(m.To.File(), m.From.Rank())
		undo.CapturedKind = chess.Pawn
		undo.CapturedSquare = capSq
		undo.CapturedColor = them
		p.removePiece(them, chess.Pawn, capSq)
	} else if m.Captured != chess.NoKind {
		undo.CapturedKind = m.Captured
		undo.CapturedSquare = m.To
		undo.CapturedColor = them
		p.removePiece(them, m.Captured, m.To)
	}

	// 3. place the moved piece, or its promotion, on the destination.
	placedKind := m.Piece
	if m.Promotion != chess.NoKind {
		placedKind = m.Promotion
	}
	p.putPiece(us, placedKind, m.To)

	// 4. move the rook too, if castling.
	if m.Flag == chess.CastleKingside || m.Flag == chess.CastleQueenside {
		rookFrom, rookTo := castleRookSquares(us, m.Flag)
		undo.RookFrom, undo.RookTo = rookFrom, rookTo
		p.removePiece(us, chess.Rook, rookFrom)
		p.putPiece(us, chess.Rook, rookTo)
	}

	// 5. en-passant target: set after every double push, on the square the
	// pawn passed over, whether or not an enemy pawn can capture there.
	newEP := chess.NoSquare
	if m.Flag == chess.DoublePush {
		newEP = chess.NewSquare(m.To.File(), (m.From.Rank()+m.To.Rank())/2)
	}
	p.EnPassant = newEP
	if newEP != chess.NoSquare {
		p.Hash ^= p.zt.EnPassantKey(newEP.File())
	}

	// 6. castling rights: king moves strip both; a rook leaving or being
	// captured on its home square strips one.
	newRights := p.CastlingRights
	if m.Piece == chess.King {
		if us == chess.White {
			newRights &^= WhiteKingside | WhiteQueenside
		} else {
			newRights &^= BlackKingside | BlackQueenside
		}
	}
	newRights = revokeForSquare(newRights, m.From)
	if undo.CapturedKind == chess.Rook {
		newRights = revokeForSquare(newRights, undo.CapturedSquare)
	}
	if newRights != p.CastlingRights {
		p.Hash ^= p.zt.CastlingKey(p.CastlingRights)
		p.Hash ^= p.zt.CastlingKey(newRights)
		p.CastlingRights = newRights
	}

	// 7. toggle side to move.
	p.Hash ^= p.zt.Side
	p.SideToMove = them

	// 8. halfmove/fullmove counters.
	if m.Piece == chess.Pawn || undo.CapturedKind != chess.NoKind {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if us == chess.Black {
		p.FullmoveNumber++
	}

	p.History = append(p.History, undo)
	p.RepetitionKeys = append(p.RepetitionKeys, p.Hash)
}

// Undo reverses the most recently applied move exactly, restoring every
// field including Hash bit-for-bit (§4.3 contract). It panics if there is
// nothing to undo; callers that accept external "undo" requests (the
// engine package) check HistoryLen first and surface HistoryEmpty instead.
func (p *Position) Undo() {
	n := len(p.History)
	undo := p.History[n-1]
	p.History = p.History[:n-1]
	p.RepetitionKeys = p.RepetitionKeys[:len(p.RepetitionKeys)-1]

	m := undo.Move
	us := p.SideToMove.Other()
	them := p.SideToMove

	p.SideToMove = us
	p.CastlingRights = undo.PrevCastling
	p.EnPassant = undo.PrevEnPassant
	p.HalfmoveClock = undo.PrevHalfmove
	p.FullmoveNumber = undo.PrevFullmove
	p.Hash = undo.PrevHash

	placedKind := m.Piece
	if m.Promotion != chess.NoKind {
		placedKind = m.Promotion
	}
	p.clearRaw(us, placedKind, m.To)

	if m.Flag == chess.CastleKingside || m.Flag == chess.CastleQueenside {
		p.clearRaw(us, chess.Rook, undo.RookTo)
		p.placeRaw(us, chess.Rook, undo.RookFrom)
	}

	if undo.CapturedKind != chess.NoKind {
		p.placeRaw(them, undo.CapturedKind, undo.CapturedSquare)
	}

	p.placeRaw(us, m.Piece, m.From)
}

// HistoryLen reports how many moves are on the undo stack.
func (p *Position) HistoryLen() int {
	return len(p.History)
}

// LastMove returns the most recently applied move and true, or the zero
// Move and false if history is empty.
func (p *Position) LastMove() (chess.Move, bool) {
	if len(p.History) == 0 {
		return chess.Move{}, false
	}
	return p.History[len(p.History)-1].Move, true
}

// MakeNullMove flips the side to move without moving a piece, clearing the
// en-passant square. Used only by the searcher's null-move pruning (§4.7);
// it does not touch the undo stack because search always pairs it with
// UnmakeNullMove on the same recursion frame, never leaves it applied
// across a ply boundary the way a real move can.
func (p *Position) MakeNullMove() (prevEP chess.Square, prevHash uint64) {
	prevEP, prevHash = p.EnPassant, p.Hash
	if p.EnPassant != chess.NoSquare {
		p.Hash ^= p.zt.EnPassantKey(p.EnPassant.File())
	}
	p.EnPassant = chess.NoSquare
	p.Hash ^= p.zt.Side
	p.SideToMove = p.SideToMove.Other()
	return prevEP, prevHash
}

// UnmakeNullMove reverses MakeNullMove using the values it returned.
func (p *Position) UnmakeNullMove(prevEP chess.Square, prevHash uint64) {
	p.SideToMove = p.SideToMove.Other()
	p.EnPassant = prevEP
	p.Hash = prevHash
}
