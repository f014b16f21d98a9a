// makers.go applies a Move's four shapes (normal, castling, promotion, en
// passant) to the board (spec §4.3). Every mutation goes through
// Board.doPlace/doRemove/doRelocate so the undo journal is built
// automatically; makers.go never pokes b.squares directly.
package corvus

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// stateTagBearing reports whether k's piece tag encodes state (castling
// eligibility, starting/penultimate rank) that a plain relocate would leave
// stale.
func stateTagBearing(k Kind) bool { return k == KindKing || k == KindRook || k == KindPawn }

// retaggedAfterMove computes the tag mover should carry after arriving on
// to, given its tag before the move. Queen/bishop/knight tags never change
// under a normal move (a bishop's square color is invariant along its own
// diagonal), so this is only consulted for king/rook/pawn movers.
func retaggedAfterMove(mover Piece, to Square) Piece {
	switch mover.Kind() {
	case KindKing:
		if mover.Color() == White {
			return WKing
		}
		return BKing
	case KindRook:
		if !mover.CanCastle() {
			return mover
		}
		if mover.Color() == White {
			return WRook
		}
		return BRook
	case KindPawn:
		rank := to.Rank()
		if mover.Color() == White {
			switch rank {
			case 6:
				return WPawnPenult
			default:
				return WPawn
			}
		}
		switch rank {
		case 1:
			return BPawnPenult
		default:
			return BPawn
		}
	default:
		return mover
	}
}

// applyMove dispatches m to the appropriate maker. Called with the new
// frame already pushed (spec §4.3's "already-advanced" convention).
func applyMove(b *Board, m Move) {
	from, to := m.From(), m.To()
	mover := b.squares[from]
	if m.Kind() != MoveCastling && mover.Kind() == KindKing && mover.CanCastle() {
		dropSurvivingRookRights(b, mover.Color())
	}
	switch m.Kind() {
	case MoveCastling:
		applyCastling(b, mover, to)
	case MoveEnPassant:
		applyEnPassant(b, mover, from, to)
	case MovePromotion:
		applyPromotion(b, mover, from, to, m.Promo())
	default:
		applyNormal(b, mover, from, to)
	}
}

// dropSurvivingRookRights retags any of color's rooks still marked castling
// -capable to plain rooks. Called just before the king itself moves off a
// non-castling move (a move the generic king maker already retags), and at
// the end of applyCastling for the rook that did not take part:
// the king losing its own tag is not enough on its own to record that its
// rooks' rights are gone too, since a rook's own tag only ever flips when
// that specific rook moves or is captured.
func dropSurvivingRookRights(b *Board, color Color) {
	corners := [2]Square{SA1, SH1}
	if color == Black {
		corners = [2]Square{SA8, SH8}
	}
	for _, sq := range corners {
		if p := b.squares[sq]; p != Empty && p.CanCastle() {
			b.doRemove(sq)
			b.doPlace(sq, basePiece(color, KindRook, isLightSquare(sq)))
		}
	}
}

func applyNormal(b *Board, mover Piece, from, to Square) {
	f := b.f()
	if b.squares[to] != Empty {
		b.doRemove(to)
		f.halfmoveClock = 0
	}
	if stateTagBearing(mover.Kind()) {
		b.doRemove(from)
		b.doPlace(to, retaggedAfterMove(mover, to))
	} else {
		b.doRelocate(from, to)
	}
	if mover.Kind() == KindPawn {
		f.halfmoveClock = 0
		if absInt(to.Rank()-from.Rank()) == 2 {
			f.setEnPassant(Square(from.File()*8 + (from.Rank()+to.Rank())/2))
		}
	}
}

// castlingRookSquares returns the rook's (from, to) squares for the king
// move to, which must be one of SG1/SC1/SG8/SC8.
func castlingRookSquares(to Square) (from, dest Square) {
	switch to {
	case SG1:
		return SH1, SF1
	case SC1:
		return SA1, SD1
	case SG8:
		return SH8, SF8
	case SC8:
		return SA8, SD8
	default:
		panic(&internalError{"castlingRookSquares: king destination is not a castling square"})
	}
}

func applyCastling(b *Board, king Piece, kingTo Square) {
	kingFrom := b.sides[king.Color()].King()
	rookFrom, rookTo := castlingRookSquares(kingTo)
	rook := b.squares[rookFrom]
	b.doRemove(kingFrom)
	b.doPlace(kingTo, retaggedAfterMove(king, kingTo))
	b.doRemove(rookFrom)
	b.doPlace(rookTo, retaggedAfterMove(rook, rookTo))
	// Castling is only legal while the king has never moved, so the instant
	// it happens both corner rooks' rights are gone, not just the one that
	// just rode along. rookFrom is already empty and rookTo isn't a corner
	// square, so this only ever finds (and retags) the other, untouched one.
	dropSurvivingRookRights(b, king.Color())
}

func applyEnPassant(b *Board, pawn Piece, from, to Square) {
	capturedSq := Square(to.File()*8 + from.Rank())
	b.doRemove(capturedSq)
	b.doRemove(from)
	b.doPlace(to, retaggedAfterMove(pawn, to))
	b.f().halfmoveClock = 0
}

// promoKindToKind maps the packed 2-bit promotion choice to a piece Kind.
func promoKindToKind(p PromoKind) Kind {
	switch p {
	case PromoKnight:
		return KindKnight
	case PromoBishop:
		return KindBishop
	case PromoRook:
		return KindRook
	default:
		return KindQueen
	}
}

func applyPromotion(b *Board, pawn Piece, from, to Square, promo PromoKind) {
	if b.squares[to] != Empty {
		b.doRemove(to)
	}
	b.doRemove(from)
	newPiece := basePiece(pawn.Color(), promoKindToKind(promo), isLightSquare(to))
	b.doPlace(to, newPiece)
	b.f().halfmoveClock = 0
}
