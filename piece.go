// piece.go declares the closed piece-tag enumeration (spec §3.1): castling
// rights and pawn-rank state are folded into the tag itself so the hot move
// generation path is a single array lookup rather than a tag-plus-flags pair.
package corvus

// Piece is a square's occupant tag. Empty is the zero value.
type Piece int8

const (
	Empty Piece = iota

	WKing
	WKingCastle // king still eligible to castle with at least one rook
	WQueen
	WRook
	WRookCastle // rook still eligible to castle
	WBishopL    // bishop on a light square
	WBishopD    // bishop on a dark square
	WKnight
	WPawn
	WPawnStart   // pawn still on its starting rank (rank 2)
	WPawnPenult  // pawn on the penultimate rank (rank 7), one push from promoting

	BKing
	BKingCastle
	BQueen
	BRook
	BRookCastle
	BBishopL
	BBishopD
	BKnight
	BPawn
	BPawnStart  // pawn still on its starting rank (rank 7, black's second rank)
	BPawnPenult // pawn on rank 2, one push from promoting
)

// Kind is a piece's type, independent of color or castling/rank state.
type Kind int8

const (
	KindNone Kind = iota
	KindKing
	KindQueen
	KindRook
	KindBishop
	KindKnight
	KindPawn
)

// Color returns the piece's side. Panics on Empty (internal assertion: the
// caller is expected to have checked occupancy first).
func (p Piece) Color() Color {
	if p == Empty {
		panic(&internalError{"Color() called on Empty piece"})
	}
	if p >= BKing {
		return Black
	}
	return White
}

// Kind normalizes a piece tag to its base kind, stripping castling/rank state.
func (p Piece) Kind() Kind {
	switch p {
	case Empty:
		return KindNone
	case WKing, WKingCastle, BKing, BKingCastle:
		return KindKing
	case WQueen, BQueen:
		return KindQueen
	case WRook, WRookCastle, BRook, BRookCastle:
		return KindRook
	case WBishopL, WBishopD, BBishopL, BBishopD:
		return KindBishop
	case WKnight, BKnight:
		return KindKnight
	case WPawn, WPawnStart, WPawnPenult, BPawn, BPawnStart, BPawnPenult:
		return KindPawn
	default:
		panic(&internalError{"Kind(): impossible piece tag"})
	}
}

// IsSlider reports whether the piece moves along rays (bishop/rook/queen).
func (p Piece) IsSlider() bool {
	switch p.Kind() {
	case KindQueen, KindRook, KindBishop:
		return true
	}
	return false
}

// CanCastle reports whether p is a castling-capable king or rook tag.
func (p Piece) CanCastle() bool {
	switch p {
	case WKingCastle, BKingCastle, WRookCastle, BRookCastle:
		return true
	}
	return false
}

// IsPawn7th reports whether p is a pawn on its penultimate (promotion-adjacent)
// rank.
func (p Piece) IsPawn7th() bool { return p == WPawnPenult || p == BPawnPenult }

// value is the SEE "pawn unit" material value of a piece kind: pawn=1,
// minor(knight/bishop)=3, rook=5, queen/king=9 (both are the SEE "royal"
// class — the king never actually gets captured in legal play, so its exact
// SEE weight is a modeling convenience, not a material truth).
func (k Kind) value() int {
	switch k {
	case KindPawn:
		return 1
	case KindKnight, KindBishop:
		return 3
	case KindRook:
		return 5
	case KindQueen, KindKing:
		return 9
	default:
		return 0
	}
}

// pieceLetter maps each of the 12 "plain" piece kinds (white then black,
// in King,Queen,Rook,Bishop,Knight,Pawn order) to its FEN letter.
var pieceLetter = [2][7]byte{
	{0, 'K', 'Q', 'R', 'B', 'N', 'P'},
	{0, 'k', 'q', 'r', 'b', 'n', 'p'},
}

// Letter returns the FEN character for p, or ' ' for Empty.
func (p Piece) Letter() byte {
	if p == Empty {
		return ' '
	}
	return pieceLetter[p.Color()][p.Kind()]
}

// basePiece returns the canonical (non-castling, non-rank-tracking) tag for
// the given color and kind; bishops need an explicit square-color argument
// since the spec's bishop-light/bishop-dark split is square-color, not a
// move-time choice.
func basePiece(c Color, k Kind, lightSquare bool) Piece {
	switch k {
	case KindKing:
		if c == White {
			return WKing
		}
		return BKing
	case KindQueen:
		if c == White {
			return WQueen
		}
		return BQueen
	case KindRook:
		if c == White {
			return WRook
		}
		return BRook
	case KindBishop:
		if c == White {
			if lightSquare {
				return WBishopL
			}
			return WBishopD
		}
		if lightSquare {
			return BBishopL
		}
		return BBishopD
	case KindKnight:
		if c == White {
			return WKnight
		}
		return BKnight
	case KindPawn:
		if c == White {
			return WPawn
		}
		return BPawn
	default:
		panic(&internalError{"basePiece: impossible kind"})
	}
}

// isLightSquare reports whether sq is a light square, used to pick between
// the bishop-light/bishop-dark tags.
func isLightSquare(sq Square) bool { return (sq.File()+sq.Rank())%2 == 1 }
