// move.go defines the packed Move encoding and the preallocated MoveList
// buffer (spec §3.5, §4.4.8).
package corvus

// MoveKind distinguishes the four move shapes the maker dispatch table
// must special-case.
type MoveKind uint8

const (
	MoveNormal MoveKind = iota
	MoveCastling
	MovePromotion
	MoveEnPassant
)

// PromoKind is the promotion piece choice, packed into 2 bits.
type PromoKind uint8

const (
	PromoKnight PromoKind = iota
	PromoBishop
	PromoRook
	PromoQueen
)

/*
Move is a packed chess move:

	bits 0-5:   to square
	bits 6-11:  from square
	bits 12-13: promotion piece (see PromoKind); meaningless unless Kind() is
	            MovePromotion
	bits 14-15: move kind (see MoveKind)

The low 12 bits (to | from<<6) are the canonical 12-bit move code used to
index the butterfly table (spec §3.4).
Move(0) — from A1 to A1 — is not reachable by any legal move and is reserved
as the null-move sentinel.
*/
type Move uint16

// NewMove builds a non-promotion move.
func NewMove(from, to Square, kind MoveKind) Move {
	return Move(int(to) | int(from)<<6 | int(kind)<<14)
}

// NewPromotionMove builds a promotion move.
func NewPromotionMove(from, to Square, promo PromoKind) Move {
	return Move(int(to) | int(from)<<6 | int(promo)<<12 | int(MovePromotion)<<14)
}

// NullMove is the distinguished move code that can never be legal.
const NullMove Move = 0

func (m Move) To() Square      { return Square(m & 0x3F) }
func (m Move) From() Square    { return Square((m >> 6) & 0x3F) }
func (m Move) Promo() PromoKind { return PromoKind((m >> 12) & 0x3) }
func (m Move) Kind() MoveKind  { return MoveKind((m >> 14) & 0x3) }

// code returns the 12-bit (from,to) move code used to index butterfly/cuckoo
// tables.
func (m Move) code() uint16 { return uint16(m) & 0xFFF }

// String renders m in the simple UCI debug form, e.g. "e2e4", "e7e8q".
func (m Move) String() string {
	if m == NullMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if m.Kind() == MovePromotion {
		s += string("nbrq"[m.Promo()])
	}
	return s
}

// ParseUCIMove parses the simple UCI move text form back into a Move. The
// move kind (castling/en-passant/normal) cannot be recovered from text alone,
// so only the squares and promotion choice are returned; resolving the kind
// against the current position is left to the caller.
func ParseUCIMove(s string) (from, to Square, promo PromoKind, hasPromo bool, err error) {
	if len(s) < 4 || len(s) > 5 {
		return 0, 0, 0, false, &ParseError{Field: "move", Msg: "malformed UCI move " + s}
	}
	from, err = ParseSquare(s[0:2])
	if err != nil {
		return 0, 0, 0, false, err
	}
	to, err = ParseSquare(s[2:4])
	if err != nil {
		return 0, 0, 0, false, err
	}
	if len(s) == 5 {
		switch s[4] {
		case 'n':
			promo = PromoKnight
		case 'b':
			promo = PromoBishop
		case 'r':
			promo = PromoRook
		case 'q':
			promo = PromoQueen
		default:
			return 0, 0, 0, false, &ParseError{Field: "move", Msg: "bad promotion letter in " + s}
		}
		hasPromo = true
	}
	return from, to, promo, hasPromo, nil
}

// scoredMove pairs a generated move with its 16-bit prescore (spec §4.4.8):
// the high nibble is 0xF for captures (en passant included) whose SEE is not
// negative, 0x1 for losing captures, 0xE for non-capturing promotions and 0
// for every other move; the low 12 bits are the butterfly history score at
// emission time. See Board.prescore in movegen.go.
type scoredMove struct {
	move     Move
	prescore uint16
}

// maxMoves is the maximum legal move count in any reachable chess position
// (see https://www.talkchess.com/forum/viewtopic.php?t=61792).
const maxMoves = 218

// MoveList is a preallocated move buffer: generation never allocates.
type MoveList struct {
	moves [maxMoves]scoredMove
	n     int
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return l.n }

// At returns the i'th move.
func (l *MoveList) At(i int) Move { return l.moves[i].move }

// Prescore returns the i'th move's prescore.
func (l *MoveList) Prescore(i int) uint16 { return l.moves[i].prescore }

// push appends a move with the given prescore.
func (l *MoveList) push(m Move, prescore uint16) {
	l.moves[l.n] = scoredMove{m, prescore}
	l.n++
}

// reset empties the list for reuse without reallocating.
func (l *MoveList) reset() { l.n = 0 }

// Contains reports whether m (compared by from/to/kind/promo) is present.
func (l *MoveList) Contains(m Move) bool {
	for i := 0; i < l.n; i++ {
		o := l.moves[i].move
		if o.From() == m.From() && o.To() == m.To() && o.Kind() == m.Kind() &&
			(o.Kind() != MovePromotion || o.Promo() == m.Promo()) {
			return true
		}
	}
	return false
}
