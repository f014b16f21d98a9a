// side.go is the per-side half of the board: attack tables and the piece
// list (spec §3.2, §3.3). Each Board holds two Side values, one per color.
package corvus

// maxPieces is the largest possible piece count for one side (king + 8
// pawns + up to 9 promoted pieces is never reached in legal play; 16 covers
// every position reachable from the start position and then some).
const maxPieces = 16

// Side holds one color's attack table, piece list, and bishop-diagonal
// occupancy mask.
type Side struct {
	// attacks[sq] is a 16-bit word: bit d (0..7) a sliding-ray hit from
	// direction index d, bit 8 "attacked by this side's king", bits 10/11
	// pawn west/east capture geometry, bits 12-15 the number of this side's
	// knights attacking sq. See attacks.go for the exact bit meanings
	// consumed by move generation and check detection.
	attacks [64]uint16

	// bishopDiagonals XOR-toggles in/out of the (NE-SW, NW-SE) diagonal
	// membership mask on every bishop move or capture of this color.
	bishopDiagonals uint32

	// pieces is the piece-square list: pieces[0] is always this side's king
	// square; entries 1..nrKnights are always this side's knights, packed
	// contiguously; the remainder hold queens/rooks/bishops/pawns in no
	// particular order. See piecelist.go for the maintenance invariant.
	pieces    [maxPieces]Square
	nrPieces  int
	nrKnights int

	color Color
}

// King returns this side's king square.
func (s *Side) King() Square { return s.pieces[0] }

// reset clears the side to an empty state.
func (s *Side) reset(c Color) {
	*s = Side{color: c, nrPieces: 1} // slot 0 is reserved for the king
	for i := range s.pieces {
		s.pieces[i] = NoSquare
	}
}
