// attacks.go maintains each side's 16-bit per-square attack words
// incrementally as pieces are placed and removed (spec §3.2, §4.2). Bits
// 0-7 record a sliding hit along ray-direction d (rook/bishop/queen only);
// bit 8 records a king hit, bits 10/11 a pawn capture from the west/east
// file, and bits 12-15 count the knights attacking the square.
package corvus

const (
	attKing   uint16 = 1 << 8
	attPawnW  uint16 = 1 << 10
	attPawnE  uint16 = 1 << 11
	attKnight uint16 = 1 << 12 // one unit of the 4-bit knight count
)

func opposite(d int) int { return (d + 4) % 8 }

// nearestOccupant walks from sq in direction dirIdx and returns the first
// occupied square, if any, before the board edge.
func (b *Board) nearestOccupant(sq Square, dirIdx int) (Square, bool) {
	df, dr := dirFileRankDelta[dirIdx][0], dirFileRankDelta[dirIdx][1]
	f, r := sq.File(), sq.Rank()
	for step := 0; step < rayLen[sq][dirIdx]; step++ {
		f += df
		r += dr
		cur := Square(f*8 + r)
		if b.squares[cur] != Empty {
			return cur, true
		}
	}
	return NoSquare, false
}

// walkAndToggle XORs bit d of color's attack word for every square from sq
// (exclusive) outward along direction d, stopping after (and including) the
// first blocker. Calling it twice with the same arguments and no occupancy
// change restores the prior state — the mechanism that lets a single helper
// both add and remove a slider's rays, and both open and close a ray passing
// through a square whose occupancy just changed.
func (b *Board) walkAndToggle(sq Square, dirIdx int, color Color) {
	df, dr := dirFileRankDelta[dirIdx][0], dirFileRankDelta[dirIdx][1]
	f, r := sq.File(), sq.Rank()
	bit := uint16(1) << uint(dirIdx)
	side := &b.sides[color]
	for step := 0; step < rayLen[sq][dirIdx]; step++ {
		f += df
		r += dr
		cur := Square(f*8 + r)
		side.attacks[cur] ^= bit
		if b.squares[cur] != Empty {
			break
		}
	}
}

// sliderDirections returns the ray-direction indices a slider kind moves
// along: rooks get the four orthogonal indices, bishops the four diagonal
// ones, queens all eight.
func sliderDirections(k Kind) []int {
	switch k {
	case KindRook:
		return []int{0, 2, 4, 6}
	case KindBishop:
		return []int{1, 3, 5, 7}
	case KindQueen:
		return []int{0, 1, 2, 3, 4, 5, 6, 7}
	default:
		panic(&internalError{"sliderDirections: not a slider kind"})
	}
}

// toggleSliderRays adds (or, called again, removes) the rays a slider at sq
// projects outward.
func (b *Board) toggleSliderRays(sq Square, p Piece) {
	for _, d := range sliderDirections(p.Kind()) {
		b.walkAndToggle(sq, d, p.Color())
	}
}

// retoggleThroughSquare fixes up any slider ray that passes through sq when
// sq's occupancy changes: for each direction, it looks back along the
// opposite direction for the nearest slider whose movement axis matches,
// and toggles that slider's ray on the far side of sq. Must be called with
// sq already reflecting its NEW occupancy state (empty when vacating,
// still empty-but-about-to-be-filled when placing).
func (b *Board) retoggleThroughSquare(sq Square) {
	for d := 0; d < 8; d++ {
		src, ok := b.nearestOccupant(sq, opposite(d))
		if !ok {
			continue
		}
		p := b.squares[src]
		switch p.Kind() {
		case KindRook:
			if isDiagonal(d) {
				continue
			}
		case KindBishop:
			if !isDiagonal(d) {
				continue
			}
		case KindQueen:
		default:
			continue
		}
		b.walkAndToggle(sq, d, p.Color())
	}
}

// toggleKingRing XORs color's king-hit bit on every square adjacent to sq.
func (b *Board) toggleKingRing(sq Square, color Color) {
	side := &b.sides[color]
	for d := 0; d < 8; d++ {
		if kingMask[sq]&(1<<uint(d)) == 0 {
			continue
		}
		df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
		to := Square((sq.File()+df)*8 + (sq.Rank() + dr))
		side.attacks[to] ^= attKing
	}
}

// addKnightRing adds one to (add) or subtracts one from (!add) color's knight
// count on every square a knight on sq attacks.
func (b *Board) addKnightRing(sq Square, color Color, add bool) {
	side := &b.sides[color]
	for j := 0; j < 8; j++ {
		if knightMask[sq]&(1<<uint(j)) == 0 {
			continue
		}
		df, dr := knightDelta[j][0], knightDelta[j][1]
		to := Square((sq.File()+df)*8 + (sq.Rank() + dr))
		if add {
			side.attacks[to] += attKnight
		} else {
			side.attacks[to] -= attKnight
		}
	}
}

// pawnForward is the rank step a pawn of color moves toward.
func pawnForward(color Color) int {
	if color == White {
		return 1
	}
	return -1
}

// togglePawnRing XORs color's pawn-capture bit on the (up to two) squares a
// pawn of that color on sq attacks.
func (b *Board) togglePawnRing(sq Square, color Color) {
	side := &b.sides[color]
	dr := pawnForward(color)
	f, r := sq.File(), sq.Rank()
	if inBounds(f-1, r+dr) {
		to := Square((f-1)*8 + r + dr)
		side.attacks[to] ^= attPawnW
	}
	if inBounds(f+1, r+dr) {
		to := Square((f+1)*8 + r + dr)
		side.attacks[to] ^= attPawnE
	}
}

// placePiece sets sq to p and updates both sides' attack tables: any ray
// currently passing through sq is retracted first (using the pre-placement,
// still-empty occupancy), then p's own contribution is added.
func (b *Board) placePiece(sq Square, p Piece) {
	b.retoggleThroughSquare(sq)
	b.squares[sq] = p
	switch {
	case p.IsSlider():
		b.toggleSliderRays(sq, p)
	case p.Kind() == KindKing:
		b.toggleKingRing(sq, p.Color())
	case p.Kind() == KindKnight:
		b.addKnightRing(sq, p.Color(), true)
	case p.Kind() == KindPawn:
		b.togglePawnRing(sq, p.Color())
	}
	if p.Kind() == KindBishop {
		b.sides[p.Color()].bishopDiagonals ^= bishopDiag[sq]
	}
}

// removePiece clears sq (which must be occupied) and updates both sides'
// attack tables: p's own contribution is retracted first, then any ray now
// passing through the freshly emptied sq is extended.
func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	switch {
	case p.IsSlider():
		b.toggleSliderRays(sq, p)
	case p.Kind() == KindKing:
		b.toggleKingRing(sq, p.Color())
	case p.Kind() == KindKnight:
		b.addKnightRing(sq, p.Color(), false)
	case p.Kind() == KindPawn:
		b.togglePawnRing(sq, p.Color())
	}
	if p.Kind() == KindBishop {
		b.sides[p.Color()].bishopDiagonals ^= bishopDiag[sq]
	}
	b.squares[sq] = Empty
	b.retoggleThroughSquare(sq)
	return p
}

// attackedBy reports whether color attacks sq at all (any bit set).
func (b *Board) attackedBy(sq Square, color Color) bool {
	return b.sides[color].attacks[sq] != 0
}
