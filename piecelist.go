// piecelist.go maintains the per-side piece-square list invariant: index 0
// is always the king, and knights always occupy a contiguous run starting
// at index 1 (spec §3.2). Keeping knights contiguous lets the rest of the
// engine iterate "this side's knights" as a plain slice bound instead of a
// filtered scan.
package corvus

// indexOf finds sq's slot in the piece list. Panics if sq is not present —
// callers always know the piece is there (a prior board-array lookup
// already confirmed occupancy).
func (s *Side) indexOf(sq Square) int {
	for i := 0; i < s.nrPieces; i++ {
		if s.pieces[i] == sq {
			return i
		}
	}
	panic(&internalError{"indexOf: square not present in piece list"})
}

// setKing places the king at sq. Only called during Setup/Reset and when
// making a king move; unlike other pieces the king's slot (index 0) never
// moves within the array.
func (s *Side) setKing(sq Square) { s.pieces[0] = sq }

// relocate moves the piece at from to to without changing list membership
// or the knight-contiguity invariant (the slot index is unchanged).
func (s *Side) relocate(from, to Square) {
	if from == s.pieces[0] {
		s.pieces[0] = to
		return
	}
	s.pieces[s.indexOf(from)] = to
}

// addPiece inserts sq as a new piece of this side. isKnight pieces are
// inserted at the end of the knight run, displacing whatever non-knight
// piece currently sits there to the back of the array.
func (s *Side) addPiece(sq Square, isKnight bool) {
	if isKnight {
		insertAt := s.nrKnights + 1
		if insertAt != s.nrPieces {
			s.pieces[s.nrPieces] = s.pieces[insertAt]
		}
		s.pieces[insertAt] = sq
		s.nrKnights++
		s.nrPieces++
		return
	}
	s.pieces[s.nrPieces] = sq
	s.nrPieces++
}

// removePiece deletes sq from the list (a capture, or a pawn vanishing
// under promotion-in-place). If sq is a knight, the last contiguous knight
// slot is freed first so the knight run never develops a hole; either way
// the final hole is filled from the last live slot, an O(1) swap-remove.
func (s *Side) removePiece(sq Square) {
	idx := s.indexOf(sq)
	if idx >= 1 && idx <= s.nrKnights {
		last := s.nrKnights
		s.pieces[idx] = s.pieces[last]
		idx = last
		s.nrKnights--
	}
	s.nrPieces--
	s.pieces[idx] = s.pieces[s.nrPieces]
	s.pieces[s.nrPieces] = NoSquare
}

// knights returns this side's knight squares as a slice view into pieces.
func (s *Side) knights() []Square { return s.pieces[1 : s.nrKnights+1] }

// nonKingNonKnights returns the remaining (queen/rook/bishop/pawn) squares.
func (s *Side) nonKingNonKnights() []Square { return s.pieces[s.nrKnights+1 : s.nrPieces] }
