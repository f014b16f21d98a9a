// see.go implements Static Exchange Evaluation: given a capture (or a
// quiet move landing a piece on a square other pieces attack), estimate the
// net material result of both sides recapturing with their cheapest piece
// until no one wants to continue (spec §4.5).
package corvus

import "math/bits"

// seeCacheEntry is one slot of the process-wide SEE memo (spec §4.5.4): a
// plain direct-mapped cache verified by the full 64-bit key, so a
// collision is just a cache miss, never a wrong answer.
type seeCacheEntry struct {
	key   uint64
	score int32
}

const seeCacheSize = 32768 // 2^15

var seeCache [seeCacheSize]seeCacheEntry

func seeCacheKey(b *Board, mover Piece, from, to Square) uint64 {
	return b.Hash() ^ pieceZobrist(mover, from) ^ pieceZobrist(mover, to)
}

var diagonalDirs = [4]int{1, 3, 5, 7}
var orthogonalDirs = [4]int{0, 2, 4, 6}

// pinnedCannotJoin reports whether the piece on sq (belonging to color) is
// absolutely pinned to its own king along a line that does not also pass
// through target — i.e. joining the exchange on target would be illegal.
// A pinned piece found this way is credited to extraDefenders rather than
// silently dropped, so a caller inspecting the scratch array after a SEE
// call can see which defenders were excluded and why (spec §4.5.2).
func (b *Board) pinnedCannotJoin(sq, target Square, color Color) bool {
	king := b.KingSquare(color)
	rayBits := sq2sq[king][sq] & 0xFF
	if rayBits == 0 {
		return false
	}
	d := bits.TrailingZeros8(uint8(rayBits))
	first, ok := b.nearestOccupant(king, d)
	if !ok || first != sq {
		return false // something else sits between the king and sq: sq isn't the pinned piece
	}
	pinner, ok := b.nearestOccupant(sq, d)
	if !ok {
		return false
	}
	p := b.squares[pinner]
	if p.Color() == color || !p.IsSlider() {
		return false
	}
	if isDiagonal(d) && p.Kind() == KindRook {
		return false
	}
	if !isDiagonal(d) && p.Kind() == KindBishop {
		return false
	}
	onPinLine := sq2sq[sq][target]&(1<<uint(d)|1<<uint(opposite(d))) != 0
	if onPinLine || target == king {
		return false
	}
	b.extraDefenders[sq]++
	return true
}

// leastValuableAttacker finds the cheapest piece of color that currently
// attacks target, honoring removed (squares already spent earlier in the
// same exchange, treated as transparent) and pins (a pinned piece still
// blocks the ray for others but cannot itself join).
func (b *Board) leastValuableAttacker(target Square, color Color, removed *[64]bool) (Square, Kind, bool) {
	f, r := target.File(), target.Rank()

	back := -pawnForward(color)
	for _, df := range [2]int{-1, 1} {
		if !inBounds(f+df, r+back) {
			continue
		}
		sq := Square((f + df) * 8 + r + back)
		if removed[sq] || b.squares[sq] == Empty {
			continue
		}
		p := b.squares[sq]
		if p.Color() == color && p.Kind() == KindPawn && !b.pinnedCannotJoin(sq, target, color) {
			return sq, KindPawn, true
		}
	}

	for j := 0; j < 8; j++ {
		if knightMask[target]&(1<<uint(j)) == 0 {
			continue
		}
		df, dr := knightDelta[j][0], knightDelta[j][1]
		sq := Square((f+df)*8 + r + dr)
		if removed[sq] || b.squares[sq] == Empty {
			continue
		}
		p := b.squares[sq]
		if p.Color() == color && p.Kind() == KindKnight && !b.pinnedCannotJoin(sq, target, color) {
			return sq, KindKnight, true
		}
	}

	diagSq, diagKind, diagFound := b.bestSliderInDirs(target, color, removed, diagonalDirs[:], KindBishop)
	if diagFound && diagKind == KindBishop {
		return diagSq, KindBishop, true
	}
	orthSq, orthKind, orthFound := b.bestSliderInDirs(target, color, removed, orthogonalDirs[:], KindRook)
	if orthFound && orthKind == KindRook {
		return orthSq, KindRook, true
	}
	if diagFound {
		return diagSq, KindQueen, true
	}
	if orthFound {
		return orthSq, KindQueen, true
	}

	for d := 0; d < 8; d++ {
		if kingMask[target]&(1<<uint(d)) == 0 {
			continue
		}
		df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
		sq := Square((f+df)*8 + r + dr)
		if removed[sq] || b.squares[sq] == Empty {
			continue
		}
		p := b.squares[sq]
		if p.Color() == color && p.Kind() == KindKing {
			return sq, KindKing, true
		}
	}

	return NoSquare, KindNone, false
}

// bestSliderInDirs walks each direction in dirs outward from target,
// skipping removed squares, and returns the cheapest (non-queen preferred
// over queen) slider of color found. Pinned sliders still block the ray
// but are never returned as a valid attacker.
func (b *Board) bestSliderInDirs(target Square, color Color, removed *[64]bool, dirs []int, nonQueenKind Kind) (sq Square, kind Kind, found bool) {
	queenSq := NoSquare
	for _, d := range dirs {
		cur := target
		for step := 0; step < rayLen[target][d]; step++ {
			df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
			cur = Square((cur.File()+df)*8 + (cur.Rank() + dr))
			if removed[cur] {
				continue
			}
			if b.squares[cur] == Empty {
				continue
			}
			p := b.squares[cur]
			if p.Color() == color && !b.pinnedCannotJoin(cur, target, color) {
				if p.Kind() == nonQueenKind {
					return cur, nonQueenKind, true
				}
				if p.Kind() == KindQueen && queenSq == NoSquare {
					queenSq = cur
				}
			}
			break
		}
	}
	if queenSq != NoSquare {
		return queenSq, KindQueen, true
	}
	return NoSquare, KindNone, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// isLastRankFor reports whether sq is the promotion rank for color, i.e. a
// pawn of color landing on sq is simultaneously promoting.
func isLastRankFor(sq Square, color Color) bool {
	if color == White {
		return sq.Rank() == 7
	}
	return sq.Rank() == 0
}

// seeValue runs the classic iterative swap algorithm on to, assuming the
// piece standing at from has just arrived there,
// capturing whatever occupied it. It does not verify that a recapturing
// king would itself be moving into check — a known, accepted
// approximation of the textbook algorithm (spec §4.5.3 design notes),
// "optimistic" in the sense that it can overstate how safe a king
// recapture really is.
func (b *Board) seeValue(from, to Square) int {
	var removed [64]bool
	mover := b.squares[from]
	var gains [32]int
	n := 0
	gains[n] = b.squares[to].Kind().value()
	n++
	removed[from] = true
	curKind := mover.Kind()
	side := mover.Color().Opposite()

	for n < len(gains) {
		sq, kind, found := b.leastValuableAttacker(to, side, &removed)
		if !found {
			break
		}
		gains[n] = curKind.value() - gains[n-1]
		// A pawn recapturing on its own last rank also promotes in the same
		// move: it both wins curKind's value and turns itself into a queen,
		// so the side doing the recapturing books an extra queen-minus-pawn
		// worth of gain, and the piece now standing on to is a queen for the
		// rest of the exchange, not a pawn (spec §4.5.3).
		promotes := kind == KindPawn && isLastRankFor(to, side)
		if promotes {
			gains[n] += KindQueen.value() - KindPawn.value()
			curKind = KindQueen
		} else {
			curKind = kind
		}
		removed[sq] = true
		side = side.Opposite()
		n++
	}

	for i := n - 1; i > 0; i-- {
		gains[i-1] = -maxInt(-gains[i-1], gains[i])
	}
	return gains[0]
}

// SEE returns the cached (or freshly computed) static exchange value of
// playing the capture/contested move from->to. Positive means the side
// initiating the exchange comes out ahead in material.
func (b *Board) SEE(from, to Square) int {
	mover := b.squares[from]
	key := seeCacheKey(b, mover, from, to)
	idx := key % seeCacheSize
	if seeCache[idx].key == key {
		return int(seeCache[idx].score)
	}
	v := b.seeValue(from, to)
	seeCache[idx] = seeCacheEntry{key, int32(v)}
	return v
}
