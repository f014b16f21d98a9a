// movegen.go generates fully legal moves directly (pin- and check-aware),
// rather than generating pseudo-legal moves and filtering afterward (spec
// §4.4). It is split into the four generation passes spec §4.4 names:
// escapes, captures-and-promotions, quiet moves, and quiet checks.
package corvus

import "math/bits"

// attacksSquareFrom reports whether a piece of kind/color sitting on from
// attacks target, given the board's current occupancy.
func (b *Board) attacksSquareFrom(from Square, kind Kind, color Color, target Square) bool {
	switch kind {
	case KindPawn:
		return target.Rank()-from.Rank() == pawnForward(color) && absInt(target.File()-from.File()) == 1
	case KindKnight:
		df, dr := absInt(target.File()-from.File()), absInt(target.Rank()-from.Rank())
		return (df == 1 && dr == 2) || (df == 2 && dr == 1)
	case KindKing:
		df, dr := absInt(target.File()-from.File()), absInt(target.Rank()-from.Rank())
		return df <= 1 && dr <= 1 && (df|dr) != 0
	case KindRook, KindBishop, KindQueen:
		rel := sq2sq[from][target] & 0xFF
		if rel == 0 {
			return false
		}
		d := bits.TrailingZeros8(uint8(rel))
		if kind == KindRook && isDiagonal(d) {
			return false
		}
		if kind == KindBishop && !isDiagonal(d) {
			return false
		}
		occ, ok := b.nearestOccupant(from, d)
		return ok && occ == target
	default:
		return false
	}
}

// isSquareAttackedIgnoring reports whether color attacks target, treating
// ignore as empty regardless of its real occupant — used to test king move
// destinations without the king's old square falsely blocking a slider's
// ray into that destination.
func (b *Board) isSquareAttackedIgnoring(target Square, color Color, ignore Square) bool {
	f, r := target.File(), target.Rank()
	back := -pawnForward(color)
	for _, df := range [2]int{-1, 1} {
		if inBounds(f+df, r+back) {
			sq := Square((f+df)*8 + r + back)
			if sq != ignore {
				if p := b.squares[sq]; p != Empty && p.Color() == color && p.Kind() == KindPawn {
					return true
				}
			}
		}
	}
	for j := 0; j < 8; j++ {
		if knightMask[target]&(1<<uint(j)) == 0 {
			continue
		}
		df, dr := knightDelta[j][0], knightDelta[j][1]
		sq := Square((f+df)*8 + r + dr)
		if sq != ignore {
			if p := b.squares[sq]; p != Empty && p.Color() == color && p.Kind() == KindKnight {
				return true
			}
		}
	}
	for d := 0; d < 8; d++ {
		cur := target
		for step := 0; step < rayLen[target][d]; step++ {
			df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
			cur = Square((cur.File()+df)*8 + (cur.Rank() + dr))
			if cur == ignore {
				continue
			}
			if b.squares[cur] == Empty {
				continue
			}
			p := b.squares[cur]
			if p.Color() == color {
				switch p.Kind() {
				case KindQueen:
					return true
				case KindRook:
					if !isDiagonal(d) {
						return true
					}
				case KindBishop:
					if isDiagonal(d) {
						return true
					}
				}
			}
			break
		}
	}
	for d := 0; d < 8; d++ {
		if kingMask[target]&(1<<uint(d)) == 0 {
			continue
		}
		df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
		sq := Square((f+df)*8 + r + dr)
		if sq != ignore {
			if p := b.squares[sq]; p != Empty && p.Color() == color && p.Kind() == KindKing {
				return true
			}
		}
	}
	return false
}

func (b *Board) isSquareAttacked(target Square, color Color) bool {
	return b.isSquareAttackedIgnoring(target, color, NoSquare)
}

// attackersOnto writes, into out, the squares of color's pieces that
// attack target, and returns how many were found (capped at len(out)).
func (b *Board) attackersOnto(target Square, color Color, out []Square) int {
	n := 0
	push := func(sq Square) {
		if n < len(out) {
			out[n] = sq
			n++
		}
	}
	f, r := target.File(), target.Rank()
	back := -pawnForward(color)
	for _, df := range [2]int{-1, 1} {
		if inBounds(f+df, r+back) {
			sq := Square((f+df)*8 + r + back)
			if p := b.squares[sq]; p != Empty && p.Color() == color && p.Kind() == KindPawn {
				push(sq)
			}
		}
	}
	for j := 0; j < 8; j++ {
		if knightMask[target]&(1<<uint(j)) == 0 {
			continue
		}
		df, dr := knightDelta[j][0], knightDelta[j][1]
		sq := Square((f+df)*8 + r + dr)
		if p := b.squares[sq]; p != Empty && p.Color() == color && p.Kind() == KindKnight {
			push(sq)
		}
	}
	for d := 0; d < 8; d++ {
		sq, ok := b.nearestOccupant(target, d)
		if !ok {
			continue
		}
		p := b.squares[sq]
		if p.Color() != color {
			continue
		}
		switch p.Kind() {
		case KindQueen:
			push(sq)
		case KindRook:
			if !isDiagonal(d) {
				push(sq)
			}
		case KindBishop:
			if isDiagonal(d) {
				push(sq)
			}
		}
	}
	for d := 0; d < 8; d++ {
		if kingMask[target]&(1<<uint(d)) == 0 {
			continue
		}
		df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
		sq := Square((f+df)*8 + r + dr)
		if p := b.squares[sq]; p != Empty && p.Color() == color && p.Kind() == KindKing {
			push(sq)
		}
	}
	return n
}

// computePins returns, for each of color's own squares, the ray-direction
// index it is pinned along, or -1 if unpinned.
func (b *Board) computePins(color Color) [64]int8 {
	var pinDir [64]int8
	for i := range pinDir {
		pinDir[i] = -1
	}
	king := b.KingSquare(color)
	for d := 0; d < 8; d++ {
		sq, ok := b.nearestOccupant(king, d)
		if !ok || b.squares[sq].Color() != color {
			continue
		}
		beyond, ok2 := b.nearestOccupant(sq, d)
		if !ok2 {
			continue
		}
		p := b.squares[beyond]
		if p.Color() == color || !p.IsSlider() {
			continue
		}
		if isDiagonal(d) && p.Kind() == KindRook {
			continue
		}
		if !isDiagonal(d) && p.Kind() == KindBishop {
			continue
		}
		pinDir[sq] = int8(d)
	}
	return pinDir
}

// computeDiscoverers returns, for each of color's own squares, the
// ray-direction index (viewed from the opposing king) along which that
// piece sits between a color slider and the opposing king — i.e. moving it
// off that ray unmasks a discovered check. This is computePins' mirror
// image: the nearest occupant and the slider behind it both belong to
// color, rather than to opposite colors.
func (b *Board) computeDiscoverers(color Color) [64]int8 {
	var dir [64]int8
	for i := range dir {
		dir[i] = -1
	}
	oppKing := b.KingSquare(color.Opposite())
	for d := 0; d < 8; d++ {
		sq, ok := b.nearestOccupant(oppKing, d)
		if !ok || b.squares[sq].Color() != color {
			continue
		}
		beyond, ok2 := b.nearestOccupant(sq, d)
		if !ok2 {
			continue
		}
		p := b.squares[beyond]
		if p.Color() != color || !p.IsSlider() {
			continue
		}
		if isDiagonal(d) && p.Kind() == KindRook {
			continue
		}
		if !isDiagonal(d) && p.Kind() == KindBishop {
			continue
		}
		dir[sq] = int8(d)
	}
	return dir
}

// staysOnPin reports whether moving a piece pinned along pinDir (-1 if
// unpinned) from from to to is still legal.
func staysOnPin(pinDir int8, from, to Square) bool {
	if pinDir < 0 {
		return true
	}
	d := int(pinDir)
	return sq2sq[from][to]&(1<<uint(d)|1<<uint(opposite(d))) != 0
}

// prescore packs a rough move-ordering hint: the high nibble flags captures
// that don't lose material and promotions as "good", losing captures as
// "bad", folded with the move's butterfly history score (spec §4.4.8).
func (b *Board) prescore(m Move, isCapture bool) uint16 {
	var base uint16
	switch {
	case isCapture:
		see := b.SEE(m.From(), m.To())
		if see >= 0 {
			base = 0xF000
		} else {
			base = 0x1000
		}
	case m.Kind() == MovePromotion:
		base = 0xE000
	}
	return base | (b.butterfly[m.code()] & 0x0FFF)
}

func (l *MoveList) emit(b *Board, m Move, isCapture bool) { l.push(m, b.prescore(m, isCapture)) }

// GenerateLegalMoves fills list with every legal move in the current
// position, dispatching to escapes or the quiet/capture passes depending
// on whether the side to move is in check.
func (b *Board) GenerateLegalMoves(list *MoveList) {
	list.reset()
	color := b.SideToMove()
	if b.InCheck(color) {
		b.generateEscapes(list, color)
		return
	}
	b.generateCapturesAndPromotions(list, color)
	b.generateQuietMoves(list, color)
}

// pieceMoveSquares returns, via push, every square a non-pawn, non-king
// piece on sq could move to ignoring pins and check (pure geometry).
func (b *Board) pieceMoveSquares(sq Square, p Piece, push func(Square, bool)) {
	switch p.Kind() {
	case KindKnight:
		for j := 0; j < 8; j++ {
			if knightMask[sq]&(1<<uint(j)) == 0 {
				continue
			}
			df, dr := knightDelta[j][0], knightDelta[j][1]
			to := Square((sq.File()+df)*8 + (sq.Rank() + dr))
			if occ := b.squares[to]; occ == Empty {
				push(to, false)
			} else if occ.Color() != p.Color() {
				push(to, true)
			}
		}
	case KindBishop, KindRook, KindQueen:
		for _, d := range sliderDirections(p.Kind()) {
			df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
			f, r := sq.File(), sq.Rank()
			for step := 0; step < rayLen[sq][d]; step++ {
				f += df
				r += dr
				to := Square(f*8 + r)
				if occ := b.squares[to]; occ == Empty {
					push(to, false)
				} else {
					if occ.Color() != p.Color() {
						push(to, true)
					}
					break
				}
			}
		}
	}
}

func (b *Board) generateCapturesAndPromotions(list *MoveList, color Color) {
	pins := b.computePins(color)
	side := &b.sides[color]

	for i := 0; i < side.nrPieces; i++ {
		sq := side.pieces[i]
		p := b.squares[sq]
		if p.Kind() == KindPawn {
			continue
		}
		b.pieceMoveSquares(sq, p, func(to Square, isCapture bool) {
			if isCapture && staysOnPin(pins[sq], sq, to) {
				list.emit(b, NewMove(sq, to, MoveNormal), true)
			}
		})
	}

	// king captures
	king := side.King()
	opp := color.Opposite()
	for d := 0; d < 8; d++ {
		if kingMask[king]&(1<<uint(d)) == 0 {
			continue
		}
		df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
		to := Square((king.File()+df)*8 + (king.Rank() + dr))
		if occ := b.squares[to]; occ != Empty && occ.Color() == opp && !b.isSquareAttackedIgnoring(to, opp, king) {
			list.emit(b, NewMove(king, to, MoveNormal), true)
		}
	}

	b.generatePawnMoves(list, color, pins, true)
}

func (b *Board) generateQuietMoves(list *MoveList, color Color) {
	pins := b.computePins(color)
	side := &b.sides[color]

	for i := 0; i < side.nrPieces; i++ {
		sq := side.pieces[i]
		p := b.squares[sq]
		if p.Kind() == KindPawn {
			continue
		}
		b.pieceMoveSquares(sq, p, func(to Square, isCapture bool) {
			if !isCapture && staysOnPin(pins[sq], sq, to) {
				list.emit(b, NewMove(sq, to, MoveNormal), false)
			}
		})
	}

	king := side.King()
	opp := color.Opposite()
	for d := 0; d < 8; d++ {
		if kingMask[king]&(1<<uint(d)) == 0 {
			continue
		}
		df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
		to := Square((king.File()+df)*8 + (king.Rank() + dr))
		if b.squares[to] == Empty && !b.isSquareAttackedIgnoring(to, opp, king) {
			list.emit(b, NewMove(king, to, MoveNormal), false)
		}
	}
	b.generateCastling(list, color)
	b.generatePawnMoves(list, color, pins, false)
}

func (b *Board) generateCastling(list *MoveList, color Color) {
	king := b.squares[b.KingSquare(color)]
	if !king.CanCastle() {
		return
	}
	opp := color.Opposite()
	kingSq := b.KingSquare(color)
	if b.isSquareAttacked(kingSq, opp) {
		return
	}
	type castleDef struct {
		rookSq, through, dest Square
		path                  []Square
	}
	var defs []castleDef
	if color == White {
		defs = []castleDef{
			{SH1, SF1, SG1, []Square{SF1, SG1}},
			{SA1, SD1, SC1, []Square{SD1, SC1, SB1}},
		}
	} else {
		defs = []castleDef{
			{SH8, SF8, SG8, []Square{SF8, SG8}},
			{SA8, SD8, SC8, []Square{SD8, SC8, SB8}},
		}
	}
	for _, d := range defs {
		rook := b.squares[d.rookSq]
		if !rook.CanCastle() || rook.Color() != color {
			continue
		}
		clear := true
		for _, sq := range d.path {
			if b.squares[sq] != Empty {
				clear = false
				break
			}
		}
		if !clear {
			continue
		}
		if b.isSquareAttacked(d.through, opp) || b.isSquareAttacked(d.dest, opp) {
			continue
		}
		list.emit(b, NewMove(kingSq, d.dest, MoveCastling), false)
	}
}

func (b *Board) generatePawnMoves(list *MoveList, color Color, pins [64]int8, captures bool) {
	side := &b.sides[color]
	fwd := pawnForward(color)
	promoRank := 7
	if color == Black {
		promoRank = 0
	}
	for i := 0; i < side.nrPieces; i++ {
		sq := side.pieces[i]
		p := b.squares[sq]
		if p.Kind() != KindPawn {
			continue
		}
		f, r := sq.File(), sq.Rank()

		emitPawn := func(to Square, isCapture bool) {
			if !staysOnPin(pins[sq], sq, to) {
				return
			}
			if to.Rank() == promoRank {
				for _, promo := range [4]PromoKind{PromoQueen, PromoRook, PromoBishop, PromoKnight} {
					list.emit(b, NewPromotionMove(sq, to, promo), isCapture)
				}
				return
			}
			list.emit(b, NewMove(sq, to, MoveNormal), isCapture)
		}

		if captures {
			for _, df := range [2]int{-1, 1} {
				if !inBounds(f+df, r+fwd) {
					continue
				}
				to := Square((f+df)*8 + r + fwd)
				if occ := b.squares[to]; occ != Empty && occ.Color() != color {
					emitPawn(to, true)
				}
			}
			if ep := b.EnPassant(); ep != NoSquare && absInt(ep.File()-f) == 1 && ep.Rank()-r == fwd {
				b.maybeEmitEnPassant(list, color, sq, ep, pins)
			}
			// non-capturing promotions belong to this pass, not the quiet one
			if r+fwd == promoRank {
				if one := Square(f*8 + r + fwd); b.squares[one] == Empty {
					emitPawn(one, false)
				}
			}
			continue
		}

		if inBounds(f, r+fwd) && r+fwd != promoRank {
			one := Square(f*8 + r + fwd)
			if b.squares[one] == Empty {
				emitPawn(one, false)
				startRank := 1
				if color == Black {
					startRank = 6
				}
				if r == startRank && inBounds(f, r+2*fwd) {
					two := Square(f*8 + r + 2*fwd)
					if b.squares[two] == Empty {
						emitPawn(two, false)
					}
				}
			}
		}
	}
}

// enPassantExposesKing reports whether removing both the capturing pawn
// (from) and the captured pawn (capturedSq) from the board — which an en
// passant capture does simultaneously — would expose color's king to a
// rook or queen along the shared rank. This is the classic "horizontally
// pinned pair" edge case that an ordinary per-piece pin check misses, since
// neither pawn alone is pinned (spec §4.4.6).
func (b *Board) enPassantExposesKing(color Color, from, capturedSq Square) bool {
	king := b.KingSquare(color)
	if king.Rank() != from.Rank() {
		return false
	}
	for _, d := range [2]int{2, 6} { // east, west
		f, r := king.File(), king.Rank()
		df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
		for step := 0; step < rayLen[king][d]; step++ {
			f += df
			r += dr
			cur := Square(f*8 + r)
			if cur == from || cur == capturedSq {
				continue
			}
			p := b.squares[cur]
			if p == Empty {
				continue
			}
			if p.Color() != color && (p.Kind() == KindRook || p.Kind() == KindQueen) {
				return true
			}
			break
		}
	}
	return false
}

// maybeEmitEnPassant emits the en-passant capture from->to unless it is
// illegal: the capturing pawn is ordinarily pinned, or the capture exposes
// the king per enPassantExposesKing.
func (b *Board) maybeEmitEnPassant(list *MoveList, color Color, from, to Square, pins [64]int8) {
	if !staysOnPin(pins[from], from, to) {
		return
	}
	capturedSq := Square(to.File()*8 + from.Rank())
	if b.enPassantExposesKing(color, from, capturedSq) {
		return
	}
	list.push(NewMove(from, to, MoveEnPassant), b.prescore(NewMove(from, to, MoveEnPassant), true))
}

func (b *Board) generateEscapes(list *MoveList, color Color) {
	king := b.KingSquare(color)
	opp := color.Opposite()
	var checkers [8]Square
	n := b.attackersOnto(king, opp, checkers[:])

	// king moves to safety, including captures of a checker
	for d := 0; d < 8; d++ {
		if kingMask[king]&(1<<uint(d)) == 0 {
			continue
		}
		df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
		to := Square((king.File()+df)*8 + (king.Rank() + dr))
		occ := b.squares[to]
		if occ != Empty && occ.Color() == color {
			continue
		}
		if b.isSquareAttackedIgnoring(to, opp, king) {
			continue
		}
		list.emit(b, NewMove(king, to, MoveNormal), occ != Empty)
	}

	if n >= 2 {
		return // double check: only king moves are legal
	}
	if n == 0 {
		return // GenerateLegalMoves only calls this when in check
	}

	checker := checkers[0]
	pins := b.computePins(color)

	// squares that block or capture the single checker
	var targetSquares []Square
	targetSquares = append(targetSquares, checker)
	if b.squares[checker].IsSlider() {
		rel := sq2sq[king][checker] & 0xFF
		if rel != 0 {
			d := bits.TrailingZeros8(uint8(rel))
			cur := king
			for {
				df, dr := dirFileRankDelta[d][0], dirFileRankDelta[d][1]
				cur = Square((cur.File()+df)*8 + (cur.Rank() + dr))
				if cur == checker {
					break
				}
				targetSquares = append(targetSquares, cur)
			}
		}
	}

	side := &b.sides[color]
	for i := 0; i < side.nrPieces; i++ {
		sq := side.pieces[i]
		if sq == king {
			continue
		}
		p := b.squares[sq]
		if p.Kind() == KindPawn {
			b.generatePawnEscapes(list, color, sq, targetSquares, pins)
			continue
		}
		b.pieceMoveSquares(sq, p, func(to Square, isCapture bool) {
			if !staysOnPin(pins[sq], sq, to) {
				return
			}
			for _, t := range targetSquares {
				if t == to {
					list.emit(b, NewMove(sq, to, MoveNormal), isCapture)
					return
				}
			}
		})
	}
}

func (b *Board) generatePawnEscapes(list *MoveList, color Color, sq Square, targets []Square, pins [64]int8) {
	fwd := pawnForward(color)
	f, r := sq.File(), sq.Rank()
	promoRank := 7
	if color == Black {
		promoRank = 0
	}
	contains := func(sq Square) bool {
		for _, t := range targets {
			if t == sq {
				return true
			}
		}
		return false
	}
	emit := func(to Square, isCapture bool) {
		if !staysOnPin(pins[sq], sq, to) {
			return
		}
		if to.Rank() == promoRank {
			for _, promo := range [4]PromoKind{PromoQueen, PromoRook, PromoBishop, PromoKnight} {
				list.emit(b, NewPromotionMove(sq, to, promo), isCapture)
			}
			return
		}
		list.emit(b, NewMove(sq, to, MoveNormal), isCapture)
	}
	if inBounds(f, r+fwd) {
		one := Square(f*8 + r + fwd)
		if b.squares[one] == Empty && contains(one) {
			emit(one, false)
		}
		startRank := 1
		if color == Black {
			startRank = 6
		}
		if b.squares[one] == Empty && r == startRank && inBounds(f, r+2*fwd) {
			two := Square(f*8 + r + 2*fwd)
			if b.squares[two] == Empty && contains(two) {
				emit(two, false)
			}
		}
	}
	for _, df := range [2]int{-1, 1} {
		if !inBounds(f+df, r+fwd) {
			continue
		}
		to := Square((f+df)*8 + r + fwd)
		if occ := b.squares[to]; occ != Empty && occ.Color() != color && contains(to) {
			emit(to, true)
		}
	}
	if ep := b.EnPassant(); ep != NoSquare && absInt(ep.File()-f) == 1 && ep.Rank()-r == fwd {
		capturedSq := Square(ep.File()*8 + r)
		if contains(capturedSq) {
			b.maybeEmitEnPassant(list, color, sq, ep, pins)
		}
	}
}

// GenerateQuietChecks empties list and fills it with quiet (non-capture,
// non-promotion) moves that give check — either directly (the moved piece attacks the
// enemy king from its destination) or by discovery (the move unmasks a
// friendly slider's attack on the enemy king). Used by quiescence search to
// extend otherwise-terminal nodes (spec §4.4.7). Occupancy used to test the
// destination's own attack is the pre-move board, a documented
// approximation that can miss the rare case where the mover's own vacated
// origin square would have blocked that same line.
func (b *Board) GenerateQuietChecks(list *MoveList) {
	list.reset()
	color := b.SideToMove()
	if b.InCheck(color) {
		return
	}
	opp := color.Opposite()
	oppKing := b.KingSquare(opp)
	discovery := b.computeDiscoverers(color)
	pins := b.computePins(color)
	side := &b.sides[color]

	for i := 0; i < side.nrPieces; i++ {
		sq := side.pieces[i]
		p := b.squares[sq]
		if p.Kind() == KindKing {
			continue
		}
		isDiscoverer := discovery[sq] >= 0
		if p.Kind() == KindPawn {
			b.pawnQuietChecks(list, color, sq, oppKing, pins, isDiscoverer, discovery[sq])
			continue
		}
		b.pieceMoveSquares(sq, p, func(to Square, isCapture bool) {
			if isCapture || !staysOnPin(pins[sq], sq, to) {
				return
			}
			gives := b.attacksSquareFrom(to, p.Kind(), color, oppKing)
			if !gives && isDiscoverer && !staysOnPin(discovery[sq], sq, to) {
				gives = true
			}
			if gives {
				list.emit(b, NewMove(sq, to, MoveNormal), false)
			}
		})
	}
}

func (b *Board) pawnQuietChecks(list *MoveList, color Color, sq, oppKing Square, pins [64]int8, isDiscoverer bool, discDir int8) {
	fwd := pawnForward(color)
	f, r := sq.File(), sq.Rank()
	try := func(to Square) {
		if !staysOnPin(pins[sq], sq, to) {
			return
		}
		gives := b.attacksSquareFrom(to, KindPawn, color, oppKing)
		if !gives && isDiscoverer && !staysOnPin(discDir, sq, to) {
			gives = true
		}
		if gives && to.Rank() != 0 && to.Rank() != 7 {
			list.emit(b, NewMove(sq, to, MoveNormal), false)
		}
	}
	if inBounds(f, r+fwd) {
		one := Square(f*8 + r + fwd)
		if b.squares[one] == Empty {
			try(one)
			startRank := 1
			if color == Black {
				startRank = 6
			}
			if r == startRank && inBounds(f, r+2*fwd) {
				two := Square(f*8 + r + 2*fwd)
				if b.squares[two] == Empty {
					try(two)
				}
			}
		}
	}
}
