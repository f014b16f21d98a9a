// board.go is the reversible position: a fixed-depth make/undo stack over
// the square array, per-side attack tables and piece lists, and the
// incrementally maintained hash/material keys (spec §3, §3.4).
package corvus

// maxPly bounds how many plies a single game can push onto the frame
// stack; two extra sentinel frames below index 0 of play give repetition
// and halfmove-clock scans room to look backward without bounds checks.
const maxPly = 256
const stackSize = maxPly + 2

// Board is a complete, reversible chess position.
type Board struct {
	squares [64]Piece
	sides   [2]Side

	frames  [stackSize]frame
	current int

	// butterfly is the [from*64+to]-indexed move-ordering history table
	// (spec §4.4.8); the core only reads it into prescores and zeroes it on
	// Reset, never interprets it.
	butterfly [4096]uint16

	// extraDefenders is SEE scratch space: each time a pinned piece is kept
	// out of an exchange, the counter at that pinned piece's own square is
	// incremented (spec §4.5.2).
	extraDefenders [64]uint8
}

// NewBoard returns an empty, reset board (no pieces placed).
func NewBoard() *Board {
	b := &Board{}
	b.Reset()
	return b
}

// Reset clears the board to an empty position with fresh sentinel frames.
func (b *Board) Reset() {
	for sq := range b.squares {
		b.squares[sq] = Empty
	}
	b.sides[White].reset(White)
	b.sides[Black].reset(Black)
	for i := range b.frames {
		b.frames[i] = frame{}
	}
	for i := range b.butterfly {
		b.butterfly[i] = 0
	}
	b.current = 2
	f := b.f()
	*f = frame{active: White, passive: Black, enPassantLazy: NoSquare}
}

// f returns the current frame.
func (b *Board) f() *frame { return &b.frames[b.current] }

// SideToMove returns the side on move in the current position.
func (b *Board) SideToMove() Color { return b.f().active }

// Halfmove returns the halfmove (fifty-move-rule) clock.
func (b *Board) Halfmove() int { return b.f().halfmoveClock }

// Ply returns the number of plies played since Setup/Reset.
func (b *Board) Ply() int { return b.current - 2 }

// EnPassant returns the currently available en-passant capture square, or
// NoSquare.
func (b *Board) EnPassant() Square { return b.f().enPassantTarget() }

// Hash returns the Zobrist hash used for repetition detection.
func (b *Board) Hash() uint64 { return b.f().boardHashLazy }

// PawnKingHash returns the pawn/king/castling-rook-only hash.
func (b *Board) PawnKingHash() uint64 { return b.f().pawnKingHash }

// MaterialKey returns the packed material signature.
func (b *Board) MaterialKey() uint64 { return b.f().materialKey }

// At returns the piece occupying sq.
func (b *Board) At(sq Square) Piece { return b.squares[sq] }

// KingSquare returns color's king square.
func (b *Board) KingSquare(color Color) Square { return b.sides[color].King() }

// InCheck reports whether color's king is currently attacked.
func (b *Board) InCheck(color Color) bool {
	return b.attackedBy(b.KingSquare(color), color.Opposite())
}

// pawnKingHashed reports whether p contributes to the pawn/king hash: pawns,
// kings, and castling-capable rooks (spec §3.4).
func pawnKingHashed(p Piece) bool {
	return p.Kind() == KindPawn || p.Kind() == KindKing || p.CanCastle()
}

// rawPlace puts p on sq (which must be empty) and updates attacks, the
// piece list, and both hashes/material, with no undo journal entry.
func (b *Board) rawPlace(sq Square, p Piece) {
	b.placePiece(sq, p)
	side := &b.sides[p.Color()]
	if p.Kind() == KindKing {
		side.setKing(sq)
	} else {
		side.addPiece(sq, p.Kind() == KindKnight)
	}
	f := b.f()
	f.boardHashLazy ^= pieceZobrist(p, sq)
	if pawnKingHashed(p) {
		f.pawnKingHash ^= pieceZobrist(p, sq)
	}
	f.materialKey += materialAdd(p)
}

// rawRemove clears sq (which must be occupied) and returns the piece that
// was there, with no undo journal entry. The king is never removed from its
// side's piece list (slot 0 is reserved for it even mid-operation).
func (b *Board) rawRemove(sq Square) Piece {
	p := b.removePiece(sq)
	if p.Kind() != KindKing {
		b.sides[p.Color()].removePiece(sq)
	}
	f := b.f()
	f.boardHashLazy ^= pieceZobrist(p, sq)
	if pawnKingHashed(p) {
		f.pawnKingHash ^= pieceZobrist(p, sq)
	}
	f.materialKey -= materialAdd(p)
	return p
}

// rawRelocate moves the piece on from (which must be occupied) to to (which
// must be empty) with no undo journal entry, and returns the piece moved.
func (b *Board) rawRelocate(from, to Square) Piece {
	p := b.squares[from]
	b.removePiece(from)
	b.placePiece(to, p)
	b.sides[p.Color()].relocate(from, to)
	f := b.f()
	delta := pieceZobrist(p, from) ^ pieceZobrist(p, to)
	f.boardHashLazy ^= delta
	if pawnKingHashed(p) {
		f.pawnKingHash ^= delta
	}
	return p
}

// doPlace is rawPlace plus an undo journal entry; used by makers.go.
func (b *Board) doPlace(sq Square, p Piece) {
	b.rawPlace(sq, p)
	b.f().pushUndo(undoPlaced, sq, NoSquare, Empty)
}

// doRemove is rawRemove plus an undo journal entry; used by makers.go.
func (b *Board) doRemove(sq Square) Piece {
	p := b.rawRemove(sq)
	b.f().pushUndo(undoRemoved, sq, NoSquare, p)
	return p
}

// doRelocate is rawRelocate plus an undo journal entry; used by makers.go.
func (b *Board) doRelocate(from, to Square) Piece {
	p := b.rawRelocate(from, to)
	b.f().pushUndo(undoRelocated, from, to, p)
	return p
}

// Setup installs a complete position: placements maps each occupied square
// to its piece tag (castling-capable rooks/king must already carry the
// *Castle tag, pawns the *Start/*Penult tag where applicable — fen.go is
// responsible for resolving those from raw FEN text). Setup does not itself
// validate chess legality; ParseFEN in fen.go runs validatePlacements before
// calling it and validateSetup after, before accepting the position.
func (b *Board) Setup(placements map[Square]Piece, sideToMove Color, epSquare Square, halfmove int) {
	b.Reset()
	for sq, p := range placements {
		b.rawPlace(sq, p)
	}
	f := b.f()
	f.halfmoveClock = halfmove
	if epSquare != NoSquare {
		f.setEnPassant(epSquare)
	}
	if sideToMove == Black {
		f.boardHashLazy = ^f.boardHashLazy
		f.active, f.passive = Black, White
	}
}

// Make applies m, pushing a new frame. Panics (an internal assertion, not a
// user-facing error) if m leaves the moving side's own king in check — the
// move generator in movegen.go never offers such a move, so this indicates
// a caller pushing a move it did not get from Generate*.
func (b *Board) Make(m Move) {
	prev := b.f()
	mover := prev.active
	b.current++
	assertf(b.current < stackSize, "Make: frame stack overflow")
	*b.f() = frame{
		move:          m,
		active:        prev.passive,
		passive:       prev.active,
		nodeCounter:   prev.nodeCounter + 1,
		boardHashLazy: prev.boardHashLazy,
		pawnKingHash:  prev.pawnKingHash,
		materialKey:   prev.materialKey,
		halfmoveClock: prev.halfmoveClock + 1,
		enPassantLazy: NoSquare,
	}
	applyMove(b, m)
	f := b.f()
	f.boardHashLazy = ^f.boardHashLazy
	assertf(!b.InCheck(mover), "Make: own king left in check")
}

// Undo reverses the most recently made move.
func (b *Board) Undo() {
	f := b.f()
	for i := f.nUndo - 1; i >= 0; i-- {
		e := f.undo[i]
		switch e.kind {
		case undoPlaced:
			b.rawRemove(e.sq)
		case undoRemoved:
			b.rawPlace(e.sq, e.piece)
		case undoRelocated:
			b.rawRelocate(e.sq2, e.sq)
		}
	}
	b.current--
}

// NullMove passes the move without changing the board, for search's
// null-move pruning. UndoNullMove reverses it.
func (b *Board) NullMove() {
	prev := b.f()
	b.current++
	assertf(b.current < stackSize, "NullMove: frame stack overflow")
	*b.f() = frame{
		move:          NullMove,
		active:        prev.passive,
		passive:       prev.active,
		nodeCounter:   prev.nodeCounter + 1,
		boardHashLazy: ^prev.boardHashLazy,
		pawnKingHash:  prev.pawnKingHash,
		materialKey:   prev.materialKey,
		// Fixed at 1, not prev+1: a null move is reversible for exactly one
		// ply, so repetition detection cannot walk its window back across it.
		halfmoveClock: 1,
		enPassantLazy: NoSquare,
	}
}

// UndoNullMove reverses NullMove.
func (b *Board) UndoNullMove() { b.current-- }
