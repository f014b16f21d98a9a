// frame.go is the per-ply state pushed and popped by Board.Make/Undo
// (spec §3.4). Castling rights are never stored separately: they live
// entirely in the WKingCastle/WRookCastle-style piece tags (spec §3.1), so
// undoing a move that changes them is just restoring the previous tag like
// any other square write.
package corvus

// maxUndoEntries bounds a single ply's square-restore journal. The worst
// case is a capturing king move made while both of that side's rooks still
// carry their castling tag: the capture (1) plus the king's own remove
// -and-place (2) plus a surviving-rights retag for each rook (2 apiece) adds
// up to 7; 8 leaves a spare slot rather than fitting exactly.
const maxUndoEntries = 8

// undoKind identifies which raw operation produced an undoEntry, so Undo
// can replay its exact inverse.
type undoKind uint8

const (
	undoPlaced undoKind = iota // sq was empty, now holds piece: undo by removing it
	undoRemoved                // sq held piece, now empty: undo by placing it back
	undoRelocated              // piece moved sq->sq2: undo by moving it sq2->sq
)

// undoEntry records one raw board mutation so Undo can invert it.
type undoEntry struct {
	kind    undoKind
	sq, sq2 Square
	piece   Piece
}

// frame is one level of the make/undo stack.
type frame struct {
	move Move // the move that produced this frame (NullMove for the root)

	active, passive Color

	nodeCounter int // monotonic ply index, never reset across Make calls

	boardHashLazy uint64 // Zobrist hash, excludes en passant, flips side-to-move by construction
	pawnKingHash  uint64 // pawns, kings, and castling-capable rooks only
	materialKey   uint64 // twelve 4-bit counters (low 48 bits) + 16-bit epsilon hash (high bits)

	halfmoveClock int

	// En passant is recorded lazily: enPassantLazy is only meaningful when
	// enPassantStamp equals this frame's own nodeCounter, since frame slots
	// are reused across plies and a stale square from an old occupant of
	// this slot must not be mistaken for a live one.
	enPassantLazy  Square
	enPassantStamp int

	undo  [maxUndoEntries]undoEntry
	nUndo int

	// killerMoves are opaque search-hint slots the core never interprets;
	// they ride along on the frame purely so a caller's search layer can
	// stash and retrieve them without its own parallel stack.
	killerMoves [6]Move
}

// pushUndo appends a raw-operation record. Panics if the journal overflows
// — that would mean a maker routine is wrong, not that a legal move needs
// more bookkeeping than the format allows.
func (f *frame) pushUndo(kind undoKind, sq, sq2 Square, piece Piece) {
	assertf(f.nUndo < maxUndoEntries, "pushUndo: journal overflow")
	f.undo[f.nUndo] = undoEntry{kind, sq, sq2, piece}
	f.nUndo++
}

// enPassantTarget returns the live en-passant capture square for this
// frame, or NoSquare if none is currently available.
func (f *frame) enPassantTarget() Square {
	if f.enPassantStamp != f.nodeCounter {
		return NoSquare
	}
	return f.enPassantLazy
}

// setEnPassant marks target as capturable by the side to move in the very
// next ply.
func (f *frame) setEnPassant(target Square) {
	f.enPassantLazy = target
	f.enPassantStamp = f.nodeCounter
}
