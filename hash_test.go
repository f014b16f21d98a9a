package corvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHashMatchesFromScratchSetup checks that the incrementally maintained
// hash after a sequence of moves equals the hash a fresh ParseFEN of the
// resulting FEN computes from scratch, both before and after castling
// rights have changed.
func TestHashMatchesFromScratchSetup(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	b.Make(NewMove(squareOf(t, "e1"), squareOf(t, "e2"), MoveNormal))

	fresh, err := ParseFEN(b.FEN())
	require.NoError(t, err)
	assert.Equal(t, fresh.Hash(), b.Hash())
	assert.Equal(t, fresh.PawnKingHash(), b.PawnKingHash())
	assert.Equal(t, fresh.MaterialKey(), b.MaterialKey())
}

// TestKingMoveChangesHashEvenWithoutCapture checks that losing castling
// rights is visible in the hash, not just in the FEN's castling field: a
// king move (dropping all of that side's rights) must change board_hash_lazy
// even though the only squares touched are the king's own from/to squares.
func TestKingMoveChangesHashEvenWithoutCapture(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := b.Hash()

	b.Make(NewMove(squareOf(t, "e1"), squareOf(t, "e2"), MoveNormal))
	assert.NotEqual(t, before, b.Hash())
}

// TestKingReturningHomeWithoutRightsHashesDifferentlyThanNeverMoved confirms
// the case the rook-alias zobrist scheme exists to cover: a king that moved
// away and came back to its original square, having shed all castling
// rights along the way, must not hash the same as a king that never moved
// and still holds them — even though both end with the king on the same
// square in an otherwise identical position.
func TestKingReturningHomeWithoutRightsHashesDifferentlyThanNeverMoved(t *testing.T) {
	neverMoved, err := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)

	b, err := ParseFEN("4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1")
	require.NoError(t, err)
	b.Make(NewMove(squareOf(t, "e1"), squareOf(t, "e2"), MoveNormal))
	b.Make(NewMove(squareOf(t, "e8"), squareOf(t, "d8"), MoveNormal))
	b.Make(NewMove(squareOf(t, "e2"), squareOf(t, "e1"), MoveNormal))
	b.Make(NewMove(squareOf(t, "d8"), squareOf(t, "e8"), MoveNormal))

	assert.Equal(t, "4k3/8/8/8/8/8/8/R3K2R w - - 4 3", b.FEN())
	assert.NotEqual(t, neverMoved.Hash(), b.Hash())

	fresh, err := ParseFEN(b.FEN())
	require.NoError(t, err)
	assert.Equal(t, fresh.Hash(), b.Hash())
}

// TestCastlingDropsOtherCornerRookHash confirms that castling one way also
// strips the castling tag from the *other* corner rook, which never moved:
// the king could never have castled at all if it had moved, so both rights
// are gone the instant it does. A fresh ParseFEN of the post-castling FEN
// must hash identically, since FEN() only ever emits rights that still
// exist.
func TestCastlingDropsOtherCornerRookHash(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	b.Make(NewMove(squareOf(t, "e1"), squareOf(t, "g1"), MoveCastling))
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1", b.FEN())

	fresh, err := ParseFEN(b.FEN())
	require.NoError(t, err)
	assert.Equal(t, fresh.Hash(), b.Hash())
	assert.Equal(t, fresh.PawnKingHash(), b.PawnKingHash())
}

// TestNonCastlingRookMoveDropsOnlyThatRookHash confirms a rook move changes
// the hash by more than its own relocation once it sheds the castling tag:
// the from-square XOR uses the pawn-aliased key but the to-square XOR uses
// the plain rook key, so the net delta is not simply "rook moved".
func TestNonCastlingRookMoveDropsOnlyThatRookHash(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	before := b.Hash()

	b.Make(NewMove(squareOf(t, "a1"), squareOf(t, "b1"), MoveNormal))
	after := b.Hash()
	assert.NotEqual(t, before, after)

	fresh, err := ParseFEN(b.FEN())
	require.NoError(t, err)
	assert.Equal(t, fresh.Hash(), after)
}
