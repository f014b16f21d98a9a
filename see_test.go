package corvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSEEWinningCapture(t *testing.T) {
	// White pawn takes a black knight defended by a black pawn: white nets
	// the knight minus the pawn it loses in the recapture.
	b, err := ParseFEN("4k3/8/2p5/3n4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	got := b.SEE(squareOf(t, "e4"), squareOf(t, "d5"))
	assert.Equal(t, KindKnight.value()-KindPawn.value(), got)
}

func TestSEELosingCapture(t *testing.T) {
	// White queen takes a pawn defended by a rook behind it on the same
	// file: white loses the queen for a pawn.
	b, err := ParseFEN("3r3k/8/8/3p4/8/8/8/3QK3 w - - 0 1")
	require.NoError(t, err)
	got := b.SEE(squareOf(t, "d1"), squareOf(t, "d5"))
	assert.Negative(t, got)
}

func TestSEEUndefendedCapture(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1")
	require.NoError(t, err)
	got := b.SEE(squareOf(t, "d1"), squareOf(t, "d5"))
	assert.Equal(t, KindPawn.value(), got)
}

func TestSEECacheIsConsistentAcrossCalls(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/3n4/4P3/8/8/4K3 w - - 0 1")
	require.NoError(t, err)
	from, to := squareOf(t, "e4"), squareOf(t, "d5")

	first := b.SEE(from, to)
	second := b.SEE(from, to)
	assert.Equal(t, first, second)
}

func TestSEERecaptureThatPromotesAddsQueenValue(t *testing.T) {
	// Black rook takes a white rook on c8 (an even rook-for-rook trade), but
	// the only recapture is a white pawn on b7 capturing onto c8 — its own
	// last rank — so the recapture also promotes. The exchange should come
	// out a full queen-minus-pawn worse for black than a plain even trade.
	b, err := ParseFEN("2R3k1/1P6/8/8/2r5/8/8/4K3 b - - 0 1")
	require.NoError(t, err)
	got := b.SEE(squareOf(t, "c4"), squareOf(t, "c8"))
	assert.Equal(t, -(KindQueen.value() - KindPawn.value()), got)
}

func TestSEEPinnedDefenderExcluded(t *testing.T) {
	// The black knight on d5 is pinned to the black king on g8 along the
	// b3-g8 diagonal by the white bishop, so it has no legal moves at all and
	// cannot recapture on e3 when the white queen takes the pawn there.
	b, err := ParseFEN("6k1/8/8/3n4/8/1B2p3/4Q3/4K3 b - - 0 1")
	require.NoError(t, err)
	// sanity check the pin is real: with black to move, the knight has no
	// legal moves off the diagonal
	var list MoveList
	b.GenerateLegalMoves(&list)
	for i := 0; i < list.Len(); i++ {
		assert.NotEqual(t, squareOf(t, "d5"), list.At(i).From())
	}
	// the pinned knight is left out of the exchange, so Qxe3 wins the pawn
	got := b.SEE(squareOf(t, "e2"), squareOf(t, "e3"))
	assert.Equal(t, KindPawn.value(), got)
}
