package corvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKingMoveLosesBothCastlingRights(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	b.Make(NewMove(squareOf(t, "e1"), squareOf(t, "e2"), MoveNormal))
	assert.Equal(t, "r3k2r/8/8/8/8/8/4K3/R6R b kq - 1 1", b.FEN())
}

func TestRookMoveLosesOnlyItsOwnCastlingRight(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	b.Make(NewMove(squareOf(t, "a1"), squareOf(t, "b1"), MoveNormal))
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/1R2K2R b Kkq - 1 1", b.FEN())
}

func TestCapturingRookRemovesItsCastlingRight(t *testing.T) {
	b, err := ParseFEN("r3k2r/8/8/8/7R/8/8/4K3 w kq - 0 1")
	require.NoError(t, err)

	b.Make(NewMove(squareOf(t, "h4"), squareOf(t, "h8"), MoveNormal))
	assert.Equal(t, "r3k2R/8/8/8/8/8/8/4K3 b q - 0 1", b.FEN())
}

func TestPawnPenultTagEnablesPromotionDetection(t *testing.T) {
	b, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	var list MoveList
	b.GenerateLegalMoves(&list)
	found := false
	for i := 0; i < list.Len(); i++ {
		if list.At(i).Kind() == MovePromotion {
			found = true
		}
	}
	assert.True(t, found)
}
