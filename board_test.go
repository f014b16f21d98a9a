package corvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUndoRestoresFEN(t *testing.T) {
	testcases := []struct {
		name string
		fen  string
		move Move
	}{
		{"pawn double push", startFEN, NewMove(squareOf(t, "e2"), squareOf(t, "e4"), MoveNormal)},
		{"knight development", startFEN, NewMove(squareOf(t, "g1"), squareOf(t, "f3"), MoveNormal)},
		{"white kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			NewMove(squareOf(t, "e1"), squareOf(t, "g1"), MoveCastling)},
		{"black queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			NewMove(squareOf(t, "e8"), squareOf(t, "c8"), MoveCastling)},
		{"white en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			NewMove(squareOf(t, "e5"), squareOf(t, "d6"), MoveEnPassant)},
		{"promotion", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			NewPromotionMove(squareOf(t, "a7"), squareOf(t, "a8"), PromoQueen)},
	}

	for _, tc := range testcases {
		b, err := ParseFEN(tc.fen)
		require.NoError(t, err, tc.name)

		before := tc.fen
		hashBefore := b.Hash()
		materialBefore := b.MaterialKey()

		b.Make(tc.move)
		assert.NotEqual(t, hashBefore, b.Hash(), tc.name)

		b.Undo()
		assert.Equal(t, before, b.FEN(), tc.name)
		assert.Equal(t, hashBefore, b.Hash(), tc.name)
		assert.Equal(t, materialBefore, b.MaterialKey(), tc.name)
	}
}

func TestMakeUndoDeepStack(t *testing.T) {
	b, err := ParseFEN(startFEN)
	require.NoError(t, err)

	var list MoveList
	var played []Move
	for i := 0; i < 20; i++ {
		b.GenerateLegalMoves(&list)
		require.Greater(t, list.Len(), 0, "position ran out of legal moves")
		m := list.At(0)
		b.Make(m)
		played = append(played, m)
	}

	for i := len(played) - 1; i >= 0; i-- {
		b.Undo()
	}
	assert.Equal(t, startFEN, b.FEN())
}

func TestInCheck(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/4r3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.True(t, b.InCheck(White))
	assert.False(t, b.InCheck(Black))
}

func TestNullMove(t *testing.T) {
	b, err := ParseFEN(startFEN)
	require.NoError(t, err)
	hash := b.Hash()
	side := b.SideToMove()

	b.NullMove()
	assert.NotEqual(t, side, b.SideToMove())
	b.UndoNullMove()
	assert.Equal(t, side, b.SideToMove())
	assert.Equal(t, hash, b.Hash())
}

// squareOf is a small test helper that parses algebraic notation and fails
// the test immediately on a malformed literal.
func squareOf(t *testing.T, s string) Square {
	t.Helper()
	sq, err := ParseSquare(s)
	require.NoError(t, err)
	return sq
}
