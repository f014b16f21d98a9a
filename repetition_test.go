package corvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreefoldRepetitionByShufflingKnights(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K1N1 w - - 0 1")
	require.NoError(t, err)

	g1, f3 := squareOf(t, "g1"), squareOf(t, "f3")
	e8, d8 := squareOf(t, "e8"), squareOf(t, "d8")

	shuffle := func() {
		b.Make(NewMove(g1, f3, MoveNormal))
		b.Make(NewMove(e8, d8, MoveNormal))
		b.Make(NewMove(f3, g1, MoveNormal))
		b.Make(NewMove(d8, e8, MoveNormal))
	}

	assert.False(t, b.IsThreefoldRepetition())
	shuffle()
	assert.False(t, b.IsThreefoldRepetition())
	shuffle()
	assert.True(t, b.IsThreefoldRepetition())
}

func TestRepetitionsCountsSingleRecurrence(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K1N1 w - - 0 1")
	require.NoError(t, err)

	g1, f3 := squareOf(t, "g1"), squareOf(t, "f3")
	e8, d8 := squareOf(t, "e8"), squareOf(t, "d8")

	b.Make(NewMove(g1, f3, MoveNormal))
	b.Make(NewMove(e8, d8, MoveNormal))
	b.Make(NewMove(f3, g1, MoveNormal))
	b.Make(NewMove(d8, e8, MoveNormal))
	assert.Equal(t, 1, b.Repetitions())
}

func TestHasUpcomingRepetitionFalseOnFreshPosition(t *testing.T) {
	b, err := ParseFEN(startFEN)
	require.NoError(t, err)
	assert.False(t, b.HasUpcomingRepetition())
}
