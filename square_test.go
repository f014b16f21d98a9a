package corvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareFileRank(t *testing.T) {
	e4, err := ParseSquare("e4")
	require.NoError(t, err)

	testcases := []struct {
		sq         Square
		file, rank int
		name       string
	}{
		{SA1, 0, 0, "a1"},
		{SH1, 7, 0, "h1"},
		{SA8, 0, 7, "a8"},
		{SH8, 7, 7, "h8"},
		{e4, 4, 3, "e4"},
	}

	for _, tc := range testcases {
		assert.Equal(t, tc.file, tc.sq.File(), tc.name)
		assert.Equal(t, tc.rank, tc.sq.Rank(), tc.name)
		assert.Equal(t, tc.name, tc.sq.String())
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := ParseSquare("e4")
	require.NoError(t, err)
	assert.Equal(t, SE4, sq)

	sq, err = ParseSquare("-")
	require.NoError(t, err)
	assert.Equal(t, NoSquare, sq)

	_, err = ParseSquare("z9")
	assert.Error(t, err)

	_, err = ParseSquare("e44")
	assert.Error(t, err)
}

func TestColorOpposite(t *testing.T) {
	assert.Equal(t, Black, White.Opposite())
	assert.Equal(t, White, Black.Opposite())
}
