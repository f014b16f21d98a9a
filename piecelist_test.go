package corvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceListKnightContiguity(t *testing.T) {
	var s Side
	s.reset(White)
	s.setKing(squareOf(t, "e1"))
	s.nrPieces = 1

	s.addPiece(squareOf(t, "b1"), true)
	s.addPiece(squareOf(t, "g1"), true)
	s.addPiece(squareOf(t, "a1"), false)
	s.addPiece(squareOf(t, "h1"), false)

	assert.Equal(t, 2, s.nrKnights)
	assert.Equal(t, 5, s.nrPieces)
	assert.ElementsMatch(t, []Square{squareOf(t, "b1"), squareOf(t, "g1")}, s.knights())
	assert.ElementsMatch(t, []Square{squareOf(t, "a1"), squareOf(t, "h1")}, s.nonKingNonKnights())
}

func TestPieceListRemoveKnightKeepsContiguity(t *testing.T) {
	var s Side
	s.reset(White)
	s.setKing(squareOf(t, "e1"))
	s.nrPieces = 1
	s.addPiece(squareOf(t, "b1"), true)
	s.addPiece(squareOf(t, "g1"), true)
	s.addPiece(squareOf(t, "a1"), false)

	s.removePiece(squareOf(t, "b1"))

	assert.Equal(t, 1, s.nrKnights)
	assert.Equal(t, 3, s.nrPieces)
	assert.Contains(t, s.knights(), squareOf(t, "g1"))
	assert.Contains(t, s.nonKingNonKnights(), squareOf(t, "a1"))
}

func TestPieceListRemoveNonKnightSwapsFromEnd(t *testing.T) {
	var s Side
	s.reset(White)
	s.setKing(squareOf(t, "e1"))
	s.nrPieces = 1
	s.addPiece(squareOf(t, "b1"), true)
	s.addPiece(squareOf(t, "a1"), false)
	s.addPiece(squareOf(t, "h1"), false)

	s.removePiece(squareOf(t, "a1"))

	assert.Equal(t, 3, s.nrPieces)
	assert.Equal(t, 1, s.nrKnights)
	assert.Contains(t, s.nonKingNonKnights(), squareOf(t, "h1"))
	assert.NotContains(t, s.nonKingNonKnights(), squareOf(t, "a1"))
}

func TestPieceListRelocate(t *testing.T) {
	var s Side
	s.reset(White)
	s.setKing(squareOf(t, "e1"))
	s.nrPieces = 1
	s.addPiece(squareOf(t, "a1"), false)

	s.relocate(squareOf(t, "a1"), squareOf(t, "d1"))
	assert.Contains(t, s.nonKingNonKnights(), squareOf(t, "d1"))

	s.relocate(squareOf(t, "e1"), squareOf(t, "f1"))
	assert.Equal(t, squareOf(t, "f1"), s.King())
}
