package corvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveEncoding(t *testing.T) {
	m := NewMove(SE1, SG1, MoveCastling)
	assert.Equal(t, SE1, m.From())
	assert.Equal(t, SG1, m.To())
	assert.Equal(t, MoveCastling, m.Kind())

	p := NewPromotionMove(SB1, SB8, PromoQueen)
	assert.Equal(t, SB1, p.From())
	assert.Equal(t, SB8, p.To())
	assert.Equal(t, MovePromotion, p.Kind())
	assert.Equal(t, PromoQueen, p.Promo())
}

func TestMoveString(t *testing.T) {
	m := NewMove(SA1, SH8, MoveNormal)
	assert.Equal(t, "a1h8", m.String())

	p := NewPromotionMove(SB1, SB8, PromoQueen)
	assert.Equal(t, "b1b8q", p.String())

	assert.Equal(t, "0000", NullMove.String())
}

func TestParseUCIMove(t *testing.T) {
	from, to, promo, hasPromo, err := ParseUCIMove("e2e4")
	require.NoError(t, err)
	assert.False(t, hasPromo)
	e2, _ := ParseSquare("e2")
	e4, _ := ParseSquare("e4")
	assert.Equal(t, e2, from)
	assert.Equal(t, e4, to)

	_, _, promo, hasPromo, err = ParseUCIMove("a7a8q")
	require.NoError(t, err)
	assert.True(t, hasPromo)
	assert.Equal(t, PromoQueen, promo)

	_, _, _, _, err = ParseUCIMove("zz")
	assert.Error(t, err)
}

func TestMoveListContains(t *testing.T) {
	var list MoveList
	m1 := NewMove(SA1, SH8, MoveNormal)
	m2 := NewPromotionMove(SB1, SB8, PromoQueen)
	list.push(m1, 0)
	list.push(m2, 0)

	assert.True(t, list.Contains(m1))
	assert.True(t, list.Contains(m2))
	assert.False(t, list.Contains(NewPromotionMove(SB1, SB8, PromoRook)))
	assert.False(t, list.Contains(NewMove(SA1, SA8, MoveNormal)))
	assert.Equal(t, 2, list.Len())
}
