package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveString(t *testing.T) {
	require.Equal(t, "d3", Move{X: 4, Y: 3}.String())
	require.Equal(t, "a1", Move{X: 1, Y: 1}.String())
	require.Equal(t, "h8", Move{X: 8, Y: 8}.String())
	require.Equal(t, "(0,0)", Move{}.String())
}

func TestParseMove(t *testing.T) {
	valid := map[string]Move{
		"d3":   {X: 4, Y: 3},
		"H8":   {X: 8, Y: 8},
		" a1 ": {X: 1, Y: 1},
		"4 3":  {X: 4, Y: 3},
		"4,3":  {X: 4, Y: 3},
		"8, 1": {X: 8, Y: 1},
	}
	for in, want := range valid {
		got, err := ParseMove(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "z9", "i1", "0 3", "4 9", "four three", "1 2 3"} {
		_, err := ParseMove(in)
		require.Error(t, err, in)
	}
}

func TestSameSquare(t *testing.T) {
	require.True(t, Move{X: 4, Y: 3, Value: 8}.SameSquare(Move{X: 4, Y: 3}))
	require.False(t, Move{X: 4, Y: 3}.SameSquare(Move{X: 3, Y: 4}))
}

func TestSquare(t *testing.T) {
	require.Equal(t, Move{X: 4, Y: 3}, Move{X: 4, Y: 3, Value: -12}.Square())
	require.Equal(t, Move{X: 4, Y: 3}, Move{X: 4, Y: 3}.Square())
}

func TestColor(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, "Black", Black.String())
	require.True(t, BlackPiece.Holds(Black))
	require.False(t, Border.Holds(Black))
	require.False(t, Empty.Holds(White))

	c, err := ParseColor("white")
	require.NoError(t, err)
	require.Equal(t, White, c)
	_, err = ParseColor("red")
	require.Error(t, err)
}
