package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boardgame/games/tictactoe"
)

func TestPerftNim(t *testing.T) {
	b := newNim(3)

	// From a pile of three: two first moves; take-two lines end a ply
	// earlier, so deep counts collapse quickly.
	require.EqualValues(t, 1, Perft[nimMove, nimReverse](b, 0))
	require.EqualValues(t, 2, Perft[nimMove, nimReverse](b, 1))
	require.EqualValues(t, 3, Perft[nimMove, nimReverse](b, 2))
	require.EqualValues(t, 1, Perft[nimMove, nimReverse](b, 3))
	require.EqualValues(t, 0, Perft[nimMove, nimReverse](b, 4))

	// Counting must leave the board untouched.
	require.Equal(t, 3, b.pile)
	require.Equal(t, 0, b.ply)
}

func TestPerftTicTacToe(t *testing.T) {
	b := tictactoe.NewBoard()
	require.EqualValues(t, 9, Perft[tictactoe.Move, tictactoe.Reverse](b, 1))
	require.EqualValues(t, 72, Perft[tictactoe.Move, tictactoe.Reverse](b, 2))
	require.EqualValues(t, 504, Perft[tictactoe.Move, tictactoe.Reverse](b, 3))
}

func TestDivide(t *testing.T) {
	b := newNim(3)

	counts := Divide[nimMove, nimReverse](b, 2)
	require.Equal(t, map[nimMove]uint64{1: 2, 2: 1}, counts)

	var total uint64
	for _, n := range counts {
		total += n
	}
	require.Equal(t, Perft[nimMove, nimReverse](b, 2), total,
		"divide counts should sum to the perft count")

	require.Equal(t, map[nimMove]uint64{1: 1, 2: 1}, Divide[nimMove, nimReverse](b, 1))
}
