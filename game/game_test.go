package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	require.Equal(t, Black, White.Other())
	require.Equal(t, White, Black.Other())

	require.Equal(t, 0, White.Disc())
	require.Equal(t, 1, Black.Disc())

	require.Equal(t, 1, White.Multiplier())
	require.Equal(t, -1, Black.Multiplier())

	require.Equal(t, "White", White.String())
	require.Equal(t, "Black", Black.String())
}

func TestGameResult(t *testing.T) {
	require.Equal(t, WhiteWin, WinFor(White))
	require.Equal(t, BlackWin, WinFor(Black))

	require.Equal(t, BlackWin, WhiteWin.Other())
	require.Equal(t, WhiteWin, BlackWin.Other())
	require.Equal(t, Draw, Draw.Other())

	winner, ok := WhiteWin.Winner()
	require.True(t, ok)
	require.Equal(t, White, winner)

	winner, ok = BlackWin.Winner()
	require.True(t, ok)
	require.Equal(t, Black, winner)

	_, ok = Draw.Winner()
	require.False(t, ok)
}

// pileBoard is a minimal Board for exercising the package helpers: a pile
// of n stones, each move removes one, White took the last stone when the
// pile is empty after an even total number of removals.
type pileBoard struct {
	pile  int
	taken int
}

func (p *pileBoard) SideToMove() Color {
	return Color(p.taken % 2)
}

func (p *pileBoard) GenerateMoves(moves []int) []int {
	if p.pile == 0 {
		return moves
	}
	return append(moves, 1)
}

func (p *pileBoard) DoMove(mv int) int {
	if mv != 1 || p.pile == 0 {
		panic("illegal move")
	}
	p.pile--
	p.taken++
	return p.taken
}

func (p *pileBoard) ReverseMove(rev int) {
	if rev != p.taken {
		panic("reverse token out of order")
	}
	p.pile++
	p.taken--
}

func (p *pileBoard) GameResult() (GameResult, bool) {
	if p.pile > 0 {
		return 0, false
	}
	return WinFor(Color(p.taken % 2).Other()), true
}

func TestMoveIsLegal(t *testing.T) {
	b := &pileBoard{pile: 2}
	require.True(t, MoveIsLegal[int, int](b, 1))
	require.False(t, MoveIsLegal[int, int](b, 2))

	b.DoMove(1)
	b.DoMove(1)
	require.False(t, MoveIsLegal[int, int](b, 1), "no move is legal in a terminal position")
}
