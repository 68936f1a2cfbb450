package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boardgame/game"
	"boardgame/games/tictactoe"
	"boardgame/searcher"
)

func TestRunRandomVsRandom(t *testing.T) {
	local := NewLocal[tictactoe.Move, tictactoe.Reverse](
		tictactoe.NewBoard(),
		searcher.NewRandomAgent[tictactoe.Move, tictactoe.Reverse](1),
		searcher.NewRandomAgent[tictactoe.Move, tictactoe.Reverse](2),
		0,
	)

	result, plies, finished := local.Run()
	require.True(t, finished)
	require.GreaterOrEqual(t, plies, 5, "no tic-tac-toe game ends before ply 5")
	require.LessOrEqual(t, plies, 9)
	require.Contains(t, []game.GameResult{game.WhiteWin, game.BlackWin, game.Draw}, result)
}

func TestRunSearchNeverLosesAsWhite(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		local := NewLocal[tictactoe.Move, tictactoe.Reverse](
			tictactoe.NewBoard(),
			searcher.NewSearchAgent[tictactoe.Move, tictactoe.Reverse](9),
			searcher.NewRandomAgent[tictactoe.Move, tictactoe.Reverse](seed),
			0,
		)
		result, _, finished := local.Run()
		require.True(t, finished)
		require.NotEqual(t, game.BlackWin, result,
			"full-depth search must never lose tic-tac-toe (seed %d)", seed)
	}
}

func TestRunOnTerminalBoard(t *testing.T) {
	b := tictactoe.NewBoard()
	for _, mv := range []tictactoe.Move{0, 3, 1, 4, 2} {
		b.DoMove(mv)
	}
	local := NewLocal[tictactoe.Move, tictactoe.Reverse](
		b,
		searcher.NewRandomAgent[tictactoe.Move, tictactoe.Reverse](1),
		searcher.NewRandomAgent[tictactoe.Move, tictactoe.Reverse](2),
		0,
	)

	result, plies, finished := local.Run()
	require.True(t, finished)
	require.Zero(t, plies)
	require.Equal(t, game.WhiteWin, result)
}

func TestRunPlyLimit(t *testing.T) {
	local := NewLocal[tictactoe.Move, tictactoe.Reverse](
		tictactoe.NewBoard(),
		searcher.NewRandomAgent[tictactoe.Move, tictactoe.Reverse](1),
		searcher.NewRandomAgent[tictactoe.Move, tictactoe.Reverse](2),
		3,
	)

	_, plies, finished := local.Run()
	require.False(t, finished)
	require.Equal(t, 3, plies)
}
