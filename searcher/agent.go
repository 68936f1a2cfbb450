package searcher

import (
	"fmt"

	"golang.org/x/exp/rand"

	"boardgame/game"
)

// Agent picks the move to play in the current position. FindMove must
// leave the board exactly as it found it; agents that search do so
// through the reversible-move protocol.
type Agent[M comparable, R any] interface {
	FindMove(b game.Board[M, R]) M
}

// RandomAgent plays a uniformly random legal move. Mostly useful as a
// baseline opponent and for shaking out contract violations in new game
// implementations.
type RandomAgent[M comparable, R any] struct {
	rng *rand.Rand
}

func NewRandomAgent[M comparable, R any](seed uint64) *RandomAgent[M, R] {
	return &RandomAgent[M, R]{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent[M, R]) FindMove(b game.Board[M, R]) M {
	moves := b.GenerateMoves(nil)
	if len(moves) == 0 {
		panic("searcher: FindMove called with no legal moves")
	}
	return moves[a.rng.Intn(len(moves))]
}

// SearchAgent picks moves with a depth-limited alpha-beta search. The
// board it is given must implement game.EvalBoard.
type SearchAgent[M comparable, R any] struct {
	depth int
}

func NewSearchAgent[M comparable, R any](depth int) *SearchAgent[M, R] {
	if depth <= 0 {
		panic("searcher: search depth must be positive")
	}
	return &SearchAgent[M, R]{depth: depth}
}

func (a *SearchAgent[M, R]) FindMove(b game.Board[M, R]) M {
	eb, ok := any(b).(game.EvalBoard[M, R])
	if !ok {
		panic(fmt.Sprintf("searcher: SearchAgent needs an EvalBoard, got %T", b))
	}
	moves := eb.GenerateMoves(nil)
	if len(moves) == 0 {
		panic("searcher: FindMove called with no legal moves")
	}
	maximizing := eb.SideToMove() == game.White
	bestMove := moves[0]
	bestValue := WinScore + 1
	if maximizing {
		bestValue = LossScore - 1
	}
	for _, mv := range moves {
		rev := eb.DoMove(mv)
		value := AlphaBeta(eb, a.depth-1)
		eb.ReverseMove(rev)
		if (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			bestMove, bestValue = mv, value
		}
	}
	return bestMove
}
