package searcher

import (
	"boardgame/game"
)

// Terminal scores. A decided game is worth the extreme regardless of how
// much search depth remains, which keeps forced wins preferred over good
// static evaluations.
const (
	WinScore  = 100.0
	LossScore = -100.0
	DrawScore = 0.0
)

func terminalScore(result game.GameResult) float64 {
	switch result {
	case game.WhiteWin:
		return WinScore
	case game.BlackWin:
		return LossScore
	default:
		return DrawScore
	}
}

// Minimax is the reference full-width search: White maximizes, Black
// minimizes, terminal positions score ±100/0 and the depth limit falls
// back to the board's static evaluation. AlphaBeta computes the same
// value faster; this version stays deliberately simple so the two can
// check each other.
func Minimax[M comparable, R any](b game.EvalBoard[M, R], depth int) float64 {
	if result, over := b.GameResult(); over {
		return terminalScore(result)
	}
	if depth <= 0 {
		return b.StaticEval()
	}
	maximizing := b.SideToMove() == game.White
	best := LossScore
	if !maximizing {
		best = WinScore
	}
	for _, mv := range b.GenerateMoves(nil) {
		rev := b.DoMove(mv)
		value := Minimax(b, depth-1)
		b.ReverseMove(rev)
		if maximizing {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}
	return best
}

// BestMove returns the root move Minimax prefers for the side to move,
// along with its score. Panics if the position has no legal moves; the
// caller is expected to check GameResult first.
func BestMove[M comparable, R any](b game.EvalBoard[M, R], depth int) (M, float64) {
	moves := b.GenerateMoves(nil)
	if len(moves) == 0 {
		panic("searcher: BestMove called with no legal moves")
	}
	maximizing := b.SideToMove() == game.White
	bestMove := moves[0]
	bestValue := WinScore + 1
	if maximizing {
		bestValue = LossScore - 1
	}
	for _, mv := range moves {
		rev := b.DoMove(mv)
		value := Minimax(b, depth-1)
		b.ReverseMove(rev)
		if (maximizing && value > bestValue) || (!maximizing && value < bestValue) {
			bestMove, bestValue = mv, value
		}
	}
	return bestMove, bestValue
}
