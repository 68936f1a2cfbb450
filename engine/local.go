// Package engine runs complete games between two agents over the board
// contract. It is single-threaded by construction: one board, one game
// loop, the agents take turns on the same mutable position.
package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"boardgame/game"
	"boardgame/searcher"
)

const defaultMaxPlies = 1000

// Local drives one game on a single in-process board.
type Local[M comparable, R any] struct {
	board    game.Board[M, R]
	agents   [2]searcher.Agent[M, R]
	maxPlies int
}

// NewLocal pairs white and black over board. maxPlies caps runaway games
// (agents that cycle forever in games without a forced end); zero or
// negative means the default of 1000.
func NewLocal[M comparable, R any](board game.Board[M, R], white, black searcher.Agent[M, R], maxPlies int) *Local[M, R] {
	if board == nil {
		panic("engine: nil board")
	}
	if white == nil || black == nil {
		panic("engine: need two agents")
	}
	if maxPlies <= 0 {
		maxPlies = defaultMaxPlies
	}
	return &Local[M, R]{
		board:    board,
		agents:   [2]searcher.Agent[M, R]{white, black},
		maxPlies: maxPlies,
	}
}

// Run plays the game out and returns the result, the number of plies
// played, and whether the game actually finished (false when the ply
// limit cut it off, in which case the result is meaningless).
func (l *Local[M, R]) Run() (game.GameResult, int, bool) {
	plies := 0
	for {
		if result, over := l.board.GameResult(); over {
			log.Info().Stringer("result", result).Int("plies", plies).Msg("game over")
			return result, plies, true
		}
		if plies >= l.maxPlies {
			log.Warn().Int("plies", plies).Msg("ply limit reached, aborting game")
			return 0, plies, false
		}

		side := l.board.SideToMove()
		mv := l.agents[side.Disc()].FindMove(l.board)
		if !game.MoveIsLegal(l.board, mv) {
			panic(fmt.Sprintf("engine: %s agent returned illegal move %v", side, mv))
		}
		l.board.DoMove(mv)
		plies++
		log.Debug().Stringer("side", side).Int("ply", plies).Msgf("played %v", mv)
	}
}
