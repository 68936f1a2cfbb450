package searcher

import (
	"fmt"

	"boardgame/game"
)

// nimBoard is the mock game for these tests: a pile of stones, each turn
// removes one or two, whoever takes the last stone wins. Small enough
// that perft and minimax values are checkable by hand (the side to move
// loses exactly when the pile is a multiple of three).
type nimMove uint8

type nimReverse struct {
	take nimMove
	ply  int
}

type nimBoard struct {
	pile int
	ply  int
	// heuristic is what StaticEval returns for non-terminal positions.
	heuristic float64
}

func newNim(pile int) *nimBoard {
	if pile <= 0 {
		panic("nim: pile must start positive")
	}
	return &nimBoard{pile: pile}
}

func (b *nimBoard) SideToMove() game.Color {
	return game.Color(b.ply % 2)
}

func (b *nimBoard) GenerateMoves(moves []nimMove) []nimMove {
	if b.pile >= 1 {
		moves = append(moves, 1)
	}
	if b.pile >= 2 {
		moves = append(moves, 2)
	}
	return moves
}

func (b *nimBoard) DoMove(mv nimMove) nimReverse {
	if mv < 1 || mv > 2 || int(mv) > b.pile {
		panic(fmt.Sprintf("nim: illegal move %d", mv))
	}
	b.pile -= int(mv)
	b.ply++
	return nimReverse{take: mv, ply: b.ply}
}

func (b *nimBoard) ReverseMove(rev nimReverse) {
	if rev.ply != b.ply || b.ply == 0 {
		panic("nim: reverse token out of order")
	}
	b.pile += int(rev.take)
	b.ply--
}

func (b *nimBoard) GameResult() (game.GameResult, bool) {
	if b.pile > 0 {
		return 0, false
	}
	// The previous mover took the last stone.
	return game.WinFor(game.Color((b.ply - 1) % 2)), true
}

func (b *nimBoard) StaticEval() float64 {
	if result, over := b.GameResult(); over {
		if result == game.WhiteWin {
			return WinScore
		}
		return LossScore
	}
	return b.heuristic
}
