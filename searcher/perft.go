// Package searcher holds game-agnostic reference consumers of the board
// contract: perft enumeration, minimax, alpha-beta and the agents that
// drive the self-play engine. Everything here works on one mutable board
// in place, applying and reversing moves in strict LIFO order.
package searcher

import "boardgame/game"

// Perft counts the nodes of the game tree exactly depth plies below the
// current position. Terminal positions generate no moves, so lines that
// end early contribute nothing at greater depths.
func Perft[M comparable, R any](b game.Board[M, R], depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateMoves(nil)
	if depth == 1 {
		// Bulk counting: the children are the leaves.
		return uint64(len(moves))
	}
	var nodes uint64
	for _, mv := range moves {
		rev := b.DoMove(mv)
		nodes += Perft(b, depth-1)
		b.ReverseMove(rev)
	}
	return nodes
}

// Divide splits Perft(depth) by root move, the usual way to localize a
// move-generation bug to one subtree.
func Divide[M comparable, R any](b game.Board[M, R], depth int) map[M]uint64 {
	counts := make(map[M]uint64)
	for _, mv := range b.GenerateMoves(nil) {
		rev := b.DoMove(mv)
		counts[mv] = Perft(b, depth-1)
		b.ReverseMove(rev)
	}
	return counts
}
