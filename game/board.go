package game

// Board is the mutable position contract that generic tree algorithms are
// written against. M is the game's move type and must be comparable so
// algorithms and tests can identify particular moves; R is the game's
// reverse-move token, opaque to everyone but the implementation.
//
// A Board owns exactly one current position. Search algorithms reuse that
// single position in place: generate moves, apply one, recurse, undo it.
// DoMove and ReverseMove therefore follow a strict LIFO discipline, and a
// reverse token is only valid on the Board that issued it, immediately
// after the DoMove that produced it (allowing for nested do/undo pairs in
// between).
//
// A Board carries no synchronization. It belongs to one logical call
// stack at a time; parallel search means one independent Board per
// goroutine, constructed or duplicated by the concrete game.
//
// Precondition violations are programmer errors, not runtime conditions:
// implementations must panic rather than silently corrupt the position.
// That covers applying a move GenerateMoves would not currently produce,
// reversing tokens out of LIFO order or reusing a consumed token, and
// calling DoMove once GameResult reports the game over.
type Board[M comparable, R any] interface {
	// SideToMove returns whose turn it is in the current position.
	SideToMove() Color

	// GenerateMoves appends every legal move in the current position to
	// moves and returns the extended slice, exactly once per move, in no
	// particular order. It never clears prior contents and appends
	// nothing in a terminal position. It does not mutate the Board.
	GenerateMoves(moves []M) []M

	// DoMove applies mv, which must be one of the moves GenerateMoves
	// currently produces, and returns the token that undoes it.
	DoMove(mv M) R

	// ReverseMove undoes the most recent unreversed DoMove on this Board,
	// restoring the prior position exactly: same move set, same side to
	// move, same result, same evaluation.
	ReverseMove(rev R)

	// GameResult returns the outcome and true once the game's own rules
	// end it, or ok=false while play can continue. It is never ok=true
	// while GenerateMoves still produces moves, and never ok=false when
	// GenerateMoves produces none.
	GameResult() (GameResult, bool)
}

// EvalBoard is a Board with a fast heuristic judgment of the current
// position, enabling depth-limited search where full resolution is
// infeasible. Scores are positive when White is better and negative when
// Black is, with terminal positions worth around ±100.
type EvalBoard[M comparable, R any] interface {
	Board[M, R]

	StaticEval() float64
}

// MoveIsLegal reports whether mv is among the current position's legal
// moves. It lets searchers probe killer moves from sibling subtrees
// without generating into their own buffers.
func MoveIsLegal[M comparable, R any](b Board[M, R], mv M) bool {
	for _, m := range b.GenerateMoves(nil) {
		if m == mv {
			return true
		}
	}
	return false
}
