package game

// ExtendedBoard adds the hooks stronger searchers exploit. Implementing
// it is optional; searchers type-assert for it and fall back to the plain
// EvalBoard contract when it is absent.
type ExtendedBoard[M comparable, R any] interface {
	EvalBoard[M, R]

	// Hash returns a value identifying the current position, equal for
	// positions that are indistinguishable through the Board interface.
	// Collisions are permitted but should be rare; transposition tables
	// depend on it.
	Hash() uint64

	// ActiveMoves appends only the moves that radically change the static
	// evaluation (captures, promotions, immediate wins) and returns the
	// extended slice. Recursively expanding active moves must terminate:
	// eventually a position appends none.
	ActiveMoves(moves []M) []M

	// BranchFactor estimates the game's average branching factor, guiding
	// pruning and time management.
	BranchFactor() int
}
