// Package game defines the contract between concrete board games and
// game-agnostic tree algorithms. It covers any sequential, deterministic,
// two-player, perfect-information game: chess, go, xiangqi, othello,
// connect four, tic-tac-toe and so on. The package holds no game rules
// itself; everything observable about a game flows through the Board
// interface.
package game

// Color identifies one of the two sides. White is always the side that
// moves first, regardless of what the concrete game calls its players.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// Disc returns the color's discriminant: 0 for White, 1 for Black.
// Useful for indexing per-side arrays.
func (c Color) Disc() int {
	return int(c)
}

// Multiplier returns the evaluation sign convention: +1 for White,
// -1 for Black.
func (c Color) Multiplier() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Unknown"
	}
}
