package game

// GameResult is the outcome of a finished game. There is deliberately no
// "ongoing" variant: Board.GameResult reports an unfinished game through
// its second return value instead of a sentinel.
type GameResult uint8

const (
	WhiteWin GameResult = iota
	BlackWin
	Draw
)

// WinFor returns the winning result for the given color.
func WinFor(c Color) GameResult {
	if c == White {
		return WhiteWin
	}
	return BlackWin
}

// Other returns the result with the winner flipped. Draw maps to itself.
func (r GameResult) Other() GameResult {
	switch r {
	case WhiteWin:
		return BlackWin
	case BlackWin:
		return WhiteWin
	default:
		return Draw
	}
}

// Winner returns the winning color, or ok=false for a draw.
func (r GameResult) Winner() (Color, bool) {
	switch r {
	case WhiteWin:
		return White, true
	case BlackWin:
		return Black, true
	default:
		return White, false
	}
}

func (r GameResult) String() string {
	switch r {
	case WhiteWin:
		return "WhiteWin"
	case BlackWin:
		return "BlackWin"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}
