// Package connectfour implements the board contract for 7x6 connect
// four. Each side's discs live in one bitboard laid out in column-major
// stripes of 7 bits (6 playable rows plus a guard bit), so four-in-a-row
// detection is a handful of shifts.
package connectfour

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/bits"

	"boardgame/game"
)

const (
	columns = 7
	rows    = 6
	stride  = 7 // rows plus one guard bit per column
)

// Move is a column index 0..6; the disc falls to the lowest free row.
type Move uint8

func (m Move) String() string {
	return fmt.Sprintf("%c", 'a'+int(m))
}

// Reverse undoes one drop. Tokens record the ply they were issued at so
// out-of-order use is caught instead of corrupting the position.
type Reverse struct {
	col Move
	ply uint8
}

// Board holds one connect-four position.
type Board struct {
	sides   [2]uint64
	heights [columns]uint8
	ply     uint8
}

// NewBoard returns an empty board with White to move.
func NewBoard() *Board {
	return &Board{}
}

func bit(col Move, row uint8) uint64 {
	return 1 << (uint(col)*stride + uint(row))
}

func (b *Board) SideToMove() game.Color {
	return game.Color(b.ply % 2)
}

func (b *Board) GenerateMoves(moves []Move) []Move {
	if _, over := b.GameResult(); over {
		return moves
	}
	for col := Move(0); col < columns; col++ {
		if b.heights[col] < rows {
			moves = append(moves, col)
		}
	}
	return moves
}

func (b *Board) DoMove(mv Move) Reverse {
	if _, over := b.GameResult(); over {
		panic("connectfour: DoMove in a terminal position")
	}
	if mv >= columns || b.heights[mv] >= rows {
		panic(fmt.Sprintf("connectfour: illegal move %v", mv))
	}
	b.sides[b.SideToMove().Disc()] |= bit(mv, b.heights[mv])
	b.heights[mv]++
	b.ply++
	return Reverse{col: mv, ply: b.ply}
}

func (b *Board) ReverseMove(rev Reverse) {
	if rev.ply != b.ply || b.ply == 0 {
		panic("connectfour: reverse token out of order")
	}
	if rev.col >= columns || b.heights[rev.col] == 0 {
		panic("connectfour: reverse token does not match the position")
	}
	mover := game.Color((b.ply - 1) % 2)
	top := bit(rev.col, b.heights[rev.col]-1)
	if b.sides[mover.Disc()]&top == 0 {
		panic("connectfour: reverse token does not match the position")
	}
	b.sides[mover.Disc()] &^= top
	b.heights[rev.col]--
	b.ply--
}

func (b *Board) GameResult() (game.GameResult, bool) {
	for side := game.White; side <= game.Black; side++ {
		if connected(b.sides[side.Disc()]) {
			return game.WinFor(side), true
		}
	}
	if b.ply == columns*rows {
		return game.Draw, true
	}
	return 0, false
}

// connected reports four in a row anywhere in bb. The guard bit per
// column keeps vertical runs from wrapping into the next column.
func connected(bb uint64) bool {
	for _, shift := range [4]uint{1, stride, stride - 1, stride + 1} {
		m := bb & (bb >> shift)
		if m&(m>>(2*shift)) != 0 {
			return true
		}
	}
	return false
}

// windows holds every four-cell alignment on the board as a bitmask,
// 69 in total.
var windows = buildWindows()

func buildWindows() []uint64 {
	var out []uint64
	for col := Move(0); col < columns; col++ {
		for row := uint8(0); row < rows; row++ {
			// right, up, up-right, up-left
			if col+3 < columns {
				out = append(out, bit(col, row)|bit(col+1, row)|bit(col+2, row)|bit(col+3, row))
			}
			if row+3 < rows {
				out = append(out, bit(col, row)|bit(col, row+1)|bit(col, row+2)|bit(col, row+3))
			}
			if col+3 < columns && row+3 < rows {
				out = append(out, bit(col, row)|bit(col+1, row+1)|bit(col+2, row+2)|bit(col+3, row+3))
			}
			if col >= 3 && row+3 < rows {
				out = append(out, bit(col, row)|bit(col-1, row+1)|bit(col-2, row+2)|bit(col-3, row+3))
			}
		}
	}
	return out
}

// StaticEval scores the four-cell windows still open to each side,
// weighting windows that already hold more own discs much higher. The
// raw sum is clamped to keep non-terminal scores inside the terminal
// range.
func (b *Board) StaticEval() float64 {
	if result, over := b.GameResult(); over {
		return terminalScore(result)
	}
	var score float64
	for _, w := range windows {
		white := bits.OnesCount64(b.sides[0] & w)
		black := bits.OnesCount64(b.sides[1] & w)
		switch {
		case black == 0 && white > 0:
			score += windowWeight(white)
		case white == 0 && black > 0:
			score -= windowWeight(black)
		}
	}
	return min(max(score, -95), 95)
}

func terminalScore(result game.GameResult) float64 {
	switch result {
	case game.WhiteWin:
		return 100
	case game.BlackWin:
		return -100
	default:
		return 0
	}
}

func windowWeight(discs int) float64 {
	switch discs {
	case 1:
		return 0.2
	case 2:
		return 1
	default:
		return 6
	}
}

// Hash identifies the position for transposition tables.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:], b.sides[0])
	binary.LittleEndian.PutUint64(buf[8:], b.sides[1])
	h.Write(buf[:])
	return h.Sum64()
}

// ActiveMoves appends the drops that win on the spot for the side to
// move.
func (b *Board) ActiveMoves(moves []Move) []Move {
	if _, over := b.GameResult(); over {
		return moves
	}
	own := b.sides[b.SideToMove().Disc()]
	for col := Move(0); col < columns; col++ {
		if b.heights[col] >= rows {
			continue
		}
		if connected(own | bit(col, b.heights[col])) {
			moves = append(moves, col)
		}
	}
	return moves
}

func (b *Board) BranchFactor() int {
	return columns
}
