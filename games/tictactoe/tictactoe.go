// Package tictactoe implements the board contract for 3x3 tic-tac-toe.
// It is the reference conformance game: small enough to verify perft
// counts by hand, rich enough to exercise every part of the contract.
package tictactoe

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/bits"

	"boardgame/game"
)

// Move is a cell index 0..8 in row-major order: 0 is the top-left
// corner, 4 the center, 8 the bottom-right corner.
type Move uint8

func (m Move) String() string {
	return fmt.Sprintf("%c%d", 'a'+int(m)%3, int(m)/3+1)
}

// Reverse undoes one move. Tokens record the ply they were issued at so
// out-of-order use is caught instead of corrupting the position.
type Reverse struct {
	move Move
	ply  uint8
}

// The 8 winning lines as cell bitmasks.
var lines = [8]uint16{
	0b000000111, // rows
	0b000111000,
	0b111000000,
	0b001001001, // columns
	0b010010010,
	0b100100100,
	0b100010001, // diagonals
	0b001010100,
}

const full = 0b111111111

// Board holds one tic-tac-toe position: a cell occupancy bitboard per
// side, plus the ply count that determines the side to move.
type Board struct {
	sides [2]uint16
	ply   uint8
}

// NewBoard returns an empty board with White (crosses) to move.
func NewBoard() *Board {
	return &Board{}
}

func (b *Board) SideToMove() game.Color {
	return game.Color(b.ply % 2)
}

func (b *Board) GenerateMoves(moves []Move) []Move {
	if _, over := b.GameResult(); over {
		return moves
	}
	occupied := b.sides[0] | b.sides[1]
	for cell := Move(0); cell < 9; cell++ {
		if occupied&(1<<cell) == 0 {
			moves = append(moves, cell)
		}
	}
	return moves
}

func (b *Board) DoMove(mv Move) Reverse {
	if _, over := b.GameResult(); over {
		panic("tictactoe: DoMove in a terminal position")
	}
	if mv > 8 || (b.sides[0]|b.sides[1])&(1<<mv) != 0 {
		panic(fmt.Sprintf("tictactoe: illegal move %v", mv))
	}
	b.sides[b.SideToMove().Disc()] |= 1 << mv
	b.ply++
	return Reverse{move: mv, ply: b.ply}
}

func (b *Board) ReverseMove(rev Reverse) {
	if rev.ply != b.ply || b.ply == 0 {
		panic("tictactoe: reverse token out of order")
	}
	mover := game.Color((b.ply - 1) % 2)
	if b.sides[mover.Disc()]&(1<<rev.move) == 0 {
		panic("tictactoe: reverse token does not match the position")
	}
	b.sides[mover.Disc()] &^= 1 << rev.move
	b.ply--
}

func (b *Board) GameResult() (game.GameResult, bool) {
	for side := game.White; side <= game.Black; side++ {
		bb := b.sides[side.Disc()]
		for _, line := range lines {
			if bb&line == line {
				return game.WinFor(side), true
			}
		}
	}
	if b.sides[0]|b.sides[1] == full {
		return game.Draw, true
	}
	return 0, false
}

// StaticEval scores open lines: a line counts only while the opponent
// has no cell on it, and two own cells on a line outweigh any number of
// singles.
func (b *Board) StaticEval() float64 {
	if result, over := b.GameResult(); over {
		return terminalScore(result)
	}
	var score float64
	for _, line := range lines {
		white := bits.OnesCount16(b.sides[0] & line)
		black := bits.OnesCount16(b.sides[1] & line)
		switch {
		case black == 0 && white > 0:
			score += lineWeight(white)
		case white == 0 && black > 0:
			score -= lineWeight(black)
		}
	}
	return score
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

func lineWeight(cells int) float64 {
	if cells >= 2 {
		return 10
	}
	return 1
}

// Hash identifies the position for transposition tables.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	var buf [4]byte
	binary.LittleEndian.PutUint16(buf[0:], b.sides[0])
	binary.LittleEndian.PutUint16(buf[2:], b.sides[1])
	h.Write(buf[:])
	return h.Sum64()
}

// ActiveMoves appends the moves that win on the spot for the side to
// move. Applying one always ends the game, so recursive expansion
// terminates after a single ply.
func (b *Board) ActiveMoves(moves []Move) []Move {
	if _, over := b.GameResult(); over {
		return moves
	}
	own := b.sides[b.SideToMove().Disc()]
	occupied := b.sides[0] | b.sides[1]
	for cell := Move(0); cell < 9; cell++ {
		if occupied&(1<<cell) != 0 {
			continue
		}
		after := own | 1<<cell
		for _, line := range lines {
			if after&line == line {
				moves = append(moves, cell)
				break
			}
		}
	}
	return moves
}

func (b *Board) BranchFactor() int {
	return 5
}
