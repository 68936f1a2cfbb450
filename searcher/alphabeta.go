package searcher

import (
	"boardgame/game"
)

type boundKind uint8

const (
	boundExact boundKind = iota
	boundLower
	boundUpper
)

type ttEntry struct {
	depth int
	score float64
	kind  boundKind
}

// AlphaBeta returns the same value as Minimax while pruning subtrees
// that cannot affect the result. When the board implements
// game.ExtendedBoard it additionally orders immediately-winning moves
// first and caches scores in a transposition table keyed by the board's
// hash.
func AlphaBeta[M comparable, R any](b game.EvalBoard[M, R], depth int) float64 {
	search := &alphaBeta[M, R]{}
	if ext, ok := any(b).(game.ExtendedBoard[M, R]); ok {
		search.ext = ext
		search.table = make(map[uint64]ttEntry)
	}
	return search.search(b, depth, LossScore-1, WinScore+1)
}

type alphaBeta[M comparable, R any] struct {
	ext   game.ExtendedBoard[M, R]
	table map[uint64]ttEntry
}

func (s *alphaBeta[M, R]) search(b game.EvalBoard[M, R], depth int, alpha, beta float64) float64 {
	if result, over := b.GameResult(); over {
		return terminalScore(result)
	}
	if depth <= 0 {
		return b.StaticEval()
	}

	var key uint64
	if s.table != nil {
		key = s.ext.Hash()
		if e, ok := s.table[key]; ok && e.depth >= depth {
			switch e.kind {
			case boundExact:
				return e.score
			case boundLower:
				alpha = max(alpha, e.score)
			case boundUpper:
				beta = min(beta, e.score)
			}
			if alpha >= beta {
				return e.score
			}
		}
	}
	alphaOrig, betaOrig := alpha, beta

	moves := s.ordered(b)
	maximizing := b.SideToMove() == game.White
	var best float64
	if maximizing {
		best = LossScore - 1
		for _, mv := range moves {
			rev := b.DoMove(mv)
			value := s.search(b, depth-1, alpha, beta)
			b.ReverseMove(rev)
			best = max(best, value)
			alpha = max(alpha, value)
			if alpha >= beta {
				break
			}
		}
	} else {
		best = WinScore + 1
		for _, mv := range moves {
			rev := b.DoMove(mv)
			value := s.search(b, depth-1, alpha, beta)
			b.ReverseMove(rev)
			best = min(best, value)
			beta = min(beta, value)
			if alpha >= beta {
				break
			}
		}
	}

	if s.table != nil {
		kind := boundExact
		if best <= alphaOrig {
			kind = boundUpper
		} else if best >= betaOrig {
			kind = boundLower
		}
		s.table[key] = ttEntry{depth: depth, score: best, kind: kind}
	}
	return best
}

// ordered returns the legal moves with the active (immediately winning)
// moves in front when the board exposes them.
func (s *alphaBeta[M, R]) ordered(b game.EvalBoard[M, R]) []M {
	moves := b.GenerateMoves(nil)
	if s.ext == nil {
		return moves
	}
	active := s.ext.ActiveMoves(nil)
	if len(active) == 0 {
		return moves
	}
	isActive := make(map[M]bool, len(active))
	for _, mv := range active {
		isActive[mv] = true
	}
	ordered := make([]M, 0, len(moves))
	ordered = append(ordered, active...)
	for _, mv := range moves {
		if !isActive[mv] {
			ordered = append(ordered, mv)
		}
	}
	return ordered
}
