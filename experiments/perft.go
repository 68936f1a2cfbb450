// Package experiments measures perft throughput over the board contract
// and records the results as CSV for offline comparison between game
// implementations or revisions.
package experiments

import (
	"time"

	"github.com/rs/zerolog/log"

	"boardgame/game"
	"boardgame/searcher"
)

// PerftRecord is one measured perft run.
type PerftRecord struct {
	Game     string
	Depth    int
	Nodes    uint64
	Duration time.Duration
}

// NodesPerSecond returns the measured throughput.
func (r PerftRecord) NodesPerSecond() float64 {
	seconds := r.Duration.Seconds()
	if seconds <= 0 {
		return 0
	}
	return float64(r.Nodes) / seconds
}

// Measure runs perft on b at every depth from 1 through maxDepth and
// returns one record per depth. The board is reused across depths; each
// run must leave it in its starting position, which the reversible-move
// contract guarantees.
func Measure[M comparable, R any](name string, b game.Board[M, R], maxDepth int) []PerftRecord {
	records := make([]PerftRecord, 0, maxDepth)
	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		nodes := searcher.Perft(b, depth)
		elapsed := time.Since(start)
		log.Debug().Str("game", name).Int("depth", depth).
			Uint64("nodes", nodes).Dur("elapsed", elapsed).Msg("perft measured")
		records = append(records, PerftRecord{
			Game:     name,
			Depth:    depth,
			Nodes:    nodes,
			Duration: elapsed,
		})
	}
	return records
}
