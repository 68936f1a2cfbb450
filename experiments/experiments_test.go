package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"boardgame/games/tictactoe"
)

func TestMeasure(t *testing.T) {
	b := tictactoe.NewBoard()
	records := Measure[tictactoe.Move, tictactoe.Reverse]("tictactoe", b, 3)

	require.Len(t, records, 3)
	wantNodes := []uint64{9, 72, 504}
	for i, r := range records {
		require.Equal(t, "tictactoe", r.Game)
		require.Equal(t, i+1, r.Depth)
		require.Equal(t, wantNodes[i], r.Nodes)
	}
}

func TestNodesPerSecond(t *testing.T) {
	r := PerftRecord{Nodes: 1000, Duration: 2 * time.Second}
	require.Equal(t, 500.0, r.NodesPerSecond())

	require.Zero(t, PerftRecord{Nodes: 1000}.NodesPerSecond(),
		"zero duration must not divide by zero")
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	records := []PerftRecord{
		{Game: "tictactoe", Depth: 1, Nodes: 9, Duration: time.Millisecond},
		{Game: "tictactoe", Depth: 2, Nodes: 72, Duration: 2 * time.Millisecond},
	}
	require.NoError(t, w.WritePerftRecords(records))

	f, err := os.Open(filepath.Join(w.BaseDir(), "perft.csv"))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"game", "depth", "nodes", "duration_ns", "nodes_per_second"}, rows[0])
	require.Equal(t, []string{"tictactoe", "1", "9", "1000000", "9000"}, rows[1])
	require.Equal(t, []string{"tictactoe", "2", "72", "2000000", "36000"}, rows[2])
}
