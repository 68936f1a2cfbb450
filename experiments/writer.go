package experiments

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists measurement records under a timestamped run directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a subdirectory of dir named by the current UTC
// timestamp and returns a Writer rooted there.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// BaseDir returns the run directory records are written into.
func (w *Writer) BaseDir() string {
	return w.baseDir
}

// WritePerftRecords writes records to perft.csv in the run directory.
func (w *Writer) WritePerftRecords(records []PerftRecord) error {
	path := filepath.Join(w.baseDir, "perft.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create perft records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "depth", "nodes", "duration_ns", "nodes_per_second"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write perft records header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.Game,
			strconv.Itoa(r.Depth),
			strconv.FormatUint(r.Nodes, 10),
			strconv.FormatInt(r.Duration.Nanoseconds(), 10),
			strconv.FormatFloat(r.NodesPerSecond(), 'f', 0, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write perft record: %w", err)
		}
	}
	return writer.Error()
}
