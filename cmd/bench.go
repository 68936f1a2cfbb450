package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"boardgame/experiments"
	"boardgame/games/connectfour"
	"boardgame/games/tictactoe"
)

func Bench() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench {tictactoe | connectfour}",
		Short: "Measure perft throughput and record it as CSV",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			maxDepth, _ := cmd.Flags().GetInt("max-depth")
			out, _ := cmd.Flags().GetString("out")

			var records []experiments.PerftRecord
			switch args[0] {
			case "tictactoe":
				records = experiments.Measure[tictactoe.Move, tictactoe.Reverse](args[0], tictactoe.NewBoard(), maxDepth)
			case "connectfour":
				records = experiments.Measure[connectfour.Move, connectfour.Reverse](args[0], connectfour.NewBoard(), maxDepth)
			default:
				return fmt.Errorf("unknown game %q", args[0])
			}

			for _, r := range records {
				fmt.Printf("depth %d: %d nodes in %s (%.0f nodes/s)\n",
					r.Depth, r.Nodes, r.Duration, r.NodesPerSecond())
			}

			writer, err := experiments.NewWriter(out)
			if err != nil {
				return err
			}
			if err := writer.WritePerftRecords(records); err != nil {
				return err
			}
			fmt.Printf("records written to %s\n", writer.BaseDir())
			return nil
		},
	}

	cmd.Flags().Int("max-depth", 6, "measure perft at every depth up to this")
	cmd.Flags().String("out", "experiments", "directory to write run records under")

	return cmd
}
