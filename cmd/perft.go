package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"boardgame/game"
	"boardgame/games/connectfour"
	"boardgame/games/tictactoe"
	"boardgame/searcher"
)

func Perft() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perft {tictactoe | connectfour}",
		Short: "Count game-tree nodes to a fixed depth",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			depth, _ := cmd.Flags().GetInt("depth")
			divide, _ := cmd.Flags().GetBool("divide")

			switch args[0] {
			case "tictactoe":
				runPerft[tictactoe.Move, tictactoe.Reverse](tictactoe.NewBoard(), depth, divide)
			case "connectfour":
				runPerft[connectfour.Move, connectfour.Reverse](connectfour.NewBoard(), depth, divide)
			default:
				return fmt.Errorf("unknown game %q", args[0])
			}
			return nil
		},
	}

	cmd.Flags().IntP("depth", "d", 5, "search depth in plies")
	cmd.Flags().Bool("divide", false, "split the count by root move")

	return cmd
}

func runPerft[M comparable, R any](b game.Board[M, R], depth int, divide bool) {
	start := time.Now()
	var nodes uint64
	if divide {
		counts := searcher.Divide(b, depth)
		moves := make([]M, 0, len(counts))
		for mv := range counts {
			moves = append(moves, mv)
		}
		sort.Slice(moves, func(i, j int) bool {
			return fmt.Sprint(moves[i]) < fmt.Sprint(moves[j])
		})
		for _, mv := range moves {
			fmt.Printf("%v: %d\n", mv, counts[mv])
			nodes += counts[mv]
		}
	} else {
		nodes = searcher.Perft(b, depth)
	}
	elapsed := time.Since(start)
	fmt.Printf("perft(%d) = %d in %s\n", depth, nodes, elapsed.Round(time.Millisecond))
}
