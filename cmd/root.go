// Package cmd wires the command-line interface: perft runs, self-play
// matches and perft benchmarks over the bundled reference games.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "boardgame",
		Short: "Game-agnostic perft, search and self-play tools",
		Args:  cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if cmd.Flag("verbose").Changed {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "Show Debug Information")

	root.AddCommand(Perft())
	root.AddCommand(SelfPlay())
	root.AddCommand(Bench())

	return root
}
