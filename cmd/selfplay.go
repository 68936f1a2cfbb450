package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"boardgame/engine"
	"boardgame/game"
	"boardgame/games/connectfour"
	"boardgame/games/tictactoe"
	"boardgame/searcher"
)

type agentConfig struct {
	Type  string `yaml:"type"` // "random" or "search"
	Depth int    `yaml:"depth"`
	Seed  uint64 `yaml:"seed"`
}

type selfPlayConfig struct {
	Game     string      `yaml:"game"`
	Games    int         `yaml:"games"`
	MaxPlies int         `yaml:"max_plies"`
	White    agentConfig `yaml:"white"`
	Black    agentConfig `yaml:"black"`
}

func SelfPlay() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play a series of games between two configured agents",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			var cfg selfPlayConfig
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return fmt.Errorf("failed to parse config: %w", err)
			}
			if cfg.Games <= 0 {
				cfg.Games = 1
			}

			switch cfg.Game {
			case "tictactoe":
				return runSelfPlay(func() game.Board[tictactoe.Move, tictactoe.Reverse] {
					return tictactoe.NewBoard()
				}, cfg)
			case "connectfour":
				return runSelfPlay(func() game.Board[connectfour.Move, connectfour.Reverse] {
					return connectfour.NewBoard()
				}, cfg)
			default:
				return fmt.Errorf("unknown game %q", cfg.Game)
			}
		},
	}

	cmd.Flags().StringP("config", "c", "selfplay.yaml", "self-play configuration file")

	return cmd
}

func runSelfPlay[M comparable, R any](newBoard func() game.Board[M, R], cfg selfPlayConfig) error {
	var wins [3]int // indexed by game.GameResult
	aborted := 0

	for i := 0; i < cfg.Games; i++ {
		// Offset seeds per game so random agents do not replay the
		// same game cfg.Games times.
		white, err := newAgent[M, R](cfg.White, uint64(i))
		if err != nil {
			return fmt.Errorf("white agent: %w", err)
		}
		black, err := newAgent[M, R](cfg.Black, uint64(i))
		if err != nil {
			return fmt.Errorf("black agent: %w", err)
		}

		result, plies, finished := engine.NewLocal(newBoard(), white, black, cfg.MaxPlies).Run()
		if !finished {
			aborted++
			continue
		}
		wins[result]++
		log.Info().Int("game", i+1).Stringer("result", result).Int("plies", plies).Msg("game finished")
	}

	fmt.Printf("white %d, black %d, draws %d", wins[game.WhiteWin], wins[game.BlackWin], wins[game.Draw])
	if aborted > 0 {
		fmt.Printf(", aborted %d", aborted)
	}
	fmt.Println()
	return nil
}

func newAgent[M comparable, R any](cfg agentConfig, seedOffset uint64) (searcher.Agent[M, R], error) {
	switch cfg.Type {
	case "random":
		return searcher.NewRandomAgent[M, R](cfg.Seed + seedOffset), nil
	case "search":
		if cfg.Depth <= 0 {
			return nil, fmt.Errorf("search agent needs a positive depth")
		}
		return searcher.NewSearchAgent[M, R](cfg.Depth), nil
	default:
		return nil, fmt.Errorf("unknown agent type %q", cfg.Type)
	}
}
