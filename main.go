package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"boardgame/cmd"
)

func main() {
	if err := cmd.Root().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
