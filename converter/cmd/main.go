package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/zklight/sc-witness/converter"
	cfgtypes "github.com/zklight/sc-witness/converter/types"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	config := cfgtypes.NewConfig(os.Args[1:]...)
	if err := converter.Run(config, logger); err != nil {
		logger.Fatal().Err(err).Msg("step conversion failed")
	}
}
