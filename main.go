package main

import (
	"context"
	"os"

	"github.com/moh-adedamola/portfolio/cli"
	"github.com/moh-adedamola/portfolio/config"
	"github.com/rs/zerolog/log"
)

func main() {
	cli.SetupLogging(config.New(), os.Stderr)

	// Load environment variables from .env file
	config.LoadEnvFiles()

	if err := cli.Execute(context.Background(), os.Args[1:]); err != nil {
		log.Error().Err(err).Msg("portfolio failed")
		os.Exit(1)
	}
}
