package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mindful-labs/mood-tracker/trackerservice"
)

func main() {
	if err := trackerservice.Run(); err != nil {
		log.Error().Err(err).Msg("mood-service exited with error")
		os.Exit(1)
	}
}
