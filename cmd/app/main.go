package main

import (
	"drive4less/config"
	"drive4less/di"
	"drive4less/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := cfg.ValidateGateway(); err != nil {
		log.Fatal().Err(err).Msg("Invalid service configuration")
	}

	http := di.InitializeService()
	http.Serve()
}
