package main

import (
	"camping/config"
	"camping/di"
	"camping/helper"
	"camping/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Camping API
// @version 1.0
// @description Camping spot rental service: accounts, listings and bookings.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
