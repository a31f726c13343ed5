package main

import (
	"context"
	"hotelhub/config"
	"hotelhub/di"
	"hotelhub/helper"
	"hotelhub/shared/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const closeTimeout = 10 * time.Second

// @title Hotelhub Contract API
// @version 1.0
// @description Hotel owner contract lifecycle service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("Service stopped with error")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := di.InitializeApp()

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()

		if err := app.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("Failed to release resources")
		}
	}()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return app.HTTP.Serve(groupCtx)
	})

	if cfg.Scanner.Enable {
		group.Go(func() error {
			return app.Scanner.Run(groupCtx)
		})
	} else {
		log.Info().Msg("Expiry scanner disabled")
	}

	return group.Wait() //nolint:wrapcheck
}
