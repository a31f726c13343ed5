package main

import (
	"context"
	"hotelhub/config"
	"hotelhub/di"
	"hotelhub/shared/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 10 * time.Second

// Runs a single expiry sweep and exits. Meant for cron style deployments.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Expiry sweep failed")
	}
}

func run() error {
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

	res, err := app.Scanner.RunOnce(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().
		Int("scanned", res.Scanned).
		Int("expired", res.Expired).
		Int("skipped", res.Skipped).
		Int("failed", res.Failed).
		Msg("Expiry sweep finished")

	return nil
}
