package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/echotrace/echotrace/internal/config"
	"github.com/echotrace/echotrace/internal/observability"
	"github.com/echotrace/echotrace/internal/server"
)

func main() {
	cfg := config.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	app, err := observability.NewApplication(cfg.Observability)
	if err != nil {
		log.Fatal().Err(err).Msg("new relic application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, log, app)
	log.Info().Str("port", cfg.Server.Port).Str("env", cfg.Primary.Env).Msg("starting server")
	if err := srv.Start(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("server exited")
		os.Exit(1)
	}
}
