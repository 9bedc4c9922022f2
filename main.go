package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/partitura/partitura_admin/internal"
	"github.com/partitura/partitura_admin/internal/api"
	"github.com/partitura/partitura_admin/internal/console"
	"github.com/partitura/partitura_admin/internal/session"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if os.Getenv("PARTITURA_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	config, err := internal.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
		return
	}

	sess := session.New(session.NewStore(config.State.Dir))
	if err := sess.Restore(); err != nil {
		log.Warn().Err(err).Msg("Could not restore saved session")
	}

	client := api.New(config.API.BaseURL, config.API.Timeout, sess)

	term, err := console.New(client, os.Stdout, config.UI.Color, config.UI.PageSize)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing console")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := term.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Console terminated with error")
	}
}
