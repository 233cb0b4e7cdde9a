package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/IlikeChooros/go-dograbbit/internal/usecase"
)

func main() {
	if err := usecase.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, err := usecase.ParseArenaFlags(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	usecase.SetupLogging(os.Stderr, cfg.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Interrupted arenas still print the summary of the finished games
	if _, err := usecase.RunArena(ctx, cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("arena-failed")
		stop()
		os.Exit(1)
	}
}
