// Command personas generates historical personas and walks their families.
//
//	personas generate -date 1348 -location England
//	personas open -id <persona> -member 0
//	personas share -date "200 BC" -location Rome -spec spec.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/historical-personas/internal/config"
	"github.com/KirkDiggler/historical-personas/internal/services"
)

const usage = `usage: personas <command> [flags]

commands:
  generate   generate and store one or more personas
  open       open a family member of a stored persona
  back       step back along a navigation journey
  show       print a stored persona
  list       list stored personas, newest first
  share      save a one-shot restore spec and print its ID
`

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := openStores(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open stores", "error", err)
		os.Exit(1)
	}
	defer stores.Close()

	provider, err := services.NewProvider(&services.ProviderConfig{
		PersonaRepository: stores.Personas,
		JourneyRepository: stores.Journeys,
		Logger:            logger,
	})
	if err != nil {
		logger.Error("failed to create services", "error", err)
		os.Exit(1)
	}

	cli := &app{
		provider: provider,
		personas: stores.Personas,
		restores: stores.Restores,
		out:      os.Stdout,
		logger:   logger,
	}
	if err := cli.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("command failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}
