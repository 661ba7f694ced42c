package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-run/internal/event"
	"github.com/vovakirdan/dino-run/internal/platform/window"
	"github.com/vovakirdan/dino-run/internal/room"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Dino Run in a desktop window.

Controls:
  Space/Up/Click - Jump
  R/Enter        - Retry (after game over)
  Esc            - Exit

The game-over panel offers Retry and Exit buttons.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr, "dinorun")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sprites, err := loadSprites(ctx, logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	bus := event.NewBus()
	feeds, err := startFeeds(ctx, cfg, bus, logger)
	if err != nil {
		return err
	}

	runErr := window.Run(window.Options{
		Config:   cfg,
		Sprites:  sprites,
		Store:    store,
		Bus:      bus,
		Player:   playerName(),
		Room:     room.NormalizeCode(flagRoom),
		TickRate: flagFPS,
		Logger:   logger,
	})

	stop()
	if err := feeds.Wait(); err != nil {
		logger.Warn("feed error", "err", err)
	}
	return runErr
}
