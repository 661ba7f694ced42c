package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/event"
	"github.com/vovakirdan/dino-run/internal/platform/tui"
	"github.com/vovakirdan/dino-run/internal/room"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Dino Run in the terminal.

Controls:
  Space/W/Up - Jump
  R/Enter    - Restart (after game over)
  B/Esc      - Back to menu
  Q/Ctrl+C   - Quit

A happiness feed jumps for you when a sample reaches the threshold:
  dinorun play --feed /tmp/happy.fifo
  dinorun play --feed-addr :7777

Difficulty options:
  easy   - Slower start, gentle ramp
  normal - Default speed and ramp
  hard   - Faster start, steep ramp
  fixed  - No speed ramp`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "dinorun")
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

	rt := core.DefaultConfig()
	rt.TickRate = flagFPS
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW, rt.ScreenH = w, h
	}

	deps := tui.Deps{
		Config:  cfg,
		Sprites: sprites,
		Store:   store,
		Logger:  logger,
	}
	id := tui.Identity{
		Player:  playerName(),
		Room:    room.NormalizeCode(flagRoom),
		Session: room.NewSessionID(),
	}
	runErr := tui.Run(ctx, deps, id, bus, rt)

	stop()
	if err := feeds.Wait(); err != nil {
		logger.Warn("feed error", "err", err)
	}
	return runErr
}
