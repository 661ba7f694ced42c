package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-run/internal/platform/tui"
	"github.com/vovakirdan/dino-run/internal/room"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Dino Run SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a menu. The command passed
over SSH picks the room; players in the same room see each other's live
and final scores. All users share the same leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dinorun/host_key

Examples:
  dinorun serve                           # Listen on :23234
  dinorun serve --ssh :2222               # Listen on port 2222
  dinorun serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh -t localhost -p 23234           # lobby
  ssh -t localhost -p 23234 dunes     # room "dunes"`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
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

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}, tui.Deps{
		Config:  cfg,
		Sprites: sprites,
		Store:   store,
		Hub:     room.NewHub(logger.WithPrefix("room")),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Starting Dino Run SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}
