package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/dino-run/internal/assets"
	"github.com/vovakirdan/dino-run/internal/config"
	"github.com/vovakirdan/dino-run/internal/event"
	"github.com/vovakirdan/dino-run/internal/expression"
	"github.com/vovakirdan/dino-run/internal/storage"
)

// newLogger builds the process logger. Terminal frontends pass io.Discard as
// fallback so log lines never land on the alternate screen.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", flagLogLevel, err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the game config: file, then difficulty preset.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadSprites starts filling the sprite handles in the background. Sessions
// may start before they are ready; unready sprites are simply not drawn.
func loadSprites(ctx context.Context, logger *log.Logger) (*assets.Set, error) {
	sheet := assets.DefaultSheet()
	if flagSprites != "" {
		var err error
		if sheet, err = assets.LoadSheet(flagSprites); err != nil {
			return nil, err
		}
	}

	set := assets.NewSet()
	wait := assets.LoadAsync(ctx, sheet, set)
	go func() {
		if err := wait(); err != nil {
			logger.Warn("sprites not loaded", "err", err)
		}
	}()
	return set, nil
}

// openStore opens the scores database. Failure is not fatal: the game runs
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func playerName() string {
	if flagName != "" {
		return flagName
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "player"
}

// startFeeds connects the --feed and --feed-addr sources to the bus.
// The returned group finishes when every feed has ended.
func startFeeds(ctx context.Context, cfg config.Config, bus *event.Bus, logger *log.Logger) (*errgroup.Group, error) {
	det := expression.NewDetector(cfg.Detection.Threshold, bus, logger.WithPrefix("feed"))
	g, ctx := errgroup.WithContext(ctx)

	if flagFeedAddr != "" {
		srv, err := det.Listen(flagFeedAddr)
		if err != nil {
			return nil, err
		}
		logger.Info("accepting happiness feed", "addr", srv.Addr().String())
		g.Go(func() error { return srv.Serve(ctx) })
	}

	if flagFeed != "" {
		path := flagFeed
		g.Go(func() error {
			err := det.ConsumeFile(ctx, path)
			if err != nil && ctx.Err() == nil {
				logger.Warn("happiness feed stopped", "path", path, "err", err)
			}
			return nil
		})
	}
	return g, nil
}
