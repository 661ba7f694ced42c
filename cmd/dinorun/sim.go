package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-run/internal/core"
	"github.com/vovakirdan/dino-run/internal/event"
	"github.com/vovakirdan/dino-run/internal/games/dino"
	"github.com/vovakirdan/dino-run/internal/loop"
	"github.com/vovakirdan/dino-run/internal/room"
)

var (
	flagAutopilot bool
	flagMaxFrames int
	flagSave      bool
	flagViewportW float64
	flagViewportH float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session and print the score",
	Long: `Run one session without drawing anything. Frames run at --fps
(0 runs them back to back). Jumps come from --feed, --feed-addr or the
autopilot. The session ends on collision, after --max-frames, or on Ctrl+C.

Examples:
  dinorun sim --fps 0
  dinorun sim --autopilot --fps 0 --max-frames 10000
  echo '{"happy":0.995}' | dinorun sim --feed /dev/stdin`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Jump automatically before each obstacle")
	simCmd.Flags().IntVar(&flagMaxFrames, "max-frames", 0, "Stop after this many frames (0 = until collision)")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Save the score to the database")
	simCmd.Flags().Float64Var(&flagViewportW, "width", 640, "Viewport width in world pixels")
	simCmd.Flags().Float64Var(&flagViewportH, "height", 352, "Viewport height in world pixels")
}

func runSim(cmd *cobra.Command, _ []string) error {
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

	bus := event.NewBus()
	feeds, err := startFeeds(ctx, cfg, bus, logger)
	if err != nil {
		return err
	}

	var final *int
	reporters := []dino.Reporter{dino.ReporterFuncs{
		Termination: func(score int) { final = &score },
	}}
	var sched *dino.Scheduler
	if flagMaxFrames > 0 {
		reporters = append(reporters, dino.ReporterFuncs{Score: func(score int) {
			if score >= flagMaxFrames {
				sched.Stop()
			}
		}})
	}
	var pilot *dino.Autopilot
	if flagAutopilot {
		pilot = &dino.Autopilot{Trigger: bus, Lead: dino.DefaultAutopilotLead}
		reporters = append(reporters, pilot)
	}

	frames := loop.NewTicker(flagFPS)
	sched = dino.NewSession(dino.SessionConfig{
		Config:    cfg,
		ViewportW: flagViewportW,
		ViewportH: flagViewportH,
		Surface:   core.NullSurface,
		Frames:    frames,
		Trigger:   bus,
		Reporter:  dino.Reporters(reporters...),
		Logger:    logger,
	})
	if pilot != nil {
		pilot.Attach(sched)
	}

	sched.Start()
	_, runErr := frames.Run(ctx)
	sched.Stop()
	stop()
	if err := feeds.Wait(); err != nil {
		logger.Warn("feed error", "err", err)
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	state := sched.Snapshot()
	out := cmd.OutOrStdout()
	if final != nil {
		fmt.Fprintf(out, "collision at frame %d (speed %.1f)\n", *final, state.Speed)
	} else {
		fmt.Fprintf(out, "stopped at frame %d (speed %.1f)\n", state.Score, state.Speed)
	}
	if pilot != nil {
		fmt.Fprintf(out, "autopilot jumps: %d\n", pilot.Jumps())
	}

	if flagSave {
		store := openStore(logger)
		if store == nil {
			return errors.New("scores database unavailable")
		}
		defer store.Close()
		if _, err := store.SaveScore(playerName(), room.NormalizeCode(flagRoom), state.Score); err != nil {
			return err
		}
	}
	return nil
}
