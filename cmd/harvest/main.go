package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/harvest/config"
	"github.com/lixenwraith/harvest/core"
)

var (
	configFlag = flag.String("config", "", "YAML config file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 uses config or clock")
	debugFlag  = flag.Bool("debug", false, "Write JSON logs to logs/harvest.log")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	if err := execute(); err != nil {
		fmt.Fprintf(os.Stderr, "harvest: %v\n", err)
		os.Exit(1)
	}
}

// execute runs the game; its deferred cleanup finishes before main exits
func execute() error {
	defer core.Recover()

	logger, logFile, err := setupLogging(logDir, *debugFlag)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag, config.DefaultEnvFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	return run(cfg, logger, *muteFlag)
}

func run(cfg *config.Config, logger zerolog.Logger, mute bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	// Restore the terminal before any crash report is printed
	core.SetCrashHook(screen.Fini)
	defer screen.Fini()

	g, err := newGame(cfg, screen, logger, mute)
	if err != nil {
		return err
	}
	defer g.shutdown()

	logger.Info().
		Str("session", g.session.SessionID()).
		Dur("duration", cfg.Duration).
		Int("goal", cfg.Goal).
		Msg("harvest started")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, 100)
	group.Go(func() error {
		defer core.Recover()
		screen.ChannelEvents(events, ctx.Done())
		return nil
	})

	group.Go(func() error {
		defer core.Recover()
		defer cancel()

		ticker := time.NewTicker(cfg.FrameInterval)
		defer ticker.Stop()
		return g.run(ctx, events, ticker.C)
	})

	return group.Wait()
}
