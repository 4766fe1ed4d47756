package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/skyfire/config"
	"github.com/lixenwraith/skyfire/engine"
	"github.com/lixenwraith/skyfire/systems"
	"github.com/lixenwraith/skyfire/terminal"
)

var (
	configFlag      = flag.String("config", "skyfire.toml", "Path to TOML config file")
	envFlag         = flag.String("env", ".env", "Path to .env override file")
	debugFlag       = flag.Bool("debug", false, "Write logs to the log directory")
	seedFlag        = flag.Uint64("seed", 0, "Random seed (0 = config or time based)")
	noMouseFlag     = flag.Bool("no-mouse", false, "Disable mouse steering")
	keysFlag        = flag.String("keys", "", "Path to a standalone TOML keymap")
	writeConfigFlag = flag.String("write-config", "", "Write the resolved config to this path and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skyfire: %v\n", err)
		os.Exit(2)
	}
	if *debugFlag {
		cfg.Debug = true
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *noMouseFlag {
		cfg.Mouse = false
	}
	if *keysFlag != "" {
		if err := cfg.LoadKeys(*keysFlag); err != nil {
			fmt.Fprintf(os.Stderr, "skyfire: %v\n", err)
			os.Exit(2)
		}
	}

	if *writeConfigFlag != "" {
		if err := config.Write(*writeConfigFlag, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "skyfire: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logDir = cfg.LogDir
	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "skyfire: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSKYFIRE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.HideCursor()
	if cfg.Mouse {
		screen.EnableMouse()
	}

	seed := engine.ResolveSeed(cfg.Seed)
	ctx := engine.NewGameContext(engine.NewRand(seed))
	systems.Install(ctx)

	front, err := terminal.NewFrontend(screen, ctx, terminal.Options{
		Keys:   cfg.Keys,
		Hold:   cfg.HoldWindow(),
		Repeat: cfg.RepeatWindow(),
		Mouse:  cfg.Mouse,
		Stars:  engine.NewRand(seed + 1),
	})
	if err != nil {
		return err
	}
	log.Printf("terminal frontend ready (fps=%d seed=%d mouse=%v)", cfg.FPS, seed, cfg.Mouse)

	eventChan := make(chan tcell.Event, 256)
	quit := make(chan struct{})
	// Input polling uses its own goroutine; all session mutation stays on this one
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// PollEvent returns nil once the screen is finalized
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	clock := engine.NewMonotonicTimeProvider()
	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	front.Frame(clock.Now())
	for {
		select {
		case ev := <-eventChan:
			if !front.HandleEvent(ev, clock.Now()) {
				log.Printf("quit (score=%d frames=%d)", ctx.State.Score, front.Loop().Frames())
				return nil
			}
		case <-frameTicker.C:
			front.Frame(clock.Now())
		}
	}
}
