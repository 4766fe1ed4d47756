package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lixenwraith/skyfire/config"
	"github.com/lixenwraith/skyfire/engine"
	"github.com/lixenwraith/skyfire/systems"
	"github.com/lixenwraith/skyfire/window"
)

var (
	configFlag = flag.String("config", "skyfire.toml", "Path to TOML config file")
	envFlag    = flag.String("env", ".env", "Path to .env override file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed (0 = config or time based)")
	scaleFlag  = flag.Float64("scale", 1, "Window scale factor")
	keysFlag   = flag.String("keys", "", "Path to a standalone TOML keymap")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "skyfire-window: %v\n", err)
		os.Exit(2)
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *keysFlag != "" {
		if err := cfg.LoadKeys(*keysFlag); err != nil {
			fmt.Fprintf(os.Stderr, "skyfire-window: %v\n", err)
			os.Exit(2)
		}
	}
	// The window leaves the terminal free, so debug logs go to stderr
	if !cfg.Debug {
		log.SetOutput(io.Discard)
	}

	seed := engine.ResolveSeed(cfg.Seed)
	log.Printf("window frontend seed=%d", seed)
	ctx := engine.NewGameContext(engine.NewRand(seed))
	systems.Install(ctx)

	game, err := window.NewGame(ctx, cfg.Keys, engine.NewRand(seed+1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "skyfire-window: %v\n", err)
		os.Exit(1)
	}
	if err := window.Run(game, "Skyfire", *scaleFlag); err != nil {
		fmt.Fprintf(os.Stderr, "skyfire-window: %v\n", err)
		os.Exit(1)
	}
}
