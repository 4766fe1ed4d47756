// Package config resolves runtime settings from built-in defaults, an optional TOML
// file, an optional .env file and the process environment, in increasing precedence
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/skyfire/input"
)

// Environment overrides
const (
	EnvSeed     = "SKYFIRE_SEED"
	EnvFPS      = "SKYFIRE_FPS"
	EnvDebug    = "SKYFIRE_DEBUG"
	EnvHoldMS   = "SKYFIRE_HOLD_MS"
	EnvRepeatMS = "SKYFIRE_REPEAT_MS"
)

// Bounds
const (
	MinFPS    = 10
	MaxFPS    = 240
	MinHoldMS = 20
	MaxHoldMS = 2000
)

// Config holds frontend and process settings. Gameplay tuning is not configurable
type Config struct {
	Seed     uint64       `toml:"seed"`
	FPS      int          `toml:"fps"`
	Debug    bool         `toml:"debug"`
	LogDir   string       `toml:"log_dir"`
	Mouse    bool         `toml:"mouse"`
	HoldMS   int          `toml:"hold_ms"`
	RepeatMS int          `toml:"repeat_ms"`
	Keys     input.KeyMap `toml:"keys"`
}

// Default returns the built-in settings. The first key press must outlast the OS initial
// repeat delay (250-600 ms), so a lone tap moves the ship for the whole hold window;
// auto-repeats then refresh with the shorter repeat window
func Default() Config {
	return Config{
		Seed:     0,
		FPS:      60,
		LogDir:   "logs",
		Mouse:    true,
		HoldMS:   500,
		RepeatMS: 150,
		Keys:     input.DefaultKeyMap(),
	}
}

// Load resolves settings. A missing config or env file is not an error
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("config: %s not found, using defaults", path)
		case err != nil:
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				key := undecoded[0]
				if len(key) == 2 && key[0] == "keys" {
					if _, err := input.ActionByName(key[1]); err != nil {
						return Config{}, fmt.Errorf("config %s: [keys] %w", path, err)
					}
				}
				return Config{}, fmt.Errorf("config %s: unknown key %q", path, key.String())
			}
			log.Printf("config: loaded %s", path)
		}
	}

	dotenv := map[string]string{}
	if envFile != "" {
		m, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("env file %s: %w", envFile, err)
		default:
			dotenv = m
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvFPS); ok {
		fps, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFPS, err)
		}
		c.FPS = fps
	}
	if v, ok := lookup(EnvDebug); ok {
		debug, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = debug
	}
	if v, ok := lookup(EnvHoldMS); ok {
		hold, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHoldMS, err)
		}
		c.HoldMS = hold
	}
	if v, ok := lookup(EnvRepeatMS); ok {
		repeat, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRepeatMS, err)
		}
		c.RepeatMS = repeat
	}
	return nil
}

// Validate checks ranges and the keymap
func (c Config) Validate() error {
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("config: fps %d outside [%d, %d]", c.FPS, MinFPS, MaxFPS)
	}
	if c.HoldMS < MinHoldMS || c.HoldMS > MaxHoldMS {
		return fmt.Errorf("config: hold_ms %d outside [%d, %d]", c.HoldMS, MinHoldMS, MaxHoldMS)
	}
	if c.RepeatMS < MinHoldMS || c.RepeatMS > c.HoldMS {
		return fmt.Errorf("config: repeat_ms %d outside [%d, hold_ms %d]", c.RepeatMS, MinHoldMS, c.HoldMS)
	}
	if c.LogDir == "" {
		return fmt.Errorf("config: log_dir is empty")
	}
	if err := c.Keys.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// FrameInterval is the terminal frame period
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// HoldWindow is how long a fresh terminal key press stays asserted
func (c Config) HoldWindow() time.Duration {
	return time.Duration(c.HoldMS) * time.Millisecond
}

// RepeatWindow is how long an auto-repeat press extends a held key
func (c Config) RepeatWindow() time.Duration {
	return time.Duration(c.RepeatMS) * time.Millisecond
}

// LoadKeys replaces the keymap with a standalone TOML keymap file.
// Actions absent from the file keep their stock bindings
func (c *Config) LoadKeys(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("keymap %s: %w", path, err)
	}
	km, err := input.LoadKeyConfig(data)
	if err != nil {
		return fmt.Errorf("keymap %s: %w", path, err)
	}
	c.Keys = km
	return nil
}

// Write saves c as TOML, creating parent directories
func Write(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config create: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("config encode: %w", err)
	}
	return nil
}
