package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyfire/input"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadMissingFilesGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "nope.toml"), filepath.Join(dir, ".env"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
	assert.Equal(t, 500*time.Millisecond, cfg.HoldWindow())
	assert.Equal(t, 150*time.Millisecond, cfg.RepeatWindow())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "skyfire.toml", `
seed = 42
fps = 30
mouse = false

[keys]
shoot = ["space", "j"]
`)
	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 30, cfg.FPS)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, []string{"space", "j"}, cfg.Keys.Shoot)
	assert.Equal(t, input.DefaultKeyMap().Left, cfg.Keys.Left, "unlisted actions keep defaults")
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "skyfire.toml", "speed = 9000\n")
	_, err := Load(path, "")
	assert.ErrorContains(t, err, "speed")
}

func TestLoadRejectsUnknownAction(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "skyfire.toml", "[keys]\njump = [\"w\"]\n")
	_, err := Load(path, "")
	assert.ErrorContains(t, err, `unknown action: "jump"`)
}

func TestLoadKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "keys.toml", `
left = ["h"]
right = ["l"]
`)
	cfg := Default()
	require.NoError(t, cfg.LoadKeys(path))
	assert.Equal(t, []string{"h"}, cfg.Keys.Left)
	assert.Equal(t, []string{"l"}, cfg.Keys.Right)
	assert.Equal(t, input.DefaultKeyMap().Shoot, cfg.Keys.Shoot)
	assert.NoError(t, cfg.Validate())

	bad := writeFile(t, dir, "bad.toml", `fly = ["w"]`)
	assert.ErrorContains(t, cfg.LoadKeys(bad), `unknown action: "fly"`)
	assert.Equal(t, []string{"h"}, cfg.Keys.Left, "failed load leaves the keymap untouched")

	assert.Error(t, cfg.LoadKeys(filepath.Join(dir, "missing.toml")))
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "skyfire.toml", "fps = = 3\n")
	_, err := Load(path, "")
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "skyfire.toml", "fps = 30\nseed = 1\n")
	env := writeFile(t, dir, ".env", "SKYFIRE_FPS=90\nSKYFIRE_HOLD_MS=150\nSKYFIRE_SEED=5\n")
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvDebug, "true")

	cfg, err := Load(path, env)
	require.NoError(t, err)

	assert.Equal(t, 90, cfg.FPS, ".env beats the file")
	assert.Equal(t, 150, cfg.HoldMS)
	assert.Equal(t, uint64(7), cfg.Seed, "process env beats .env")
	assert.True(t, cfg.Debug)
}

func TestEnvParseErrors(t *testing.T) {
	t.Setenv(EnvFPS, "fast")
	_, err := Load("", "")
	assert.ErrorContains(t, err, EnvFPS)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"fps too low", func(c *Config) { c.FPS = 5 }},
		{"fps too high", func(c *Config) { c.FPS = 500 }},
		{"hold too short", func(c *Config) { c.HoldMS = 1 }},
		{"repeat above hold", func(c *Config) { c.RepeatMS = c.HoldMS + 1 }},
		{"repeat too short", func(c *Config) { c.RepeatMS = 1 }},
		{"empty log dir", func(c *Config) { c.LogDir = "" }},
		{"no quit key", func(c *Config) { c.Keys.Quit = nil }},
		{"shared key", func(c *Config) { c.Keys.Left = []string{"space"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, Default().Validate())
}

func TestWriteThenLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "skyfire.toml")

	want := Default()
	want.Seed = 99
	want.Keys.Quit = []string{"esc"}
	require.NoError(t, Write(path, want))

	got, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
