package core

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	defaults := DefaultConfig("gl-mvp", APIOpenGL)

	cfg, err := LoadConfig("", defaults)
	require.NoError(t, err)
	assert.Equal(t, defaults, cfg)
	assert.Equal(t, RGB(0.1, 0.1, 0.2), cfg.ClearOr(RGB(0.1, 0.1, 0.2)))
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	data := `
particles = 4096
log_level = "debug"
seed = 42
texture = "assets/bricks.png"

[window]
width = 1024
vsync = false

[clear_color]
r = 0.2
g = 0.3
b = 0.4
a = 1.0
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	defaults := DefaultConfig("wgpu-compute", APINone)
	cfg, err := LoadConfig(path, defaults)
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.Particles)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, defaults.Window.Height, cfg.Window.Height)
	assert.False(t, cfg.Window.VSync)
	assert.Equal(t, "wgpu-compute", cfg.Window.Title)
	assert.Equal(t, APINone, cfg.Window.API)
	assert.Equal(t, defaults.Instances, cfg.Instances)
	assert.Equal(t, Color{0.2, 0.3, 0.4, 1}, cfg.ClearOr(ColorBlack))
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "assets/bricks.png", cfg.Texture)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	defaults := DefaultConfig("x", APIOpenGL)

	_, err := LoadConfig(filepath.Join(dir, "missing.toml"), defaults)
	assert.Error(t, err)

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("bogus = 1\n"), 0o644))
	_, err = LoadConfig(unknown, defaults)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.toml")
	require.NoError(t, os.WriteFile(invalid, []byte("particles = 0\n"), 0o644))
	_, err = LoadConfig(invalid, defaults)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigFromFlags(t *testing.T) {
	defaults := DefaultConfig("gl-lighting", APIOpenGL)
	cfg, err := ConfigFromFlags([]string{"-log-level", "warn"}, defaults)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)

	_, err = ConfigFromFlags([]string{"-nope"}, defaults)
	assert.Error(t, err)
}

func TestClock(t *testing.T) {
	now := 10.0
	c := NewClockFunc(0.016, func() float64 { return now })

	now = 10.5
	assert.False(t, c.Tick())
	assert.InDelta(t, 0.5, c.Elapsed, 1e-6)
	assert.InDelta(t, 0.5, c.Delta, 1e-6)
	assert.InDelta(t, 0.016, c.Fixed, 1e-6)

	now = 11.0
	assert.True(t, c.Tick(), "FPS refreshes after one second")
	assert.InDelta(t, 2.0, c.FPS(), 1e-9)
	assert.InDelta(t, 0.032, c.Fixed, 1e-6)
	assert.Equal(t, uint64(2), c.Frames)
}

func TestClockElapsedIgnoresFrameRate(t *testing.T) {
	now := 0.0
	c := NewClockFunc(0.016, func() float64 { return now })

	// One second at 144 Hz.
	for i := 1; i <= 144; i++ {
		now = float64(i) / 144
		c.Tick()
	}
	assert.InDelta(t, 1.0, c.Elapsed, 1e-5)
	assert.InDelta(t, 144*0.016, c.Fixed, 1e-4)
	assert.Equal(t, uint64(144), c.Frames)
}

func TestViewportAndColor(t *testing.T) {
	assert.Equal(t, float32(2), Viewport{Width: 800, Height: 400}.Aspect())
	assert.Equal(t, float32(1), Viewport{Width: 800}.Aspect())
	assert.True(t, Viewport{Width: 0, Height: 10}.Empty())

	c := RGB8(255, 0, 51)
	assert.Equal(t, [3]float32{1, 0, 0.2}, c.Vec3())
}

func TestLogger(t *testing.T) {
	assert.False(t, Logger().Enabled(t.Context(), slog.LevelError), "silent by default")

	var buf bytes.Buffer
	SetLogger(NewTextLogger(&buf, "warn"))
	defer SetLogger(nil)

	Logger().Info("hidden")
	Logger().Warn("device lost", "reason", "destroyed")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "device lost")
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
}
