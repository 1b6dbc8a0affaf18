package core

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunables every sample reads at startup. Values not present
// in the TOML file keep the sample's defaults.
type Config struct {
	Window    WindowConfig `toml:"window"`
	Clear     *Color       `toml:"clear_color"`
	Particles int          `toml:"particles"`
	Instances int          `toml:"instances"`
	TimeStep  float32      `toml:"time_step"`
	LogLevel  string       `toml:"log_level"`

	// Texture replaces the procedural checkerboard in the textured samples.
	Texture string `toml:"texture"`
	// Seed fixes the random particle and instance layouts; zero picks a new
	// one every run.
	Seed uint64 `toml:"seed"`
}

// DefaultConfig returns the defaults shared by all samples.
func DefaultConfig(title string, api ClientAPI) Config {
	window := DefaultWindowConfig()
	window.Title = title
	window.API = api
	return Config{
		Window:    window,
		Particles: 1024,
		Instances: 800,
		TimeStep:  0.016,
		LogLevel:  "info",
	}
}

// ClearOr returns the configured clear colour, or def when none is set.
func (c Config) ClearOr(def Color) Color {
	if c.Clear != nil {
		return *c.Clear
	}
	return def
}

func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Particles <= 0:
		return fmt.Errorf("%w: particles must be positive, got %d", ErrInvalidConfig, c.Particles)
	case c.Instances <= 0:
		return fmt.Errorf("%w: instances must be positive, got %d", ErrInvalidConfig, c.Instances)
	case c.TimeStep <= 0:
		return fmt.Errorf("%w: time_step must be positive, got %v", ErrInvalidConfig, c.TimeStep)
	}
	return nil
}

// LoadConfig overlays the TOML file at path onto defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string, defaults Config) (Config, error) {
	cfg := defaults
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := DecodeConfig(data, &cfg); err != nil {
		return defaults, fmt.Errorf("parse config %s: %w", path, err)
	}
	// The client API is fixed by the binary, never by the file.
	cfg.Window.API = defaults.Window.API
	return cfg, cfg.Validate()
}

func DecodeConfig(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// ConfigFromFlags parses the command line (-config, -log-level) and loads
// the resulting config.
func ConfigFromFlags(args []string, defaults Config) (Config, error) {
	fs := flag.NewFlagSet(defaults.Window.Title, flag.ContinueOnError)
	path := fs.String("config", "", "path to a TOML config file")
	level := fs.String("log-level", "", "log level override (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return defaults, err
	}

	cfg, err := LoadConfig(*path, defaults)
	if err != nil {
		return cfg, err
	}
	if *level != "" {
		cfg.LogLevel = *level
	}
	return cfg, nil
}
