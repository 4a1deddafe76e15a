// Package config loads the game settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/plus3/glass/session"
	"gopkg.in/yaml.v3"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "GLASS_CONFIG"

// Config is the root of the YAML document.
type Config struct {
	Glass   GlassConfig   `yaml:"glass"`
	Gravity GravityConfig `yaml:"gravity"`
	Window  WindowConfig  `yaml:"window"`
	// Seed fixes the piece sequence; 0 picks a random seed.
	Seed uint64 `yaml:"seed"`
}

type GlassConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

type WindowConfig struct {
	CellSize int `yaml:"cell_size"`
	TPS      int `yaml:"tps"`
}

// Default returns the settings used when no file is provided.
func Default() *Config {
	return &Config{
		Glass:   GlassConfig{Width: 12, Height: 26},
		Gravity: GravityConfig{IntervalMS: 1000},
		Window:  WindowConfig{CellSize: 24, TPS: 60},
	}
}

// Load reads a YAML file over the defaults. An empty path falls back to
// $GLASS_CONFIG; when that is unset too the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Glass.Width < 4 {
		errs = append(errs, fmt.Errorf("glass.width must be at least 4, got %d", c.Glass.Width))
	}
	if c.Glass.Height < 4 {
		errs = append(errs, fmt.Errorf("glass.height must be at least 4, got %d", c.Glass.Height))
	}
	if c.Gravity.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("gravity.interval_ms must be positive, got %d", c.Gravity.IntervalMS))
	}
	if c.Window.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("window.cell_size must be positive, got %d", c.Window.CellSize))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", c.Window.TPS))
	}
	return errors.Join(errs...)
}

// Session converts the settings for session.New.
func (c *Config) Session() session.Config {
	return session.Config{
		Width:           c.Glass.Width,
		Height:          c.Glass.Height,
		GravityInterval: time.Duration(c.Gravity.IntervalMS) * time.Millisecond,
	}
}
