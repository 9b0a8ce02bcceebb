package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexgh05/ITEC-Project-sub000/internal/viewport"
)

const (
	DefaultFPS      = 30
	DefaultOpacity  = 0.35
	DefaultWidth    = 1280
	DefaultHeight   = 720
	DefaultDataDir  = ".backdrop"
	DefaultAddr     = "127.0.0.1:8080"
	DefaultLogLevel = "info"
	DefaultFadeMS   = 500
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	FPS      int     `yaml:"fps"`
	Opacity  float64 `yaml:"opacity"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	DataDir  string  `yaml:"data_dir"`
	Seed     int64   `yaml:"seed"`
	Addr     string  `yaml:"addr"`
	LogLevel string  `yaml:"log_level"`
	FadeMS   int     `yaml:"fade_ms"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:      DefaultFPS,
		Opacity:  DefaultOpacity,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		DataDir:  DefaultDataDir,
		Addr:     DefaultAddr,
		LogLevel: DefaultLogLevel,
		FadeMS:   DefaultFadeMS,
	}
}

// Load reads a yaml file over the defaults. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first out-of-range field wrapped in ErrInvalid.
// A zero seed is valid and means an unseeded source.
func (c *Config) Validate() error {
	switch {
	case c.FPS <= 0 || c.FPS > 240:
		return fmt.Errorf("%w: fps %d out of range 1..240", ErrInvalid, c.FPS)
	case c.Opacity < 0 || c.Opacity > 1:
		return fmt.Errorf("%w: opacity %g out of range 0..1", ErrInvalid, c.Opacity)
	case c.Width < 0 || c.Height < 0 || c.Width > viewport.MaxSide || c.Height > viewport.MaxSide:
		return fmt.Errorf("%w: size %dx%d out of range 0..%d", ErrInvalid, c.Width, c.Height, viewport.MaxSide)
	case c.FadeMS < 0:
		return fmt.Errorf("%w: negative fade %dms", ErrInvalid, c.FadeMS)
	case c.DataDir == "":
		return fmt.Errorf("%w: empty data_dir", ErrInvalid)
	}
	return nil
}
