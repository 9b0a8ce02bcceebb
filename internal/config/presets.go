package config

import (
	"fmt"
	"sort"
)

// Presets trade smoothness for power use. Zero fields keep the base value.
var Presets = map[string]*Config{
	"smooth":   {FPS: 60, Opacity: 0.35},
	"balanced": {FPS: 30, Opacity: 0.35},
	"battery":  {FPS: 15, Opacity: 0.25, FadeMS: 250},
}

// GetPreset returns the defaults with the named preset applied, or nil.
func GetPreset(name string) *Config {
	cfg := DefaultConfig()
	if err := cfg.Apply(name); err != nil {
		return nil
	}
	return cfg
}

// Apply overlays the named preset onto c.
func (c *Config) Apply(name string) error {
	p, ok := Presets[name]
	if !ok {
		return fmt.Errorf("%w: unknown preset %q", ErrInvalid, name)
	}
	if p.FPS != 0 {
		c.FPS = p.FPS
	}
	if p.Opacity != 0 {
		c.Opacity = p.Opacity
	}
	if p.FadeMS != 0 {
		c.FadeMS = p.FadeMS
	}
	return nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
