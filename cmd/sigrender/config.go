package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"honnef.co/go/signature"
)

const (
	backendImage = "image"
	backendGG    = "gg"
)

// config is the rendering configuration. It is read from an optional YAML
// file and then overridden by flags.
type config struct {
	Width      int               `yaml:"width"`
	Height     int               `yaml:"height"`
	Backend    string            `yaml:"backend"`
	Format     string            `yaml:"format"`
	Color      string            `yaml:"color"`
	Background string            `yaml:"background"`
	Stroke     signature.Options `yaml:"stroke"`
}

func defaultConfig() config {
	return config{
		Width:   400,
		Height:  200,
		Backend: backendImage,
		Color:   "#000000",
		Stroke:  signature.DefaultOptions(),
	}
}

// loadConfig reads the YAML file at path over the defaults. Keys missing
// from the file keep their default values.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg config) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	switch cfg.Backend {
	case backendImage, backendGG:
	default:
		return fmt.Errorf("unknown backend %q", cfg.Backend)
	}
	if err := cfg.Stroke.Validate(); err != nil {
		return err
	}
	return nil
}

// options returns the stroke options with the configured color applied.
func (cfg config) options() signature.Options {
	opts := cfg.Stroke
	opts.Color = parseColor(cfg.Color, color.Black)
	return opts
}

func (cfg config) background() color.Color {
	return parseColor(cfg.Background, color.Transparent)
}

// parseColor parses a hex color such as "#1a2b3c" or "fff". The empty string
// yields def.
func parseColor(s string, def color.Color) color.Color {
	if s == "" {
		return def
	}
	return gg.Hex(s).Color()
}
