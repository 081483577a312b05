package config

import (
	"errors"

	"github.com/dshills/cellgrid/internal/logging"
	"github.com/dshills/cellgrid/internal/renderer/core"
)

// Viewport modes accepted by RendererConfig.Viewport.
const (
	ViewportFullscreen = "fullscreen"
	ViewportInline     = "inline"
)

// Limits enforced by Validate.
const (
	MaxFPS          = 240
	MaxInlineHeight = 1000
)

// Config is the complete cellgrid configuration.
type Config struct {
	Renderer RendererConfig `toml:"renderer" yaml:"renderer"`
	Theme    Theme          `toml:"theme" yaml:"theme"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
}

// RendererConfig controls the drawing loop.
type RendererConfig struct {
	// Viewport is "fullscreen" or "inline".
	Viewport string `toml:"viewport" yaml:"viewport"`
	// InlineHeight is the number of rows used by an inline viewport.
	InlineHeight int `toml:"inline_height" yaml:"inline_height"`
	// FPS caps the frame rate.
	FPS int `toml:"fps" yaml:"fps"`
	// ShowStats draws per-frame diff statistics in the status line.
	ShowStats bool `toml:"show_stats" yaml:"show_stats"`
}

// Theme holds hex colors. An empty string means the terminal default.
type Theme struct {
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`
	Accent     string `toml:"accent" yaml:"accent"`
	Muted      string `toml:"muted" yaml:"muted"`
}

// LoggingConfig controls the log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty discards logs while the terminal
	// owns the screen.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Renderer: RendererConfig{
			Viewport:     ViewportFullscreen,
			InlineHeight: 8,
			FPS:          30,
			ShowStats:    true,
		},
		Theme: Theme{
			Accent: "#5FAFFF",
			Muted:  "#808080",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns all problems joined.
// Each problem is a *ValidationError matching ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(field, msg string, value any) {
		errs = append(errs, &ValidationError{Field: field, Message: msg, Value: value})
	}

	switch c.Renderer.Viewport {
	case ViewportFullscreen:
	case ViewportInline:
		if c.Renderer.InlineHeight < 1 || c.Renderer.InlineHeight > MaxInlineHeight {
			invalid("renderer.inline_height", "must be between 1 and 1000", c.Renderer.InlineHeight)
		}
	default:
		invalid("renderer.viewport", `must be "fullscreen" or "inline"`, c.Renderer.Viewport)
	}

	if c.Renderer.FPS < 1 || c.Renderer.FPS > MaxFPS {
		invalid("renderer.fps", "must be between 1 and 240", c.Renderer.FPS)
	}

	for _, color := range []struct{ field, hex string }{
		{"theme.foreground", c.Theme.Foreground},
		{"theme.background", c.Theme.Background},
		{"theme.accent", c.Theme.Accent},
		{"theme.muted", c.Theme.Muted},
	} {
		if _, err := parseColor(color.hex); err != nil {
			invalid(color.field, "must be a hex color like #RRGGBB", color.hex)
		}
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		invalid("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}

	return errors.Join(errs...)
}

// LogLevel returns the parsed logging level, INFO if it is invalid.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Logging.Level)
	return level
}

// parseColor resolves a theme color. Empty means the terminal default.
func parseColor(hex string) (core.Color, error) {
	if hex == "" {
		return core.ColorDefault, nil
	}
	return core.ColorFromHex(hex)
}
