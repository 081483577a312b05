package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of the environment variables read by ApplyEnv.
const EnvPrefix = "CELLGRID_"

// envSetter applies one environment variable value to a config.
type envSetter func(c *Config, value string) error

// envMapping maps variable names (without prefix) to setters.
var envMapping = map[string]envSetter{
	"VIEWPORT": func(c *Config, v string) error {
		c.Renderer.Viewport = strings.ToLower(v)
		return nil
	},
	"INLINE_HEIGHT": intSetter(func(c *Config) *int { return &c.Renderer.InlineHeight }),
	"FPS":           intSetter(func(c *Config) *int { return &c.Renderer.FPS }),
	"SHOW_STATS": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Renderer.ShowStats = b
		return nil
	},
	"THEME_FOREGROUND": stringSetter(func(c *Config) *string { return &c.Theme.Foreground }),
	"THEME_BACKGROUND": stringSetter(func(c *Config) *string { return &c.Theme.Background }),
	"THEME_ACCENT":     stringSetter(func(c *Config) *string { return &c.Theme.Accent }),
	"THEME_MUTED":      stringSetter(func(c *Config) *string { return &c.Theme.Muted }),
	"LOG_LEVEL":        stringSetter(func(c *Config) *string { return &c.Logging.Level }),
	"LOG_FILE":         stringSetter(func(c *Config) *string { return &c.Logging.File }),
}

func intSetter(field func(*Config) *int) envSetter {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return err
		}
		*field(c) = n
		return nil
	}
}

func stringSetter(field func(*Config) *string) envSetter {
	return func(c *Config, v string) error {
		*field(c) = v
		return nil
	}
}

// EnvNames returns the recognised variable names for prefix, sorted.
func EnvNames(prefix string) []string {
	names := slices.Sorted(maps.Keys(envMapping))
	for i, name := range names {
		names[i] = prefix + name
	}
	return names
}

// ApplyEnv overrides settings from environment variables named prefix
// followed by the setting, e.g. CELLGRID_FPS. Set but empty variables
// are applied. Values that cannot be converted are reported as
// *ValidationError and leave the setting unchanged. The result is not
// validated.
func (c *Config) ApplyEnv(prefix string) error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(envMapping)) {
		value, ok := os.LookupEnv(prefix + name)
		if !ok {
			continue
		}
		if err := envMapping[name](c, value); err != nil {
			errs = append(errs, &ValidationError{
				Field:   prefix + name,
				Message: fmt.Sprintf("cannot convert: %v", err),
				Value:   value,
			})
		}
	}
	return errors.Join(errs...)
}
