package config

import (
	"fmt"

	"github.com/dshills/cellgrid/internal/renderer/core"
)

// Styles are the resolved theme styles used by the demo widgets.
type Styles struct {
	Text   core.Style
	Title  core.Style
	Accent core.Style
	Muted  core.Style
	Status core.Style
}

// Styles resolves the theme's hex colors.
func (t Theme) Styles() (Styles, error) {
	fg, err := parseColor(t.Foreground)
	if err != nil {
		return Styles{}, fmt.Errorf("theme foreground: %w", err)
	}
	bg, err := parseColor(t.Background)
	if err != nil {
		return Styles{}, fmt.Errorf("theme background: %w", err)
	}
	accent, err := parseColor(t.Accent)
	if err != nil {
		return Styles{}, fmt.Errorf("theme accent: %w", err)
	}
	muted, err := parseColor(t.Muted)
	if err != nil {
		return Styles{}, fmt.Errorf("theme muted: %w", err)
	}

	text := core.DefaultStyle().WithForeground(fg).WithBackground(bg)
	statusFg := bg
	if statusFg.IsDefault() {
		statusFg = core.ColorBlack
	}
	return Styles{
		Text:   text,
		Title:  text.WithForeground(accent).Bold(),
		Accent: text.WithForeground(accent),
		Muted:  text.WithForeground(muted),
		Status: core.DefaultStyle().WithForeground(statusFg).WithBackground(accent),
	}, nil
}
