package buffer

import (
	"strings"
	"testing"

	"github.com/dshills/cellgrid/internal/renderer/core"
)

func TestEmptyCell(t *testing.T) {
	c := EmptyCell()

	if c.Symbol() != " " {
		t.Errorf("expected symbol %q, got %q", " ", c.Symbol())
	}
	if !c.Style().IsDefault() {
		t.Error("empty cell should have default style")
	}
	if c.Skip {
		t.Error("empty cell should not be a skip cell")
	}
	if c.Width() != 1 {
		t.Errorf("expected width 1, got %d", c.Width())
	}
}

func TestCellSetters(t *testing.T) {
	c := EmptyCell()
	c.SetChar('x').SetFg(core.ColorRed).SetBg(core.ColorBlue)

	if c.Symbol() != "x" {
		t.Errorf("expected symbol x, got %q", c.Symbol())
	}
	if !c.Fg.Equals(core.ColorRed) || !c.Bg.Equals(core.ColorBlue) {
		t.Errorf("unexpected colors fg=%v bg=%v", c.Fg, c.Bg)
	}

	c.SetSymbol("称")
	if c.Width() != 2 {
		t.Errorf("expected wide symbol width 2, got %d", c.Width())
	}

	c.SetSkip(true)
	if c.Width() != 0 {
		t.Errorf("expected skip cell width 0, got %d", c.Width())
	}

	c.Reset()
	if !c.Equals(EmptyCell()) {
		t.Errorf("expected reset cell to be empty, got %v", c)
	}
}

func TestCellSetStylePatches(t *testing.T) {
	c := NewCell("a")
	c.SetStyle(core.NewStyle(core.ColorRed).Bold())
	c.SetStyle(core.DefaultStyle().WithBackground(core.ColorBlue).Italic())

	style := c.Style()
	if !style.Foreground.Equals(core.ColorRed) {
		t.Error("default foreground should not replace existing color")
	}
	if !style.Background.Equals(core.ColorBlue) {
		t.Error("background should be patched")
	}
	if !style.Attributes.Has(core.AttrBold) || !style.Attributes.Has(core.AttrItalic) {
		t.Error("attributes should accumulate")
	}
}

func TestCellEquals(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Cell)
	}{
		{"symbol", func(c *Cell) { c.SetSymbol("b") }},
		{"fg", func(c *Cell) { c.SetFg(core.ColorGreen) }},
		{"bg", func(c *Cell) { c.SetBg(core.ColorGreen) }},
		{"modifier", func(c *Cell) { c.Modifier = core.AttrUnderline }},
		{"skip", func(c *Cell) { c.SetSkip(true) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewCell("a")
			b := NewCell("a")
			if !a.Equals(b) {
				t.Fatal("identical cells should be equal")
			}
			tt.modify(&b)
			if a.Equals(b) {
				t.Errorf("cells differing in %s should not be equal", tt.name)
			}
		})
	}
}

func TestCellStringNamesAttributes(t *testing.T) {
	c := NewCell("x")
	c.SetStyle(core.DefaultStyle().Bold().Strikethrough())

	if got := c.String(); !strings.Contains(got, "modifier: bold|strikethrough") {
		t.Errorf("String() = %s, want attribute names", got)
	}
}
