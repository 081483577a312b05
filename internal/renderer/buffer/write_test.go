package buffer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/cellgrid/internal/renderer/buffer"
	"github.com/dshills/cellgrid/internal/renderer/buffer/buffertest"
	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/grapheme"
	"github.com/dshills/cellgrid/internal/renderer/text"
)

func TestSetStringRoundTrip(t *testing.T) {
	s := "Hello, World!"
	b := buffer.Empty(core.NewRect(0, 0, uint16(len(s)), 1))

	x, y := b.SetString(0, 0, s, core.DefaultStyle())

	assert.Equal(t, uint16(len(s)), x)
	assert.Equal(t, uint16(0), y)
	for i, r := range s {
		assert.Equal(t, string(r), b.At(uint16(i), 0).Symbol(), "cell %d", i)
	}
}

func TestSetStringWideCharacter(t *testing.T) {
	b := buffer.Empty(core.NewRect(0, 0, 5, 1))

	x, _ := b.SetString(1, 0, "称", core.DefaultStyle())

	assert.Equal(t, uint16(3), x)
	assert.Equal(t, "称", b.At(1, 0).Symbol())
	assert.False(t, b.At(1, 0).Skip)
	assert.True(t, b.At(2, 0).Skip)
	assert.Equal(t, "", b.At(2, 0).Symbol())
	assert.Equal(t, " 称  ", b.String())
}

func TestSetStringNClips(t *testing.T) {
	b := buffer.Empty(core.NewRect(0, 0, 20, 1))

	x, _ := b.SetStringN(2, 0, "hello world", 5, core.DefaultStyle())

	assert.Equal(t, uint16(7), x)
	assert.Equal(t, "  hello"+strings.Repeat(" ", 13), b.String())
	for col := uint16(7); col < 20; col++ {
		assert.True(t, b.At(col, 0).Equals(buffer.EmptyCell()), "column %d touched", col)
	}
}

func TestSetStringStopsAtRightEdge(t *testing.T) {
	b := buffer.Empty(core.NewRect(0, 0, 3, 1))
	x, _ := b.SetString(0, 0, "abcdef", core.DefaultStyle())

	assert.Equal(t, uint16(3), x)
	assert.Equal(t, "abc", b.String())
}

func TestSetStringWideDoesNotFit(t *testing.T) {
	tests := []struct {
		name  string
		width uint16
		input string
		wantX uint16
		want  string
	}{
		{"wide then narrow", 3, "a称b", 3, "a称"},
		{"wide at edge", 2, "a称", 1, "a "},
		{"only wide", 1, "称", 0, " "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buffer.Empty(core.NewRect(0, 0, tt.width, 1))
			x, _ := b.SetString(0, 0, tt.input, core.DefaultStyle())
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.want, b.String())
		})
	}
}

func TestSetStringDropsControlCharacters(t *testing.T) {
	b := buffer.Empty(core.NewRect(0, 0, 5, 1))
	x, _ := b.SetString(0, 0, "a\nb\tc\x1b", core.DefaultStyle())

	assert.Equal(t, uint16(3), x)
	assert.Equal(t, "abc  ", b.String())
}

func TestSetStringZeroWidth(t *testing.T) {
	t.Run("combining sequence stays in one cell", func(t *testing.T) {
		b := buffer.Empty(core.NewRect(0, 0, 3, 1))
		x, _ := b.SetString(0, 0, "e\u0301x", core.DefaultStyle())
		assert.Equal(t, uint16(2), x)
		assert.Equal(t, "e\u0301", b.At(0, 0).Symbol())
		assert.Equal(t, "x", b.At(1, 0).Symbol())
	})

	t.Run("zero width cluster joins previous cell", func(t *testing.T) {
		b := buffer.Empty(core.NewRect(0, 0, 3, 1))
		x, _ := b.SetString(0, 0, "a\u200bb", core.DefaultStyle())
		assert.Equal(t, uint16(2), x)
		assert.Equal(t, "a\u200b", b.At(0, 0).Symbol())
		assert.Equal(t, "b", b.At(1, 0).Symbol())
	})

	t.Run("leading zero width joins cell left of start", func(t *testing.T) {
		b := buffer.Empty(core.NewRect(0, 0, 3, 1))
		b.SetString(0, 0, "e", core.DefaultStyle())
		x, _ := b.SetString(1, 0, "\u0301", core.DefaultStyle())
		assert.Equal(t, uint16(1), x)
		assert.Equal(t, "e\u0301", b.At(0, 0).Symbol())
		assert.Equal(t, " ", b.At(1, 0).Symbol())
	})

	t.Run("lone variation selector takes no column", func(t *testing.T) {
		b := buffer.Empty(core.NewRect(0, 0, 4, 1))
		x, _ := b.SetString(0, 0, "a\uFE0Eb\u2060c", core.DefaultStyle())
		assert.Equal(t, uint16(3), x)
		assert.Equal(t, "a\uFE0E", b.At(0, 0).Symbol())
		assert.Equal(t, "b\u2060", b.At(1, 0).Symbol())
		assert.Equal(t, "c", b.At(2, 0).Symbol())
	})

	t.Run("variation selector after dropped control joins previous cell", func(t *testing.T) {
		b := buffer.Empty(core.NewRect(0, 0, 3, 1))
		x, _ := b.SetString(0, 0, "a\x1b\uFE0Eb", core.DefaultStyle())
		assert.Equal(t, uint16(2), x)
		assert.Equal(t, "a\uFE0E", b.At(0, 0).Symbol())
		assert.Equal(t, "b", b.At(1, 0).Symbol())
	})

	t.Run("leading variation selector at row start is dropped", func(t *testing.T) {
		b := buffer.Empty(core.NewRect(0, 0, 3, 1))
		x, _ := b.SetString(0, 0, "\uFE0Eab", core.DefaultStyle())
		assert.Equal(t, uint16(2), x)
		assert.Equal(t, "ab ", b.String())
	})

	t.Run("leading zero width at row start is dropped", func(t *testing.T) {
		b := buffer.Empty(core.NewRect(0, 0, 3, 1))
		x, _ := b.SetString(0, 0, "\u0301", core.DefaultStyle())
		assert.Equal(t, uint16(0), x)
		buffertest.AssertEqual(t, b, buffer.Empty(core.NewRect(0, 0, 3, 1)))
	})
}

func TestSetStringOverwritesWideGlyph(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		x       uint16
		input   string
		want    string
	}{
		{"start on trailing half", "称号", 1, "x", " x号"},
		{"end before trailing half", "称号", 2, "a", "称a "},
		{"wide over wide leader", "a称b", 0, "称", "称 b"},
		{"wide aligned", "称号", 0, "号", "号号"},
		{"narrow over both halves", "称号", 0, "ab", "ab号"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buffer.WithLines(tt.initial)
			b.SetString(tt.x, 0, tt.input, core.DefaultStyle())
			assert.Equal(t, tt.want, b.String())
			buffertest.AssertEqual(t, b, buffer.WithLines(tt.want))
		})
	}
}

func TestSetStringOutsideArea(t *testing.T) {
	area := core.NewRect(2, 2, 3, 3)
	b := buffer.Empty(area)

	x, y := b.SetString(0, 2, "abc", core.DefaultStyle())
	assert.Equal(t, uint16(0), x)
	assert.Equal(t, uint16(2), y)

	b.SetString(2, 9, "abc", core.DefaultStyle())
	b.SetString(5, 3, "abc", core.DefaultStyle())
	b.SetStringN(2, 2, "abc", 0, core.DefaultStyle())
	b.SetStringN(2, 2, "abc", -4, core.DefaultStyle())

	buffertest.AssertEqual(t, b, buffer.Empty(area))
}

func TestSetStringOffsetArea(t *testing.T) {
	b := buffer.Empty(core.NewRect(10, 5, 4, 2))
	x, y := b.SetString(11, 6, "xyz", core.DefaultStyle())

	assert.Equal(t, uint16(14), x)
	assert.Equal(t, uint16(6), y)
	assert.Equal(t, "    \n xyz", b.String())
}

func TestSetStringStyle(t *testing.T) {
	style := core.NewStyle(core.ColorYellow).WithBackground(core.ColorBlue).Underline()
	b := buffer.Empty(core.NewRect(0, 0, 4, 1))
	b.SetString(0, 0, "称a", style)

	for x := range uint16(3) {
		assert.True(t, b.At(x, 0).Style().Equals(style), "cell %d style", x)
	}
	assert.True(t, b.At(3, 0).Style().IsDefault())
}

func TestSetSpan(t *testing.T) {
	b := buffer.Empty(core.NewRect(0, 0, 6, 1))
	span := text.Styled("abcdef", core.DefaultStyle().Italic())

	x, _ := b.SetSpan(1, 0, span, 3)

	assert.Equal(t, uint16(4), x)
	assert.Equal(t, " abc  ", b.String())
	assert.True(t, b.At(1, 0).Modifier.Has(core.AttrItalic))
}

func TestSetLine(t *testing.T) {
	base := core.NewStyle(core.ColorRed)
	line := text.NewLine(text.Raw("ab"), text.Styled("cd", core.DefaultStyle().Bold())).WithStyle(base)
	b := buffer.Empty(core.NewRect(0, 0, 6, 1))

	x, _ := b.SetLine(0, 0, line, 3)

	assert.Equal(t, uint16(3), x)
	assert.Equal(t, "abc   ", b.String())
	assert.True(t, b.At(0, 0).Fg.Equals(core.ColorRed))
	assert.False(t, b.At(0, 0).Modifier.Has(core.AttrBold))
	assert.True(t, b.At(2, 0).Fg.Equals(core.ColorRed))
	assert.True(t, b.At(2, 0).Modifier.Has(core.AttrBold))
	assert.True(t, b.At(3, 0).Style().IsDefault())
}

func TestSetLineVS16InSeparateSpan(t *testing.T) {
	area := core.NewRect(0, 0, 3, 1)
	b := buffer.Empty(area)
	line := text.NewLine(text.Raw("⌨"), text.Raw("\uFE0F"), text.Raw("z"))

	x, _ := b.SetLine(0, 0, line, 4)

	assert.Equal(t, uint16(3), x)
	assert.Equal(t, "⌨\uFE0F", b.At(0, 0).Symbol())
	assert.Equal(t, 2, b.At(0, 0).Width())
	assert.True(t, b.At(1, 0).Skip)
	assert.Equal(t, "z", b.At(2, 0).Symbol())

	diff := buffer.Empty(area).Diff(b)
	assert.Len(t, diff, grapheme.StringWidth("⌨\uFE0Fz"))
}

func TestSetStringVS16WidensCellLeftOfStart(t *testing.T) {
	b := buffer.WithLines("a称")
	b.SetString(0, 0, "⌨", core.DefaultStyle())

	x, _ := b.SetString(1, 0, "\uFE0F", core.DefaultStyle())

	assert.Equal(t, uint16(2), x)
	assert.Equal(t, "⌨\uFE0F", b.At(0, 0).Symbol())
	assert.True(t, b.At(1, 0).Skip)
	assert.False(t, b.At(2, 0).Skip, "trailing half of the overwritten glyph must be blanked")
	assert.Equal(t, " ", b.At(2, 0).Symbol())
}

func TestSetStringVS16WithoutRoomIsDropped(t *testing.T) {
	tests := []struct {
		name     string
		width    uint16
		maxWidth int
	}{
		{"right edge", 2, 10},
		{"max width", 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := buffer.Empty(core.NewRect(0, 0, tt.width, 1))

			// The control character splits the selector into its own cluster.
			x, _ := b.SetStringN(0, 0, "a⌨\x1b\uFE0F", tt.maxWidth, core.DefaultStyle())

			assert.Equal(t, uint16(2), x)
			assert.Equal(t, "⌨", b.At(1, 0).Symbol())
			assert.Equal(t, 1, b.At(1, 0).Width())
		})
	}
}

func TestSetStringWideGlyphKeepsStyleOnBothHalves(t *testing.T) {
	b := buffer.Empty(core.NewRect(0, 0, 3, 1))
	b.SetStyle(b.Area(), core.DefaultStyle().WithBackground(core.ColorBlue))

	b.SetString(0, 0, "称", core.NewStyle(core.ColorRed))

	lead, trail := b.At(0, 0), b.At(1, 0)
	assert.True(t, trail.Skip)
	assert.Equal(t, "", trail.Symbol())
	assert.Equal(t, lead.Style(), trail.Style())
	assert.True(t, trail.Bg.Equals(core.ColorBlue))
	assert.True(t, trail.Fg.Equals(core.ColorRed))
}
