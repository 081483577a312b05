package demo

import (
	"github.com/dshills/cellgrid/internal/renderer/buffer"
	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/grapheme"
)

// TitleBar renders a centered title across the first row of its area.
type TitleBar struct {
	Title string
	Style core.Style
}

// Render implements renderer.Widget.
func (t TitleBar) Render(area core.Rect, buf *buffer.Buffer) {
	if area.IsEmpty() {
		return
	}
	row := core.NewRect(area.X, area.Y, area.Width, 1)
	buf.Fill(row, buffer.EmptyCell())
	buf.SetStyle(row, t.Style)

	width := grapheme.StringWidth(t.Title)
	x := area.X
	if width < int(area.Width) {
		x += uint16((int(area.Width) - width) / 2)
	}
	buf.SetStringN(x, area.Y, t.Title, int(area.Right()-x), t.Style)
}
