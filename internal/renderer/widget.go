package renderer

import (
	"github.com/dshills/cellgrid/internal/renderer/buffer"
	"github.com/dshills/cellgrid/internal/renderer/core"
)

// Widget draws itself into a region of a buffer.
type Widget interface {
	Render(area core.Rect, buf *buffer.Buffer)
}

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(area core.Rect, buf *buffer.Buffer)

// Render calls f(area, buf).
func (f WidgetFunc) Render(area core.Rect, buf *buffer.Buffer) {
	f(area, buf)
}
