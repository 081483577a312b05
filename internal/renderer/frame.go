package renderer

import (
	"github.com/dshills/cellgrid/internal/renderer/buffer"
	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/dirty"
)

// Frame is the drawing surface handed to the render callback of
// Terminal.Draw. It is only valid for the duration of that callback.
type Frame struct {
	area   core.Rect
	buf    *buffer.Buffer
	cursor *core.Position
	count  uint64
}

// Area returns the viewport area being drawn.
func (f *Frame) Area() core.Rect {
	return f.area
}

// Buffer returns the buffer being drawn into.
func (f *Frame) Buffer() *buffer.Buffer {
	return f.buf
}

// RenderWidget renders w into area. The area is clipped to the frame.
func (f *Frame) RenderWidget(w Widget, area core.Rect) {
	w.Render(area.Intersection(f.area), f.buf)
}

// SetCursorPosition shows the cursor at pos once the frame is drawn.
// Without a call the cursor is hidden.
func (f *Frame) SetCursorPosition(pos core.Position) {
	f.cursor = &pos
}

// Count returns the index of this frame, starting at zero.
func (f *Frame) Count() uint64 {
	return f.count
}

// CompletedFrame describes a frame that has been sent to the backend.
type CompletedFrame struct {
	// Buffer is a snapshot of what was drawn.
	Buffer *buffer.Buffer
	// Area is the viewport area of the frame.
	Area core.Rect
	// Count is the index of the frame.
	Count uint64
	// Stats summarizes the changes sent to the backend.
	Stats dirty.Stats
}
