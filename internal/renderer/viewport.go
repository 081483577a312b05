package renderer

import (
	"fmt"

	"github.com/dshills/cellgrid/internal/renderer/core"
)

// ViewportKind selects how the drawing area relates to the backend size.
type ViewportKind int

const (
	// ViewportFullscreen covers the whole backend and follows resizes.
	ViewportFullscreen ViewportKind = iota
	// ViewportInline covers a fixed number of rows at the top of the
	// backend. Its width follows resizes.
	ViewportInline
	// ViewportFixed covers a fixed rectangle and ignores resizes.
	ViewportFixed
)

// Viewport describes the region of the backend a Terminal draws into.
type Viewport struct {
	kind   ViewportKind
	area   core.Rect
	height uint16
}

// Fullscreen returns a viewport covering the whole backend.
func Fullscreen() Viewport {
	return Viewport{kind: ViewportFullscreen}
}

// Inline returns a viewport of the given height anchored at the top row.
func Inline(height uint16) Viewport {
	return Viewport{kind: ViewportInline, height: height}
}

// Fixed returns a viewport covering exactly area.
func Fixed(area core.Rect) Viewport {
	return Viewport{kind: ViewportFixed, area: area}
}

// Kind returns the viewport kind.
func (v Viewport) Kind() ViewportKind {
	return v.kind
}

// followsResize reports whether the area depends on the backend size.
func (v Viewport) followsResize() bool {
	return v.kind != ViewportFixed
}

// resolve returns the drawing area for a backend of the given size.
func (v Viewport) resolve(size core.Size) core.Rect {
	switch v.kind {
	case ViewportInline:
		return core.NewRect(0, 0, size.Width, min(v.height, size.Height))
	case ViewportFixed:
		return v.area
	default:
		return core.NewRect(0, 0, size.Width, size.Height)
	}
}

func (v Viewport) String() string {
	switch v.kind {
	case ViewportInline:
		return fmt.Sprintf("inline(%d)", v.height)
	case ViewportFixed:
		return fmt.Sprintf("fixed(%s)", v.area)
	default:
		return "fullscreen"
	}
}
