package core

import (
	"fmt"
	"iter"
	"math"
)

// Rect is an axis-aligned rectangle in terminal cell coordinates.
// Zero-area rects are valid and cover nothing.
type Rect struct {
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// NewRect creates a rectangle. Width and height are clamped so that the
// right and bottom edges stay within the uint16 domain.
func NewRect(x, y, width, height uint16) Rect {
	return Rect{
		X:      x,
		Y:      y,
		Width:  min(width, math.MaxUint16-x),
		Height: min(height, math.MaxUint16-y),
	}
}

// RectFromPositionSize creates a rectangle from its top-left corner and size.
func RectFromPositionSize(pos Position, size Size) Rect {
	return NewRect(pos.X, pos.Y, size.Width, size.Height)
}

// Area returns the number of cells covered.
func (r Rect) Area() uint32 {
	return uint32(r.Width) * uint32(r.Height)
}

// IsEmpty returns true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Left returns the first column (inclusive).
func (r Rect) Left() uint16 {
	return r.X
}

// Right returns the column after the last one (exclusive).
func (r Rect) Right() uint16 {
	return saturate(int64(r.X) + int64(r.Width))
}

// Top returns the first row (inclusive).
func (r Rect) Top() uint16 {
	return r.Y
}

// Bottom returns the row after the last one (exclusive).
func (r Rect) Bottom() uint16 {
	return saturate(int64(r.Y) + int64(r.Height))
}

// AsPosition returns the top-left corner.
func (r Rect) AsPosition() Position {
	return Position{X: r.X, Y: r.Y}
}

// AsSize returns the dimensions.
func (r Rect) AsSize() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Contains returns true if pos is within the rectangle.
func (r Rect) Contains(pos Position) bool {
	return pos.X >= r.Left() && pos.X < r.Right() &&
		pos.Y >= r.Top() && pos.Y < r.Bottom()
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Left() < other.Right() && r.Right() > other.Left() &&
		r.Top() < other.Bottom() && r.Bottom() > other.Top()
}

// Intersection returns the overlapping region of two rectangles.
// Disjoint rectangles produce a zero-area rect positioned at the larger of
// the two origins on each axis.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.Left(), other.Left())
	y1 := max(r.Top(), other.Top())
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())

	var width, height uint16
	if x2 > x1 {
		width = x2 - x1
	}
	if y2 > y1 {
		height = y2 - y1
	}
	return Rect{X: x1, Y: y1, Width: width, Height: height}
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(other Rect) Rect {
	x1 := min(r.Left(), other.Left())
	y1 := min(r.Top(), other.Top())
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Clamp returns a rectangle of the same or smaller size moved so that it
// fits entirely within bounds.
func (r Rect) Clamp(bounds Rect) Rect {
	width := min(r.Width, bounds.Width)
	height := min(r.Height, bounds.Height)
	x := min(max(r.X, bounds.X), bounds.Right()-width)
	y := min(max(r.Y, bounds.Y), bounds.Bottom()-height)
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Inner returns the rectangle shrunk by m on every side.
// Returns the zero rect if the margin does not fit.
func (r Rect) Inner(m Margin) Rect {
	doubledH := uint32(m.Horizontal) * 2
	doubledV := uint32(m.Vertical) * 2
	if uint32(r.Width) < doubledH || uint32(r.Height) < doubledV {
		return Rect{}
	}
	return Rect{
		X:      r.X + m.Horizontal,
		Y:      r.Y + m.Vertical,
		Width:  r.Width - uint16(doubledH),
		Height: r.Height - uint16(doubledV),
	}
}

// Outer returns the rectangle grown by m on every side, saturating at the
// uint16 domain.
func (r Rect) Outer(m Margin) Rect {
	x := saturate(int64(r.X) - int64(m.Horizontal))
	y := saturate(int64(r.Y) - int64(m.Vertical))
	right := saturate(int64(r.Right()) + int64(m.Horizontal))
	bottom := saturate(int64(r.Bottom()) + int64(m.Vertical))
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Offset moves the rectangle without changing its size. The position
// saturates so that the rect never leaves the uint16 domain: moving past
// the maximum leaves the far edge touching it.
func (r Rect) Offset(o Offset) Rect {
	maxX := int64(math.MaxUint16 - r.Width)
	maxY := int64(math.MaxUint16 - r.Height)
	return Rect{
		X:      uint16(min(max(int64(r.X)+int64(o.X), 0), maxX)),
		Y:      uint16(min(max(int64(r.Y)+int64(o.Y), 0), maxY)),
		Width:  r.Width,
		Height: r.Height,
	}
}

// Rows returns the unit-height rows of the rectangle, top to bottom.
func (r Rect) Rows() iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		for y := r.Top(); y < r.Bottom(); y++ {
			if !yield(Rect{X: r.X, Y: y, Width: r.Width, Height: 1}) {
				return
			}
		}
	}
}

// Columns returns the unit-width columns of the rectangle, left to right.
func (r Rect) Columns() iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		for x := r.Left(); x < r.Right(); x++ {
			if !yield(Rect{X: x, Y: r.Y, Width: 1, Height: r.Height}) {
				return
			}
		}
	}
}

// Positions returns every position in the rectangle in row-major order.
func (r Rect) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for y := r.Top(); y < r.Bottom(); y++ {
			for x := r.Left(); x < r.Right(); x++ {
				if !yield(Position{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}
