package core

import (
	"fmt"
	"math"
)

// Position is a single cell coordinate on screen (0-indexed).
type Position struct {
	X uint16
	Y uint16
}

// NewPosition creates a position.
func NewPosition(x, y uint16) Position {
	return Position{X: x, Y: y}
}

// PositionFromRect returns the top-left corner of r.
func PositionFromRect(r Rect) Position {
	return Position{X: r.X, Y: r.Y}
}

// XY returns the position as a coordinate pair.
func (p Position) XY() (x, y uint16) {
	return p.X, p.Y
}

// Add returns p moved by o, saturating at the uint16 domain.
func (p Position) Add(o Offset) Position {
	return Position{
		X: saturate(int64(p.X) + int64(o.X)),
		Y: saturate(int64(p.Y) + int64(o.Y)),
	}
}

// Before returns true if p comes before other in row-major order.
func (p Position) Before(other Position) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a width and height in cells.
type Size struct {
	Width  uint16
	Height uint16
}

// NewSize creates a size.
func NewSize(width, height uint16) Size {
	return Size{Width: width, Height: height}
}

// Area returns the number of cells covered.
func (s Size) Area() uint32 {
	return uint32(s.Width) * uint32(s.Height)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Offset is a signed translation applied to positions and rects.
type Offset struct {
	X int32
	Y int32
}

// Margin is a horizontal and vertical inset.
type Margin struct {
	Horizontal uint16
	Vertical   uint16
}

// NewMargin creates a margin.
func NewMargin(horizontal, vertical uint16) Margin {
	return Margin{Horizontal: horizontal, Vertical: vertical}
}

// saturate clamps v into the uint16 domain.
func saturate(v int64) uint16 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}
