package buffer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/text"
)

// Buffer is a grid of cells covering area.
type Buffer struct {
	area    core.Rect
	content []Cell
}

// Empty creates a buffer of blank cells.
func Empty(area core.Rect) *Buffer {
	return Filled(area, EmptyCell())
}

// Filled creates a buffer where every cell is a copy of cell.
func Filled(area core.Rect, cell Cell) *Buffer {
	content := make([]Cell, area.Area())
	for i := range content {
		content[i] = cell
	}
	return &Buffer{area: area, content: content}
}

// WithLines creates a buffer at the origin sized to fit lines, one line per
// row, each written from column 0.
func WithLines(lines ...string) *Buffer {
	styled := make([]text.Line, len(lines))
	for i, l := range lines {
		styled[i] = text.RawLine(l)
	}
	return WithStyledLines(styled...)
}

// WithStyledLines creates a buffer at the origin sized to fit lines.
func WithStyledLines(lines ...text.Line) *Buffer {
	width := 0
	for _, l := range lines {
		width = max(width, l.Width())
	}
	b := Empty(core.NewRect(0, 0, uint16(min(width, maxCoord)), uint16(min(len(lines), maxCoord))))
	for y, l := range lines {
		if y >= int(b.area.Height) {
			break
		}
		b.SetLine(0, uint16(y), l, width)
	}
	return b
}

const maxCoord = 1<<16 - 1

// Area returns the region the buffer covers.
func (b *Buffer) Area() core.Rect {
	return b.area
}

// Content returns the cells in row-major order. The slice aliases the
// buffer's storage.
func (b *Buffer) Content() []Cell {
	return b.content
}

// Len returns the number of cells.
func (b *Buffer) Len() int {
	return len(b.content)
}

// IndexOf returns the content index of the cell at (x, y).
// Panics if the position is outside the buffer.
func (b *Buffer) IndexOf(x, y uint16) int {
	if !b.area.Contains(core.NewPosition(x, y)) {
		panic(fmt.Sprintf("buffer: index outside of buffer: the area is %v but position is (%d, %d)",
			b.area, x, y))
	}
	return int(y-b.area.Y)*int(b.area.Width) + int(x-b.area.X)
}

// PosOf returns the position of the cell at content index i.
// Panics if i is out of range.
func (b *Buffer) PosOf(i int) (x, y uint16) {
	if i < 0 || i >= len(b.content) {
		panic(fmt.Sprintf("buffer: index %d out of range for area %v with %d cells",
			i, b.area, len(b.content)))
	}
	w := int(b.area.Width)
	return b.area.X + uint16(i%w), b.area.Y + uint16(i/w)
}

// CellAt returns the cell at (x, y), or nil if it lies outside the buffer.
func (b *Buffer) CellAt(x, y uint16) *Cell {
	if !b.area.Contains(core.NewPosition(x, y)) {
		return nil
	}
	return &b.content[b.IndexOf(x, y)]
}

// At returns the cell at (x, y). Panics if it lies outside the buffer.
func (b *Buffer) At(x, y uint16) *Cell {
	return &b.content[b.IndexOf(x, y)]
}

// SetCell replaces the cell at (x, y). Positions outside the buffer are
// ignored.
func (b *Buffer) SetCell(x, y uint16, cell Cell) {
	if c := b.CellAt(x, y); c != nil {
		*c = cell
	}
}

// row returns the cells of row y.
func (b *Buffer) row(y uint16) []Cell {
	start := int(y-b.area.Y) * int(b.area.Width)
	return b.content[start : start+int(b.area.Width)]
}

// SetStyle patches style onto every cell of area that lies in the buffer.
// Symbols are left untouched.
func (b *Buffer) SetStyle(area core.Rect, style core.Style) {
	inter := b.area.Intersection(area)
	for r := range inter.Rows() {
		start := b.IndexOf(r.X, r.Y)
		for i := start; i < start+int(r.Width); i++ {
			b.content[i].SetStyle(style)
		}
	}
}

// Fill replaces every cell of area that lies in the buffer with cell.
func (b *Buffer) Fill(area core.Rect, cell Cell) {
	inter := b.area.Intersection(area)
	for r := range inter.Rows() {
		start := b.IndexOf(r.X, r.Y)
		for i := start; i < start+int(r.Width); i++ {
			b.content[i] = cell
		}
	}
}

// Reset blanks every cell.
func (b *Buffer) Reset() {
	for i := range b.content {
		b.content[i].Reset()
	}
}

// Resize changes the area covered. Cells at positions inside both the old
// and new area keep their content; all others are blank.
func (b *Buffer) Resize(area core.Rect) {
	if area == b.area {
		return
	}
	next := Empty(area)
	next.copyFrom(b)
	*b = *next
}

// Merge grows the buffer to cover both areas and copies other's cells over
// its own.
func (b *Buffer) Merge(other *Buffer) {
	b.Resize(b.area.Union(other.area))
	b.copyFrom(other)
}

// copyFrom copies src's cells that lie inside b.
func (b *Buffer) copyFrom(src *Buffer) {
	inter := b.area.Intersection(src.area)
	for r := range inter.Rows() {
		dst := b.IndexOf(r.X, r.Y)
		from := src.IndexOf(r.X, r.Y)
		copy(b.content[dst:dst+int(r.Width)], src.content[from:from+int(r.Width)])
	}
}

// Equal returns true if both buffers cover the same area with identical
// cells.
func (b *Buffer) Equal(other *Buffer) bool {
	return b.area == other.area && slices.EqualFunc(b.content, other.content, Cell.Equals)
}

// String renders the symbols row by row, rows separated by newlines.
// Skip cells are omitted.
func (b *Buffer) String() string {
	if b.area.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	for r := range b.area.Rows() {
		if r.Y > b.area.Y {
			sb.WriteByte('\n')
		}
		cells := b.row(r.Y)
		for i := range cells {
			if !cells[i].Skip {
				sb.WriteString(cells[i].symbol)
			}
		}
	}
	return sb.String()
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{area: b.area, content: slices.Clone(b.content)}
}
