package buffer

import (
	"fmt"

	"github.com/dshills/cellgrid/internal/renderer/grapheme"
)

// Change is a cell that must be drawn at (X, Y) to bring the screen up to
// date.
type Change struct {
	X, Y uint16
	Cell Cell
}

// Diff returns the changes that turn b into next, in row-major order.
// Identical buffers produce no changes.
//
// Panics if the buffers cover different areas.
func (b *Buffer) Diff(next *Buffer) []Change {
	return b.DiffInto(next, nil)
}

// DiffInto is Diff appending to dst.
//
// Cells hidden under a wide glyph of next are not emitted. When a glyph's
// width changes between frames, the columns it covered in either frame are
// redrawn even if equal, so no half of a stale wide glyph survives. Wide
// emoji-presentation glyphs (VS16) are followed by their trailing columns
// because some terminals draw them one column wide.
func (b *Buffer) DiffInto(next *Buffer, dst []Change) []Change {
	if b.area != next.area {
		panic(fmt.Sprintf("buffer: cannot diff buffers with different areas: previous is %v, next is %v",
			b.area, next.area))
	}

	prev := b.content
	cur := next.content
	width := int(b.area.Width)

	invalidated := 0
	toSkip := 0
	for i := range cur {
		if i%width == 0 {
			invalidated, toSkip = 0, 0
		}

		c, p := &cur[i], &prev[i]
		if !c.Skip && (!c.Equals(*p) || invalidated > 0) && toSkip == 0 {
			dst = append(dst, next.change(i))
			if c.Width() > 1 && grapheme.IsEmojiPresentation(c.symbol) {
				dst = next.appendTrailing(dst, prev, i, c.Width())
			}
		}

		cw, pw := c.Width(), p.Width()
		toSkip = max(cw-1, 0)
		invalidated = max(cw, pw, invalidated) - 1
		if invalidated < 0 {
			invalidated = 0
		}
	}
	return dst
}

// appendTrailing emits the columns covered by the wide glyph at i that
// differ from prev. Stops at the end of the row.
func (b *Buffer) appendTrailing(dst []Change, prev []Cell, i, w int) []Change {
	width := int(b.area.Width)
	for k := 1; k < w; k++ {
		j := i + k
		if j >= len(b.content) || j%width == 0 {
			break
		}
		if !b.content[j].Equals(prev[j]) {
			dst = append(dst, b.change(j))
		}
	}
	return dst
}

func (b *Buffer) change(i int) Change {
	x, y := b.PosOf(i)
	return Change{X: x, Y: y, Cell: b.content[i]}
}
