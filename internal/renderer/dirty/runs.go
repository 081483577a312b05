// Package dirty groups the cell changes produced by a buffer diff into
// horizontal runs so a backend can write each run in one pass.
package dirty

import (
	"iter"

	"github.com/dshills/cellgrid/internal/renderer/buffer"
)

// Run is a sequence of changed cells on one row with no gaps between them.
type Run struct {
	X, Y  uint16
	Cells []buffer.Cell
}

// All yields each cell of the run with the column it starts at. The
// trailing skip cell of a wide glyph shares the glyph's footprint.
func (r Run) All() iter.Seq2[uint16, buffer.Cell] {
	return func(yield func(uint16, buffer.Cell) bool) {
		col := r.X
		pending := 0
		last := r.X
		for _, c := range r.Cells {
			if c.Skip && pending > 0 {
				pending--
				last++
				if !yield(last, c) {
					return
				}
				continue
			}
			w := max(c.Width(), 1)
			if !yield(col, c) {
				return
			}
			last = col
			col += uint16(w)
			pending = w - 1
		}
	}
}

// Width returns the number of columns the run covers.
func (r Run) Width() int {
	width := 0
	pending := 0
	for _, c := range r.Cells {
		if c.Skip && pending > 0 {
			pending--
			continue
		}
		w := max(c.Width(), 1)
		width += w
		pending = w - 1
	}
	return width
}

// Runs groups changes into runs, preserving their order. Changes must be in
// row-major order as returned by Buffer.Diff.
func Runs(changes []buffer.Change) []Run {
	return RunsInto(changes, nil)
}

// RunsInto is Runs appending to dst.
func RunsInto(changes []buffer.Change, dst []Run) []Run {
	if len(changes) == 0 {
		return dst
	}

	var (
		current Run
		open    bool
		end     int // column after the run's footprint
		lastX   int
		pending int
	)
	for _, ch := range changes {
		x := int(ch.X)
		contiguous := open && ch.Y == current.Y &&
			(x == end || (ch.Cell.Skip && pending > 0 && x == lastX+1))

		if !contiguous {
			if open {
				dst = append(dst, current)
			}
			current = Run{X: ch.X, Y: ch.Y, Cells: make([]buffer.Cell, 0, 8)}
			open = true
			end = x
			pending = 0
		}

		current.Cells = append(current.Cells, ch.Cell)
		lastX = x
		if ch.Cell.Skip && pending > 0 {
			pending--
			continue
		}
		w := max(ch.Cell.Width(), 1)
		end = x + w
		pending = w - 1
	}
	return append(dst, current)
}
