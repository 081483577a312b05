package buffer

import (
	"math"

	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/grapheme"
	"github.com/dshills/cellgrid/internal/renderer/text"
)

// SetString writes s starting at (x, y), clipped to the buffer's right
// edge. See SetStringN.
func (b *Buffer) SetString(x, y uint16, s string, style core.Style) (uint16, uint16) {
	return b.SetStringN(x, y, s, math.MaxUint16, style)
}

// SetStringN writes at most maxWidth columns of s starting at (x, y) and
// returns the position after the last written cell.
//
// Each grapheme cluster fills one cell. Clusters containing control
// characters are dropped. Zero-width clusters are attached to the previous
// cell and take no column, unless attaching one widens that cell (a base
// followed by VS16), in which case the next column becomes its skip cell.
// A double-width cluster marks the column after it as a skip cell that
// carries the same style. Writing stops at the first cluster that does not fit, so a
// wide glyph is never split. Wide glyphs partially covered by the write are
// blanked so no orphaned half remains.
//
// A start position outside the buffer writes nothing.
func (b *Buffer) SetStringN(x, y uint16, s string, maxWidth int, style core.Style) (uint16, uint16) {
	if !b.area.Contains(core.NewPosition(x, y)) || maxWidth <= 0 {
		return x, y
	}

	cells := b.row(y)
	start := int(x - b.area.X)
	end := start + min(int(b.area.Right()-x), maxWidth)
	col := start
	last := -1

	for cluster, width := range grapheme.Clusters(s) {
		if grapheme.HasControl(cluster) {
			continue
		}
		if width == 0 {
			lead := last
			if lead < 0 {
				lead = leaderBefore(cells, start)
			}
			if lead < 0 {
				continue
			}
			if grapheme.Width(cells[lead].symbol+cluster) <= cells[lead].Width() {
				cells[lead].appendSymbol(cluster)
				continue
			}
			// The merged glyph widens, so it takes the column at col.
			// Without room for it the cluster is dropped.
			if lead+1 != col || col >= end {
				continue
			}
			cells[lead].appendSymbol(cluster)
			cells[col].setTrailing(cells[lead])
			last = lead
			col++
			continue
		}
		if col+width > end {
			break
		}

		if col == start && cells[col].Skip {
			blankLeader(cells, col)
		}

		cell := &cells[col]
		cell.SetSymbol(cluster).SetSkip(false).SetStyle(style)
		last = col
		col++

		for ; width > 1; width-- {
			cells[col].setTrailing(*cell)
			col++
		}
	}

	if last >= 0 {
		blankOrphans(cells, col)
	}

	return b.area.X + uint16(col), y
}

// leaderBefore returns the index of the nearest non-skip cell left of col,
// or -1 if there is none.
func leaderBefore(cells []Cell, col int) int {
	for i := col - 1; i >= 0; i-- {
		if !cells[i].Skip {
			return i
		}
	}
	return -1
}

// blankLeader clears the wide glyph whose trailing half is at col, since
// that half is about to be overwritten.
func blankLeader(cells []Cell, col int) {
	lead := leaderBefore(cells, col)
	if lead < 0 {
		return
	}
	for i := lead; i < col; i++ {
		cells[i].SetSymbol(" ").SetSkip(false)
	}
}

// blankOrphans clears skip cells starting at col whose leader was
// overwritten.
func blankOrphans(cells []Cell, col int) {
	for ; col < len(cells) && cells[col].Skip; col++ {
		cells[col].SetSymbol(" ").SetSkip(false)
	}
}

// SetSpan writes span at (x, y), using at most maxWidth columns.
func (b *Buffer) SetSpan(x, y uint16, span text.Span, maxWidth int) (uint16, uint16) {
	return b.SetStringN(x, y, span.Content, maxWidth, span.Style)
}

// SetLine writes each span of line in turn, using at most maxWidth columns
// in total. The line's style is applied beneath each span's style.
func (b *Buffer) SetLine(x, y uint16, line text.Line, maxWidth int) (uint16, uint16) {
	remaining := maxWidth
	for _, span := range line.Spans {
		if remaining <= 0 {
			break
		}
		nx, _ := b.SetStringN(x, y, span.Content, remaining, line.Style.Merge(span.Style))
		remaining -= int(nx - x)
		x = nx
	}
	return x, y
}
