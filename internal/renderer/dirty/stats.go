package dirty

import (
	"fmt"

	"github.com/dshills/cellgrid/internal/renderer/buffer"
)

// Stats summarizes a set of changes.
type Stats struct {
	// Cells is the number of changed cells.
	Cells int

	// Runs is the number of contiguous runs.
	Runs int

	// Rows is the number of distinct rows touched.
	Rows int
}

// Summarize computes statistics for changes in row-major order.
func Summarize(changes []buffer.Change) Stats {
	s := Stats{Cells: len(changes)}
	if len(changes) == 0 {
		return s
	}

	s.Runs = len(Runs(changes))
	s.Rows = 1
	for i := 1; i < len(changes); i++ {
		if changes[i].Y != changes[i-1].Y {
			s.Rows++
		}
	}
	return s
}

// Coverage returns the fraction of an area's cells that changed.
func (s Stats) Coverage(area uint32) float64 {
	if area == 0 {
		return 0
	}
	return float64(s.Cells) / float64(area)
}

func (s Stats) String() string {
	return fmt.Sprintf("cells=%d runs=%d rows=%d", s.Cells, s.Runs, s.Rows)
}
