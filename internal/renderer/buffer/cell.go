package buffer

import (
	"fmt"

	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/grapheme"
)

// Cell is the content and style of a single terminal column.
type Cell struct {
	// symbol is one grapheme cluster. Empty for skip cells.
	symbol string

	Fg       core.Color
	Bg       core.Color
	Modifier core.Attribute

	// Skip marks the trailing column of a wide glyph. Skip cells carry no
	// symbol of their own and are never drawn independently.
	Skip bool
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{
		symbol: " ",
		Fg:     core.ColorDefault,
		Bg:     core.ColorDefault,
	}
}

// NewCell creates a cell holding symbol with default style.
func NewCell(symbol string) Cell {
	c := EmptyCell()
	c.symbol = symbol
	return c
}

// Symbol returns the grapheme cluster displayed in the cell.
func (c Cell) Symbol() string {
	return c.symbol
}

// Width returns the number of columns the cell's symbol occupies.
func (c Cell) Width() int {
	if c.Skip {
		return 0
	}
	return grapheme.Width(c.symbol)
}

// SetSymbol replaces the symbol.
func (c *Cell) SetSymbol(symbol string) *Cell {
	c.symbol = symbol
	return c
}

// appendSymbol attaches a zero-width cluster to the existing symbol.
func (c *Cell) appendSymbol(cluster string) *Cell {
	c.symbol += cluster
	return c
}

// setTrailing turns the cell into the skip half of leader, keeping the
// leader's style.
func (c *Cell) setTrailing(leader Cell) {
	*c = leader
	c.symbol = ""
	c.Skip = true
}

// SetChar replaces the symbol with a single rune.
func (c *Cell) SetChar(r rune) *Cell {
	c.symbol = string(r)
	return c
}

// SetFg sets the foreground color.
func (c *Cell) SetFg(color core.Color) *Cell {
	c.Fg = color
	return c
}

// SetBg sets the background color.
func (c *Cell) SetBg(color core.Color) *Cell {
	c.Bg = color
	return c
}

// SetStyle patches style onto the cell. Default colors leave the
// current colors in place and attributes are added.
func (c *Cell) SetStyle(style core.Style) *Cell {
	if !style.Foreground.IsDefault() {
		c.Fg = style.Foreground
	}
	if !style.Background.IsDefault() {
		c.Bg = style.Background
	}
	c.Modifier |= style.Attributes
	return c
}

// SetSkip sets the skip flag.
func (c *Cell) SetSkip(skip bool) *Cell {
	c.Skip = skip
	return c
}

// Style returns the cell's style.
func (c Cell) Style() core.Style {
	return core.Style{
		Foreground: c.Fg,
		Background: c.Bg,
		Attributes: c.Modifier,
	}
}

// Reset returns the cell to EmptyCell.
func (c *Cell) Reset() *Cell {
	*c = EmptyCell()
	return c
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.symbol == other.symbol &&
		c.Fg.Equals(other.Fg) &&
		c.Bg.Equals(other.Bg) &&
		c.Modifier == other.Modifier &&
		c.Skip == other.Skip
}

func (c Cell) String() string {
	return fmt.Sprintf("Cell{symbol: %q, fg: %v, bg: %v, modifier: %s, skip: %t}",
		c.symbol, c.Fg, c.Bg, c.Modifier, c.Skip)
}
