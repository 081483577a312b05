package core

import "strings"

// Attribute is the set of text attributes stored with a cell.
type Attribute uint16

// AttrNone is the empty attribute set.
const AttrNone Attribute = 0

// Text attribute flags. Backends map each flag to the closest terminal
// capability and drop the ones they cannot show.
const (
	AttrBold Attribute = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrStrikethrough
)

var attributeNames = []struct {
	attr Attribute
	name string
}{
	{AttrBold, "bold"},
	{AttrDim, "dim"},
	{AttrItalic, "italic"},
	{AttrUnderline, "underline"},
	{AttrBlink, "blink"},
	{AttrReverse, "reverse"},
	{AttrStrikethrough, "strikethrough"},
}

// Has reports whether every flag of attr is set.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr == attr
}

// String lists the set flags joined by "|", or "none".
func (a Attribute) String() string {
	if a == AttrNone {
		return "none"
	}
	var names []string
	for _, an := range attributeNames {
		if a.Has(an.attr) {
			names = append(names, an.name)
		}
	}
	return strings.Join(names, "|")
}

// Style is the colors and attributes applied to a cell. Default colors
// mean "leave the terminal's color alone".
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

// DefaultStyle returns a style with default colors and no attributes.
// The zero Style is not the default: its colors are black.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// NewStyle returns DefaultStyle with the foreground set.
func NewStyle(fg Color) Style {
	return DefaultStyle().WithForeground(fg)
}

func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

// Add returns s with attrs added.
func (s Style) Add(attrs Attribute) Style {
	s.Attributes |= attrs
	return s
}

func (s Style) Bold() Style          { return s.Add(AttrBold) }
func (s Style) Dim() Style           { return s.Add(AttrDim) }
func (s Style) Italic() Style        { return s.Add(AttrItalic) }
func (s Style) Underline() Style     { return s.Add(AttrUnderline) }
func (s Style) Reverse() Style       { return s.Add(AttrReverse) }
func (s Style) Strikethrough() Style { return s.Add(AttrStrikethrough) }

// Merge patches other onto s: non-default colors replace s's colors and
// attributes are added. Cell.SetStyle applies the same rule.
func (s Style) Merge(other Style) Style {
	if !other.Foreground.IsDefault() {
		s.Foreground = other.Foreground
	}
	if !other.Background.IsDefault() {
		s.Background = other.Background
	}
	return s.Add(other.Attributes)
}

func (s Style) Equals(other Style) bool {
	return s.Foreground.Equals(other.Foreground) &&
		s.Background.Equals(other.Background) &&
		s.Attributes == other.Attributes
}

// IsDefault reports whether s equals DefaultStyle.
func (s Style) IsDefault() bool {
	return s.Equals(DefaultStyle())
}
