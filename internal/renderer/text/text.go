// Package text provides styled runs of text that can be written into a
// buffer in a single call.
package text

import (
	"strings"

	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/grapheme"
)

// Span is a run of text sharing one style.
type Span struct {
	// Content is the text to display. Control characters are dropped when
	// the span is written.
	Content string

	// Style is patched onto every cell the span covers.
	Style core.Style
}

// Raw creates an unstyled span.
func Raw(content string) Span {
	return Span{Content: content, Style: core.DefaultStyle()}
}

// Styled creates a span with the given style.
func Styled(content string, style core.Style) Span {
	return Span{Content: content, Style: style}
}

// Width returns the display width of the span.
func (s Span) Width() int {
	return grapheme.StringWidth(s.Content)
}

// Line is a single row of spans. The line style is applied underneath
// each span's own style. Use NewLine rather than a literal so the base
// style starts out as the terminal default.
type Line struct {
	Spans []Span
	Style core.Style
}

// NewLine creates a line from spans.
func NewLine(spans ...Span) Line {
	return Line{Spans: spans, Style: core.DefaultStyle()}
}

// RawLine creates a line containing a single unstyled span.
func RawLine(content string) Line {
	return NewLine(Raw(content))
}

// WithStyle returns a copy of the line with its base style set.
func (l Line) WithStyle(style core.Style) Line {
	l.Style = style
	return l
}

// Push appends a span to the line.
func (l *Line) Push(span Span) {
	l.Spans = append(l.Spans, span)
}

// Width returns the display width of the line.
func (l Line) Width() int {
	total := 0
	for _, s := range l.Spans {
		total += s.Width()
	}
	return total
}

// String returns the unstyled content of the line.
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Content)
	}
	return sb.String()
}
