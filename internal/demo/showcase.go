package demo

import (
	"github.com/dshills/cellgrid/internal/config"
	"github.com/dshills/cellgrid/internal/renderer/buffer"
	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/grapheme"
	"github.com/dshills/cellgrid/internal/renderer/text"
)

// Sample is one labelled line of the glyph showcase.
type Sample struct {
	Label string
	Text  string
}

// Samples are the glyph classes the showcase exercises.
var Samples = []Sample{
	{"ascii", "The quick brown fox"},
	{"cjk", "称号 漢字 テスト"},
	{"emoji", "👁️ 🎉 👍🏽 🇯🇵"},
	{"combining", "é ä ñ"},
	{"zwj", "👨‍👩‍👧"},
	{"box", "┌─┬─┐ └─┴─┘"},
}

// attributeSamples names each text attribute with the style that shows it.
var attributeSamples = []struct {
	name  string
	apply func(core.Style) core.Style
}{
	{"bold", core.Style.Bold},
	{"dim", core.Style.Dim},
	{"italic", core.Style.Italic},
	{"underline", core.Style.Underline},
	{"reverse", core.Style.Reverse},
	{"strike", core.Style.Strikethrough},
}

const labelWidth = 11

// marquee scrolls across the last row of the showcase so every frame has
// a small change to diff.
const marquee = " cellgrid ◆ 差分 ◆ "

// Showcase renders the glyph samples, one word per text attribute and a
// scrolling marquee.
type Showcase struct {
	Tick   uint64
	Styles config.Styles
}

// Render implements renderer.Widget.
func (s Showcase) Render(area core.Rect, buf *buffer.Buffer) {
	y := area.Y
	for _, sample := range Samples {
		if y >= area.Bottom() {
			return
		}
		line := text.NewLine(
			text.Styled(padRight(sample.Label, labelWidth), s.Styles.Muted),
			text.Styled(sample.Text, s.Styles.Text),
		)
		buf.SetLine(area.X, y, line, int(area.Width))
		y++
	}

	if y >= area.Bottom() {
		return
	}
	buf.SetLine(area.X, y, s.attributeLine(), int(area.Width))
	y++

	if y+1 < area.Bottom() {
		y++
		buf.SetLine(area.X, y, s.marqueeLine(int(area.Width)), int(area.Width))
	}
}

func (s Showcase) attributeLine() text.Line {
	line := text.NewLine(text.Styled(padRight("attrs", labelWidth), s.Styles.Muted))
	for i, sample := range attributeSamples {
		if i > 0 {
			line.Push(text.Styled(" ", s.Styles.Text))
		}
		line.Push(text.Styled(sample.name, sample.apply(s.Styles.Text)))
	}
	return line
}

// marqueeLine returns the marquee rotated by the current tick, repeated
// to fill width columns.
func (s Showcase) marqueeLine(width int) text.Line {
	var clusters []string
	for cluster := range grapheme.Clusters(marquee) {
		clusters = append(clusters, cluster)
	}
	shift := int(s.Tick % uint64(len(clusters)))

	line := text.NewLine()
	used := 0
	for i := 0; used < width; i++ {
		cluster := clusters[(shift+i)%len(clusters)]
		line.Push(text.Styled(cluster, s.Styles.Accent))
		used += max(grapheme.Width(cluster), 1)
	}
	return line
}

// padRight pads s with spaces to width columns.
func padRight(s string, width int) string {
	for n := grapheme.StringWidth(s); n < width; n++ {
		s += " "
	}
	return s
}
