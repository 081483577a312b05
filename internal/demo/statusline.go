package demo

import (
	"fmt"

	"github.com/dshills/cellgrid/internal/renderer/buffer"
	"github.com/dshills/cellgrid/internal/renderer/core"
	"github.com/dshills/cellgrid/internal/renderer/dirty"
	"github.com/dshills/cellgrid/internal/renderer/grapheme"
)

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// StatusLine renders the bottom status line: a mode badge, an optional
// message and the statistics of the previous frame.
type StatusLine struct {
	Mode  string
	Frame uint64
	Size  core.Size
	Stats dirty.Stats
	// ShowStats adds the cell/run counts of the previous frame.
	ShowStats bool

	Message     string
	MessageType MessageType

	ModeStyle core.Style
	BarStyle  core.Style
}

// Render implements renderer.Widget.
func (s StatusLine) Render(area core.Rect, buf *buffer.Buffer) {
	if area.IsEmpty() {
		return
	}
	row := core.NewRect(area.X, area.Y, area.Width, 1)
	buf.Fill(row, buffer.EmptyCell())
	buf.SetStyle(row, s.BarStyle)

	x, _ := buf.SetString(area.X, area.Y, " "+s.Mode+" ", s.ModeStyle)
	if x < area.Right() {
		x++
	}

	info := s.formatInfo()
	infoWidth := grapheme.StringWidth(info)
	infoStart := int(area.Right()) - infoWidth - 1

	if s.Message != "" {
		limit := int(area.Right()) - int(x)
		if infoStart > int(x) {
			limit = infoStart - int(x) - 1
		}
		buf.SetStringN(x, area.Y, s.Message, limit, s.messageStyle())
	}

	if infoStart > int(x) {
		buf.SetString(uint16(infoStart), area.Y, info, s.BarStyle)
	}
}

func (s StatusLine) messageStyle() core.Style {
	switch s.MessageType {
	case MessageError:
		return s.BarStyle.WithForeground(core.ColorRed).Bold()
	case MessageWarning:
		return s.BarStyle.WithForeground(core.ColorYellow)
	default:
		return s.BarStyle
	}
}

// formatInfo formats the right side: "#12 80x24 | cells=3 runs=1 rows=1".
func (s StatusLine) formatInfo() string {
	info := fmt.Sprintf("#%d %s", s.Frame, s.Size)
	if s.ShowStats {
		info += " | " + s.Stats.String()
	}
	return info
}
