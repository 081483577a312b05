package text

import (
	"testing"

	"github.com/dshills/cellgrid/internal/renderer/core"
)

func TestSpanWidth(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"abc", 3},
		{"称号", 4},
		{"a\tb", 2},
	}
	for _, tt := range tests {
		if got := Raw(tt.content).Width(); got != tt.want {
			t.Errorf("Width(%q) = %d, want %d", tt.content, got, tt.want)
		}
	}
}

func TestLine(t *testing.T) {
	bold := core.DefaultStyle().Bold()
	line := NewLine(Raw("ab"), Styled("称", bold))
	line.Push(Raw("!"))

	if got := line.Width(); got != 5 {
		t.Errorf("expected width 5, got %d", got)
	}
	if got := line.String(); got != "ab称!" {
		t.Errorf("expected content %q, got %q", "ab称!", got)
	}
	if len(line.Spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(line.Spans))
	}
	if !line.Spans[1].Style.Equals(bold) {
		t.Error("styled span should keep its style")
	}
}

func TestLineWithStyle(t *testing.T) {
	base := core.NewStyle(core.ColorRed)
	line := RawLine("x").WithStyle(base)

	if !line.Style.Equals(base) {
		t.Error("WithStyle should set line style")
	}
	if !line.Spans[0].Style.IsDefault() {
		t.Error("WithStyle should not touch span styles")
	}
}
