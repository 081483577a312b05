package grapheme

import (
	"testing"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		name    string
		cluster string
		want    int
	}{
		{"empty", "", 0},
		{"ascii", "a", 1},
		{"space", " ", 1},
		{"control", "\x1b", 0},
		{"latin", "\u00e9", 1},
		{"combining sequence", "e\u0301", 1},
		{"combining mark alone", "\u0301", 0},
		{"zero width space", "\u200b", 0},
		{"variation selector 16 alone", "\uFE0F", 0},
		{"variation selector 15 alone", "\uFE0E", 0},
		{"word joiner", "\u2060", 0},
		{"zero width joiner alone", "\u200d", 0},
		{"keyboard", "⌨", 1},
		{"cjk", "称", 2},
		{"fullwidth", "Ａ", 2},
		{"box drawing", "┌", 1},
		{"emoji", "😀", 2},
		{"keyboard with vs16", "⌨️", 2},
		{"eye in speech bubble", "👁️‍🗨️", 2},
		{"family", "👨‍👩‍👧", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Width(tt.cluster); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.cluster, got, tt.want)
			}
		})
	}
}

func TestClusters(t *testing.T) {
	text := "a" + "e\u0301" + "称" + "👁️‍🗨️" + "b"

	var clusters []string
	var widths []int
	for c, w := range Clusters(text) {
		clusters = append(clusters, c)
		widths = append(widths, w)
	}

	wantClusters := []string{"a", "e\u0301", "称", "👁️‍🗨️", "b"}
	wantWidths := []int{1, 1, 2, 2, 1}

	if len(clusters) != len(wantClusters) {
		t.Fatalf("got %d clusters %q, want %d", len(clusters), clusters, len(wantClusters))
	}
	for i := range wantClusters {
		if clusters[i] != wantClusters[i] {
			t.Errorf("cluster %d = %q, want %q", i, clusters[i], wantClusters[i])
		}
		if widths[i] != wantWidths[i] {
			t.Errorf("width %d = %d, want %d", i, widths[i], wantWidths[i])
		}
	}
}

func TestClustersStopsEarly(t *testing.T) {
	n := 0
	for range Clusters("abcdef") {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected 3 iterations, got %d", n)
	}
}

func TestClustersEmpty(t *testing.T) {
	for c := range Clusters("") {
		t.Errorf("unexpected cluster %q", c)
	}
}

func TestStringWidth(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 0},
		{"Hello", 5},
		{"称号", 4},
		{"a👁️‍🗨️b", 4},
		{"e\u0301e\u0301", 2},
	}
	for _, tt := range tests {
		if got := StringWidth(tt.s); got != tt.want {
			t.Errorf("StringWidth(%q) = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestHasControl(t *testing.T) {
	if !HasControl("\n") {
		t.Error("newline should be a control character")
	}
	if !HasControl("\r\n") {
		t.Error("CRLF should be a control cluster")
	}
	if !HasControl("\t") {
		t.Error("tab should be a control character")
	}
	if HasControl("a") || HasControl("称") || HasControl("👁️‍🗨️") {
		t.Error("printable clusters should not report control characters")
	}
}

func TestIsEmojiPresentation(t *testing.T) {
	if !IsEmojiPresentation("⌨️") {
		t.Error("keyboard with VS16 should be emoji presentation")
	}
	if IsEmojiPresentation("⌨") {
		t.Error("bare keyboard should not be emoji presentation")
	}
	if IsEmojiPresentation("称") {
		t.Error("cjk glyph should not be emoji presentation")
	}
}
