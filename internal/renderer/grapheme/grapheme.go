// Package grapheme segments text into user-perceived characters and
// measures how many terminal columns each one occupies.
package grapheme

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VariationSelector16 requests emoji presentation for the preceding rune.
const VariationSelector16 = '\uFE0F'

// MaxWidth is the widest a single cluster is ever measured.
const MaxWidth = 2

// narrow measures ambiguous-width runes as one column regardless of locale.
var narrow = runewidth.NewCondition()

// Clusters yields each grapheme cluster of s with its display width.
func Clusters(s string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		state := -1
		rest := s
		for rest != "" {
			var cluster string
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			if !yield(cluster, Width(cluster)) {
				return
			}
		}
	}
}

// Width returns the number of columns cluster occupies: 0 for combining
// and zero-width sequences, 1 for normal glyphs, 2 for wide glyphs.
func Width(cluster string) int {
	switch {
	case cluster == "":
		return 0
	case len(cluster) == 1:
		b := cluster[0]
		if b < 0x20 || b == 0x7f {
			return 0
		}
		return 1
	}

	r, size := utf8.DecodeRuneInString(cluster)
	if size == len(cluster) {
		// go-runewidth gives variation selectors and joiners a column.
		if uniseg.StringWidth(cluster) == 0 {
			return 0
		}
		return min(narrow.RuneWidth(r), MaxWidth)
	}
	return min(uniseg.StringWidth(cluster), MaxWidth)
}

// StringWidth returns the total display width of s.
func StringWidth(s string) int {
	total := 0
	for _, w := range Clusters(s) {
		total += w
	}
	return total
}

// HasControl reports whether cluster contains a control character.
func HasControl(cluster string) bool {
	for _, r := range cluster {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

// IsEmojiPresentation reports whether cluster carries VS16.
func IsEmojiPresentation(cluster string) bool {
	return strings.ContainsRune(cluster, VariationSelector16)
}
