// Package buffertest provides helpers for comparing buffers in tests.
package buffertest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cellgrid/internal/renderer/buffer"
)

// AssertEqual fails the test if actual and expected differ. The failure
// lists every differing cell, prints both buffers and a line diff of
// their text.
func AssertEqual(t testing.TB, actual, expected *buffer.Buffer) {
	t.Helper()

	require.Equal(t, expected.Area(), actual.Area(), "buffer areas differ")
	if actual.Equal(expected) {
		return
	}

	var sb strings.Builder
	sb.WriteString("buffers differ\n")

	diffs := expected.Diff(actual)
	for _, ch := range diffs {
		i := expected.IndexOf(ch.X, ch.Y)
		if expected.Content()[i].Equals(ch.Cell) {
			continue
		}
		fmt.Fprintf(&sb, "index %d: at (%d, %d) expected %v actual %v\n",
			i, ch.X, ch.Y, expected.Content()[i], ch.Cell)
	}

	// Skip cells never appear in a diff, so report them separately.
	exp, act := expected.Content(), actual.Content()
	for i := range exp {
		if exp[i].Equals(act[i]) || reported(diffs, expected, i) {
			continue
		}
		x, y := expected.PosOf(i)
		fmt.Fprintf(&sb, "index %d: at (%d, %d) expected %v actual %v\n", i, x, y, exp[i], act[i])
	}

	fmt.Fprintf(&sb, "expected:\n%s\nactual:\n%s", expected, actual)
	if diff := textDiff(expected.String(), actual.String()); diff != "" {
		fmt.Fprintf(&sb, "\n\ndiff:\n%s", diff)
	}
	t.Error(sb.String())
}

// textDiff returns a unified diff of two rendered buffers, or "" when
// their text is identical (for example when only styles differ).
func textDiff(expected, actual string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected + "\n"),
		B:        difflib.SplitLines(actual + "\n"),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  1,
	})
	if err != nil {
		return ""
	}
	return diff
}

func reported(diffs []buffer.Change, b *buffer.Buffer, i int) bool {
	x, y := b.PosOf(i)
	for _, ch := range diffs {
		if ch.X == x && ch.Y == y {
			return true
		}
	}
	return false
}
