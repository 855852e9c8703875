package testutils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// AssertText fails the test when actual differs from expected and prints
// both texts with line numbers followed by a character diff.
func AssertText(t *testing.T, expected, actual string) bool {
	t.Helper()
	if expected == actual {
		return true
	}
	t.Errorf("output mismatch\n--- Expected ---\n%s\n--- Actual ---\n%s\n--- Diff ---\n%s",
		numbered(expected), numbered(actual), Diff(expected, actual))
	return false
}

// Diff returns a line-oriented summary of the differences between two texts.
// Unchanged runs longer than 50 bytes are shortened.
func Diff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)

	var b strings.Builder
	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&b, "- %q\n", diff.Text)
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&b, "+ %q\n", diff.Text)
		case diffmatchpatch.DiffEqual:
			if len(diff.Text) > 50 {
				fmt.Fprintf(&b, "  %q...\n", diff.Text[:47])
			} else {
				fmt.Fprintf(&b, "  %q\n", diff.Text)
			}
		}
	}
	return b.String()
}

func numbered(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = fmt.Sprintf("%4d| %s", i+1, line)
	}
	return strings.Join(lines, "\n")
}
