package engine

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const diffContext = 2

// UnifiedDiff renders a line-based unified diff between the submitted and
// converted text. It returns an empty string when both are equal.
func UnifiedDiff(original, converted string) (string, error) {
	if original == converted {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLinesKeepNL(original),
		B:        splitLinesKeepNL(converted),
		FromFile: "original",
		ToFile:   "converted",
		Context:  diffContext,
	})
}

// splitLinesKeepNL keeps the "\n" on each element. A final line without a
// terminator gets one so hunk lines never run together.
func splitLinesKeepNL(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.SplitAfter(s, "\n")
	last := len(lines) - 1
	if lines[last] == "" {
		return lines[:last]
	}
	if !strings.HasSuffix(lines[last], "\n") {
		lines[last] += "\n"
	}
	return lines
}
