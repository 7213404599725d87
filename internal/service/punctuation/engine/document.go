package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

// Request is an already validated document-level request.
type Request struct {
	Text  string
	Mode  domain.Mode
	Style domain.Style
	Width domain.Width
}

// Run detects the document style, resolves the active style and processes
// the text line by line. Lines are split on LF only; a CR before LF stays
// part of its line and counts toward positions.
func Run(req Request) domain.CheckResult {
	detected := DetectStyle(req.Text)
	active := ResolveActiveStyle(req.Style, detected)

	lines := strings.Split(req.Text, "\n")
	out := make([]string, len(lines))

	var (
		issues  []domain.Issue
		changes []domain.Change
		tally   Tally
		offset  int
	)
	for n, line := range lines {
		text, li, lc := ProcessLine(line, n+1, req.Mode, active, req.Width, offset)
		out[n] = text
		issues = append(issues, li...)
		changes = append(changes, lc...)
		tally.AddIssues(li)

		offset += utf8.RuneCountInString(line) + 1
	}

	if issues == nil {
		issues = []domain.Issue{}
	}
	if changes == nil {
		changes = []domain.Change{}
	}

	return domain.CheckResult{
		Text:       strings.Join(out, "\n"),
		Issues:     issues,
		Changes:    changes,
		Statistics: tally.Statistics(),
		RoleCounts: tally.Counts(),
		Summary: domain.CheckSummary{
			DetectedStyle: detected,
			AppliedStyle:  active,
			TotalChanges:  len(changes),
		},
	}
}
