// Command punctfix runs the punctuation engine over a file or stdin without
// touching the database or any quota.
//
// Usage:
//
//	punctfix [--mode=convert] [--style=auto] [--width=auto] [--json | --diff | --report] [file]
//
// With no file, or with "-", the text is read from stdin. The default output
// is the resulting text; statistics go to stderr.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/heartmarshall/punctcheck/internal/domain"
	"github.com/heartmarshall/punctcheck/internal/service/punctuation"
	"github.com/heartmarshall/punctcheck/internal/service/punctuation/engine"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type issueJSON struct {
	Line    int    `json:"line"`
	Index   int    `json:"index"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type changeJSON struct {
	Line      int    `json:"line"`
	Position  int    `json:"position"`
	Original  string `json:"original"`
	Converted string `json:"converted"`
}

type resultJSON struct {
	ResultText    string         `json:"result_text"`
	Issues        []issueJSON    `json:"issues"`
	Changes       []changeJSON   `json:"changes"`
	Statistics    []string       `json:"statistics"`
	RoleCounts    map[string]int `json:"role_counts"`
	DetectedStyle string         `json:"detected_style"`
	AppliedStyle  *string        `json:"applied_style"`
	TotalChanges  int            `json:"total_changes"`
	Diff          string         `json:"diff,omitempty"`
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("punctfix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", string(domain.ModeConvert), "check or convert")
	style := fs.String("style", string(domain.StyleAuto), "jp, en or auto")
	width := fs.String("width", string(domain.WidthAuto), "auto, full or half")
	asJSON := fs.Bool("json", false, "print the full result as JSON")
	asDiff := fs.Bool("diff", false, "print a unified diff instead of the text")
	asReport := fs.Bool("report", false, "print every issue under its source line")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if countTrue(*asJSON, *asDiff, *asReport) > 1 {
		fmt.Fprintln(stderr, "punctfix: --json, --diff and --report are mutually exclusive")
		return 2
	}

	text, err := readInput(fs.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "punctfix: %v\n", err)
		return 1
	}

	input := punctuation.CheckInput{
		Text:  text,
		Mode:  domain.Mode(*mode),
		Style: domain.Style(*style),
		Width: domain.Width(*width),
	}
	if err := input.Validate(math.MaxInt); err != nil {
		fmt.Fprintf(stderr, "punctfix: %v\n", err)
		return 2
	}

	result := engine.Run(engine.Request{
		Text:  input.Text,
		Mode:  input.Mode,
		Style: input.Style,
		Width: input.EffectiveWidth(),
	})

	diff, err := engine.UnifiedDiff(text, result.Text)
	if err != nil {
		fmt.Fprintf(stderr, "punctfix: render diff: %v\n", err)
		return 1
	}

	switch {
	case *asJSON:
		enc := json.NewEncoder(stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(toJSON(result, diff)); err != nil {
			fmt.Fprintf(stderr, "punctfix: %v\n", err)
			return 1
		}
	case *asDiff:
		fmt.Fprint(stdout, diff)
	case *asReport:
		writeReport(stdout, text, result.Issues)
	default:
		fmt.Fprint(stdout, result.Text)
		for _, line := range result.Statistics {
			fmt.Fprintln(stderr, line)
		}
	}

	return 0
}

func countTrue(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

// writeReport prints each issue as "line:col type message" followed by the
// source line and a caret. The caret column is measured in terminal cells so
// it lines up under full-width text.
func writeReport(w io.Writer, text string, issues []domain.Issue) {
	lines := strings.Split(text, "\n")
	for _, is := range issues {
		src := []rune(strings.TrimSuffix(lines[is.Line-1], "\r"))
		pad := runewidth.StringWidth(string(src[:is.Index]))
		fmt.Fprintf(w, "%d:%d %s %s\n", is.Line, is.Index+1, is.Role, is.Message)
		fmt.Fprintf(w, "  %s\n  %s^\n", string(src), strings.Repeat(" ", pad))
	}
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}

func toJSON(r domain.CheckResult, diff string) resultJSON {
	out := resultJSON{
		ResultText:    r.Text,
		Issues:        make([]issueJSON, 0, len(r.Issues)),
		Changes:       make([]changeJSON, 0, len(r.Changes)),
		Statistics:    r.Statistics,
		RoleCounts:    make(map[string]int, len(r.RoleCounts)),
		DetectedStyle: r.Summary.DetectedStyle.String(),
		TotalChanges:  r.Summary.TotalChanges,
		Diff:          diff,
	}
	if out.Statistics == nil {
		out.Statistics = []string{}
	}
	if r.Summary.AppliedStyle.IsConcrete() {
		s := r.Summary.AppliedStyle.String()
		out.AppliedStyle = &s
	}
	for _, is := range r.Issues {
		out.Issues = append(out.Issues, issueJSON{Line: is.Line, Index: is.Index, Type: is.Role.String(), Message: is.Message})
	}
	for _, ch := range r.Changes {
		out.Changes = append(out.Changes, changeJSON{Line: ch.Line, Position: ch.Position, Original: ch.Original, Converted: ch.Converted})
	}
	for role, n := range r.RoleCounts {
		out.RoleCounts[role.String()] = n
	}
	return out
}
