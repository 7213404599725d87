package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

// ProcessLine scans one line (without its terminator) and reports every sign
// as an Issue. In convert mode with a concrete active style each sign is
// rewritten via the rewrite table; a Change is recorded only when the glyph
// actually differs. start is the code-point offset of the line within the
// whole text and lineNo is 1-based.
func ProcessLine(line string, lineNo int, mode domain.Mode, active domain.Style, w domain.Width, start int) (string, []domain.Issue, []domain.Change) {
	var (
		out     strings.Builder
		issues  []domain.Issue
		changes []domain.Change
	)
	out.Grow(len(line))

	rewriting := mode == domain.ModeConvert && active.IsConcrete()
	target := EffectiveWidth(active, w)

	i := 0
	for pos := 0; pos < len(line); {
		ch, size := utf8.DecodeRuneInString(line[pos:])
		raw := line[pos : pos+size]
		pos += size

		role, ok := RoleOf(ch)
		if !ok {
			// Copy the raw bytes so invalid UTF-8 survives untouched.
			out.WriteString(raw)
			i++
			continue
		}

		issues = append(issues, domain.Issue{
			Line:    lineNo,
			Index:   i,
			Role:    role,
			Message: Message(role),
		})

		next := ch
		if rewriting {
			if g, ok := Rewrite(role, active, target); ok {
				next = g
			}
		}
		out.WriteRune(next)

		if next != ch {
			changes = append(changes, domain.Change{
				Line:      lineNo,
				Position:  start + i,
				Original:  string(ch),
				Converted: string(next),
			})
		}
		i++
	}

	return out.String(), issues, changes
}
