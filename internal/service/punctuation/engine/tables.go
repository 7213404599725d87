package engine

import (
	"fmt"

	"golang.org/x/text/width"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

func init() {
	if err := validateTables(); err != nil {
		panic("engine: " + err.Error())
	}
}

// validateTables checks that the sign mapping is total and injective and
// that every rewrite cell is defined and renders at its column's width.
func validateTables() error {
	seen := make(map[rune]domain.Role, domain.NumRoles)
	for _, role := range domain.AllRoles() {
		g := signGlyphs[role]
		if g == 0 {
			return fmt.Errorf("role %s has no glyph", role)
		}
		if prev, dup := seen[g]; dup {
			return fmt.Errorf("glyph %q maps to both %s and %s", g, prev, role)
		}
		seen[g] = role

		if got := widthOf(g); got != signWidths[role] {
			return fmt.Errorf("role %s glyph %q is %s width, declared %s", role, g, got, signWidths[role])
		}
		if labels[role] == "" {
			return fmt.Errorf("role %s has no label", role)
		}
	}

	for _, style := range []domain.Style{domain.StyleJP, domain.StyleEN} {
		for _, w := range []domain.Width{domain.WidthFull, domain.WidthHalf} {
			for _, role := range domain.AllRoles() {
				g, ok := Rewrite(role, style, w)
				if !ok {
					return fmt.Errorf("no rewrite for %s under %s/%s", role, style, w)
				}
				if got := widthOf(g); got != w {
					return fmt.Errorf("rewrite of %s under %s/%s yields %s-width %q", role, style, w, got, g)
				}
			}
		}
	}

	return nil
}

// widthOf classifies r as full or half width per UAX #11.
func widthOf(r rune) domain.Width {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return domain.WidthFull
	case width.EastAsianHalfwidth, width.EastAsianNarrow:
		return domain.WidthHalf
	}
	return domain.WidthAuto
}

// SelfCheck re-runs the table validation performed at startup.
func SelfCheck() error {
	return validateTables()
}
