package engine

import "github.com/heartmarshall/punctcheck/internal/domain"

const (
	styleJP = iota
	styleEN
	numStyles
)

const (
	widthFull = iota
	widthHalf
	numWidths
)

// rewriteTable[style][width][role] is the glyph emitted when converting a
// sign of role to the given style and width.
var rewriteTable = [numStyles][numWidths][domain.NumRoles]rune{
	styleJP: {
		widthFull: {
			domain.RoleJPComma:      '、',
			domain.RoleJPPeriod:     '。',
			domain.RoleENCommaFull:  '、',
			domain.RoleENCommaHalf:  '、',
			domain.RoleENPeriodFull: '。',
			domain.RoleENPeriodHalf: '。',
		},
		widthHalf: {
			domain.RoleJPComma:      '､',
			domain.RoleJPPeriod:     '｡',
			domain.RoleENCommaFull:  '､',
			domain.RoleENCommaHalf:  '､',
			domain.RoleENPeriodFull: '｡',
			domain.RoleENPeriodHalf: '｡',
		},
	},
	styleEN: {
		widthFull: {
			domain.RoleJPComma:      '，',
			domain.RoleJPPeriod:     '．',
			domain.RoleENCommaFull:  '，',
			domain.RoleENCommaHalf:  '，',
			domain.RoleENPeriodFull: '．',
			domain.RoleENPeriodHalf: '．',
		},
		widthHalf: {
			domain.RoleJPComma:      ',',
			domain.RoleJPPeriod:     '.',
			domain.RoleENCommaFull:  ',',
			domain.RoleENCommaHalf:  ',',
			domain.RoleENPeriodFull: '.',
			domain.RoleENPeriodHalf: '.',
		},
	},
}

// EffectiveWidth resolves WidthAuto against the active style: Japanese text
// is written full width, Western text half width. An empty width means auto.
func EffectiveWidth(active domain.Style, w domain.Width) domain.Width {
	if w != "" && w != domain.WidthAuto {
		return w
	}
	if active == domain.StyleJP {
		return domain.WidthFull
	}
	return domain.WidthHalf
}

// Rewrite returns the glyph that role becomes under style and width. The
// width must already be resolved. It returns false for a non-concrete style
// or unresolved width, in which case the caller keeps the original glyph.
func Rewrite(role domain.Role, style domain.Style, w domain.Width) (rune, bool) {
	si, ok := styleIndex(style)
	if !ok || !role.IsValid() {
		return 0, false
	}
	wi, ok := widthIndex(w)
	if !ok {
		return 0, false
	}
	g := rewriteTable[si][wi][role]
	return g, g != 0
}

func styleIndex(s domain.Style) (int, bool) {
	switch s {
	case domain.StyleJP:
		return styleJP, true
	case domain.StyleEN:
		return styleEN, true
	}
	return 0, false
}

func widthIndex(w domain.Width) (int, bool) {
	switch w {
	case domain.WidthFull:
		return widthFull, true
	case domain.WidthHalf:
		return widthHalf, true
	}
	return 0, false
}
