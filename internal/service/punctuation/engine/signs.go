// Package engine classifies and rewrites Japanese and Western comma/period
// glyphs. Everything here is pure and safe for concurrent use; the lookup
// tables are built once at package initialization and never mutated.
package engine

import "github.com/heartmarshall/punctcheck/internal/domain"

// signGlyphs maps each role to the single code point that produces it.
var signGlyphs = [domain.NumRoles]rune{
	domain.RoleJPComma:      '、',
	domain.RoleJPPeriod:     '。',
	domain.RoleENCommaFull:  '，',
	domain.RoleENCommaHalf:  ',',
	domain.RoleENPeriodFull: '．',
	domain.RoleENPeriodHalf: '.',
}

// signWidths is the declared width variant of each source glyph.
var signWidths = [domain.NumRoles]domain.Width{
	domain.RoleJPComma:      domain.WidthFull,
	domain.RoleJPPeriod:     domain.WidthFull,
	domain.RoleENCommaFull:  domain.WidthFull,
	domain.RoleENCommaHalf:  domain.WidthHalf,
	domain.RoleENPeriodFull: domain.WidthFull,
	domain.RoleENPeriodHalf: domain.WidthHalf,
}

// labels are the human-readable sign names shared by issue messages and
// statistics lines.
var labels = [domain.NumRoles]string{
	domain.RoleJPComma:      "日本語の読点（、）",
	domain.RoleJPPeriod:     "日本語の句点（。）",
	domain.RoleENCommaFull:  "英語のコンマ（全角：，）",
	domain.RoleENCommaHalf:  "英語のコンマ（半角：,）",
	domain.RoleENPeriodFull: "英語のピリオド（全角：．）",
	domain.RoleENPeriodHalf: "英語のピリオド（半角：.）",
}

var glyphRoles = func() map[rune]domain.Role {
	m := make(map[rune]domain.Role, domain.NumRoles)
	for i, g := range signGlyphs {
		m[g] = domain.Role(i)
	}
	return m
}()

// RoleOf returns the role of r, or false when r is not a recognized sign.
func RoleOf(r rune) (domain.Role, bool) {
	role, ok := glyphRoles[r]
	return role, ok
}

// Glyph returns the source glyph of role.
func Glyph(role domain.Role) rune {
	return signGlyphs[role]
}

// Message returns the per-occurrence message reported for role.
func Message(role domain.Role) string {
	if !role.IsValid() {
		return "不明な句読点が見つかりました"
	}
	return labels[role] + "が見つかりました"
}
