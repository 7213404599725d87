package engine

import "github.com/heartmarshall/punctcheck/internal/domain"

// DetectStyle classifies text by the families of the signs it contains:
// jp, en, mixed when both occur, or none when no sign occurs.
func DetectStyle(text string) domain.Style {
	var jp, en int
	for _, ch := range text {
		role, ok := RoleOf(ch)
		if !ok {
			continue
		}
		switch role.Family() {
		case domain.StyleJP:
			jp++
		case domain.StyleEN:
			en++
		}
	}

	switch {
	case jp > 0 && en > 0:
		return domain.StyleMixed
	case jp > 0:
		return domain.StyleJP
	case en > 0:
		return domain.StyleEN
	default:
		return domain.StyleNone
	}
}

// ResolveActiveStyle picks the style conversion targets. An explicit jp/en
// request wins; auto falls back to the detected style when it is concrete.
// StyleNone means nothing will be rewritten.
func ResolveActiveStyle(requested, detected domain.Style) domain.Style {
	if requested == domain.StyleAuto {
		if detected.IsConcrete() {
			return detected
		}
		return domain.StyleNone
	}
	if requested.IsConcrete() {
		return requested
	}
	return domain.StyleNone
}
