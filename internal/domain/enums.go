package domain

// Mode selects whether a request only reports signs or also rewrites them.
type Mode string

const (
	ModeCheck   Mode = "check"
	ModeConvert Mode = "convert"
)

func (m Mode) String() string { return string(m) }

func (m Mode) IsValid() bool {
	switch m {
	case ModeCheck, ModeConvert:
		return true
	}
	return false
}

// Style is either a requested punctuation style (jp, en, auto) or the outcome
// of style detection (jp, en, mixed, none).
type Style string

const (
	StyleJP    Style = "jp"
	StyleEN    Style = "en"
	StyleAuto  Style = "auto"
	StyleMixed Style = "mixed"
	StyleNone  Style = "none"
)

func (s Style) String() string { return string(s) }

// IsRequestable reports whether s may be sent by a client.
func (s Style) IsRequestable() bool {
	switch s {
	case StyleJP, StyleEN, StyleAuto:
		return true
	}
	return false
}

// IsConcrete reports whether s names a family that rewriting can target.
func (s Style) IsConcrete() bool {
	return s == StyleJP || s == StyleEN
}

// Width controls which glyph variant is emitted when rewriting.
type Width string

const (
	WidthAuto Width = "auto"
	WidthFull Width = "full"
	WidthHalf Width = "half"
)

func (w Width) String() string { return string(w) }

func (w Width) IsValid() bool {
	switch w {
	case WidthAuto, WidthFull, WidthHalf:
		return true
	}
	return false
}
