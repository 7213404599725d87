package punctuation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

// CheckInput holds the parameters of a check or convert request.
type CheckInput struct {
	Text  string
	Mode  domain.Mode
	Style domain.Style
	// Width defaults to auto when empty.
	Width domain.Width
}

// Validate checks all fields against maxLen and collects all errors.
func (i CheckInput) Validate(maxLen int) error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if utf8.RuneCountInString(i.Text) > maxLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", maxLen)})
	}

	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be one of: check, convert"})
	}
	if !i.Style.IsRequestable() {
		errs = append(errs, domain.FieldError{Field: "style", Message: "must be one of: jp, en, auto"})
	}
	if i.Width != "" && !i.Width.IsValid() {
		errs = append(errs, domain.FieldError{Field: "width", Message: "must be one of: auto, full, half"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EffectiveWidth returns the requested width, defaulting an empty one to auto.
func (i CheckInput) EffectiveWidth() domain.Width {
	if i.Width == "" {
		return domain.WidthAuto
	}
	return i.Width
}
