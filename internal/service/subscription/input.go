package subscription

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

// ActivateInput carries billing provider identifiers for a new or refreshed
// subscription. Empty identifiers leave the stored values untouched.
type ActivateInput struct {
	UserKey                string
	ProviderCustomerID     string
	ProviderSubscriptionID string
	ProviderSessionID      string
	Metadata               map[string]string
}

// Validate checks the input and collects all errors.
func (i ActivateInput) Validate() error {
	var errs []domain.FieldError

	if err := validateUserKey(i.UserKey); err != nil {
		errs = append(errs, *err)
	}
	for k := range i.Metadata {
		if strings.TrimSpace(k) == "" {
			errs = append(errs, domain.FieldError{Field: "metadata", Message: "keys must not be empty"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ActivateInput) visitorID() uuid.UUID {
	return uuid.MustParse(i.UserKey)
}

func validateUserKey(key string) *domain.FieldError {
	if key == "" {
		return &domain.FieldError{Field: "user_key", Message: "required"}
	}
	if id, err := uuid.Parse(key); err != nil || id == uuid.Nil {
		return &domain.FieldError{Field: "user_key", Message: "must be a visitor UUID"}
	}
	return nil
}

// UserKeyInput identifies a visitor by its persistent key.
type UserKeyInput struct {
	UserKey string
}

// Validate checks the user key.
func (i UserKeyInput) Validate() error {
	if err := validateUserKey(i.UserKey); err != nil {
		return &domain.ValidationError{Errors: []domain.FieldError{*err}}
	}
	return nil
}
