package domain

import (
	"time"

	"github.com/google/uuid"
)

// PlanPremium is the only plan currently sold.
const PlanPremium = "premium"

// Subscription records a paid plan held by a visitor. Provider identifiers
// come from the billing provider and may be empty for manually granted plans.
type Subscription struct {
	ID                     uuid.UUID
	VisitorID              uuid.UUID
	UserKey                string
	ProviderCustomerID     string
	ProviderSubscriptionID *string
	ProviderSessionID      string
	Plan                   string
	Metadata               map[string]string
	Active                 bool
	CreatedAt              time.Time
	UpdatedAt              time.Time
	CanceledAt             *time.Time
}

// IsCanceled returns true if the subscription was canceled.
func (s *Subscription) IsCanceled() bool {
	return s.CanceledAt != nil
}
