package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

// Activate creates the visitor's active premium subscription, or refreshes
// the existing one with any non-empty provider identifiers. The visitor row
// is created when missing.
func (s *Service) Activate(ctx context.Context, input ActivateInput) (*domain.Subscription, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *domain.Subscription

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, err := s.visitors.Touch(ctx, domain.Visitor{
			ID:      input.visitorID(),
			UserKey: input.UserKey,
		})
		if err != nil {
			return fmt.Errorf("touch visitor: %w", err)
		}

		existing, err := s.subscriptions.GetActive(ctx, input.UserKey)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			result, err = s.subscriptions.Create(ctx, newSubscription(v, input))
			if err != nil {
				return fmt.Errorf("create subscription: %w", err)
			}
			return nil
		case err != nil:
			return fmt.Errorf("get active subscription: %w", err)
		}

		merge(existing, input)
		result, err = s.subscriptions.Update(ctx, *existing)
		if err != nil {
			return fmt.Errorf("update subscription: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "subscription activated",
		slog.String("user_key", input.UserKey),
		slog.String("subscription_id", result.ID.String()),
	)

	return result, nil
}

func newSubscription(v *domain.Visitor, input ActivateInput) domain.Subscription {
	sub := domain.Subscription{
		VisitorID:          v.ID,
		UserKey:            input.UserKey,
		ProviderCustomerID: input.ProviderCustomerID,
		ProviderSessionID:  input.ProviderSessionID,
		Plan:               domain.PlanPremium,
		Metadata:           maps.Clone(input.Metadata),
		Active:             true,
	}
	if input.ProviderSubscriptionID != "" {
		id := input.ProviderSubscriptionID
		sub.ProviderSubscriptionID = &id
	}
	return sub
}

func merge(sub *domain.Subscription, input ActivateInput) {
	if input.ProviderCustomerID != "" {
		sub.ProviderCustomerID = input.ProviderCustomerID
	}
	if input.ProviderSubscriptionID != "" {
		id := input.ProviderSubscriptionID
		sub.ProviderSubscriptionID = &id
	}
	if input.ProviderSessionID != "" {
		sub.ProviderSessionID = input.ProviderSessionID
	}
	if len(input.Metadata) > 0 {
		sub.Metadata = maps.Clone(input.Metadata)
	}
	sub.Active = true
}
