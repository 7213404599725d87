package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

// Cancel deactivates the visitor's active subscription. It reports false
// when there was nothing to cancel.
func (s *Service) Cancel(ctx context.Context, input UserKeyInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	canceled := false

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		sub, err := s.subscriptions.GetActive(ctx, input.UserKey)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get active subscription: %w", err)
		}

		if err := s.subscriptions.Deactivate(ctx, sub.ID, s.now().UTC()); err != nil {
			return fmt.Errorf("deactivate subscription: %w", err)
		}
		canceled = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if canceled {
		s.log.InfoContext(ctx, "subscription canceled", slog.String("user_key", input.UserKey))
	}

	return canceled, nil
}

// Active returns the visitor's active subscription or domain.ErrNotFound.
func (s *Service) Active(ctx context.Context, input UserKeyInput) (*domain.Subscription, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	sub, err := s.subscriptions.GetActive(ctx, input.UserKey)
	if err != nil {
		return nil, fmt.Errorf("get active subscription: %w", err)
	}
	return sub, nil
}
