package quota

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/punctcheck/internal/auth"
	"github.com/heartmarshall/punctcheck/internal/domain"
)

// CheckAndConsume records the visitor and consumes one use of today's quota.
// Premium visitors are never charged. When the quota is exhausted the
// returned error is a *domain.QuotaError carrying the current usage; the
// visitor row is still updated in that case.
func (s *Service) CheckAndConsume(ctx context.Context, visitor domain.VisitorIdentity) (domain.Usage, error) {
	var usage domain.Usage

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, premium, err := s.load(ctx, visitor)
		if err != nil {
			return err
		}
		if premium {
			usage = domain.Unlimited()
			return nil
		}

		usage = v.Consume(s.today(), s.limit)
		if err := s.visitors.SaveUsage(ctx, *v); err != nil {
			return fmt.Errorf("save usage: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.Usage{}, err
	}

	if !usage.Allowed {
		s.log.InfoContext(ctx, "quota exceeded",
			slog.String("visitor_id", visitor.ID.String()),
			slog.Int("used", usage.Used),
			slog.Int("limit", usage.Limit),
		)
		return usage, &domain.QuotaError{Usage: usage}
	}

	return usage, nil
}

// Usage reports the visitor's quota without consuming it. A stale usage day
// is reset and persisted.
func (s *Service) Usage(ctx context.Context, visitor domain.VisitorIdentity) (domain.Usage, error) {
	var usage domain.Usage

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		v, premium, err := s.load(ctx, visitor)
		if err != nil {
			return err
		}
		if premium {
			usage = domain.Unlimited()
			return nil
		}

		if v.RollOver(s.today()) {
			if err := s.visitors.SaveUsage(ctx, *v); err != nil {
				return fmt.Errorf("save usage: %w", err)
			}
		}
		usage = v.Snapshot(s.limit)
		return nil
	})
	if err != nil {
		return domain.Usage{}, err
	}

	return usage, nil
}

func (s *Service) load(ctx context.Context, visitor domain.VisitorIdentity) (*domain.Visitor, bool, error) {
	if visitor.ID == uuid.Nil {
		return nil, false, domain.NewValidationError("visitor_id", "required")
	}

	v, err := s.visitors.Touch(ctx, domain.Visitor{
		ID:            visitor.ID,
		UserKey:       visitor.UserKey(),
		Fingerprint:   auth.Fingerprint(visitor.IP, visitor.UserAgent),
		LastIP:        visitor.IP,
		LastUserAgent: visitor.UserAgent,
		UsageDate:     s.today(),
	})
	if err != nil {
		return nil, false, fmt.Errorf("touch visitor: %w", err)
	}

	premium, err := s.subscriptions.HasActive(ctx, v.UserKey)
	if err != nil {
		return nil, false, fmt.Errorf("check subscription: %w", err)
	}

	return v, premium, nil
}
