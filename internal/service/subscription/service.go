package subscription

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

type subscriptionRepo interface {
	GetActive(ctx context.Context, userKey string) (*domain.Subscription, error)
	Create(ctx context.Context, s domain.Subscription) (*domain.Subscription, error)
	Update(ctx context.Context, s domain.Subscription) (*domain.Subscription, error)
	Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error
}

type visitorRepo interface {
	Touch(ctx context.Context, v domain.Visitor) (*domain.Visitor, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages premium subscriptions.
type Service struct {
	log           *slog.Logger
	subscriptions subscriptionRepo
	visitors      visitorRepo
	tx            txManager
	now           func() time.Time
}

// NewService creates a new subscription service.
func NewService(
	logger *slog.Logger,
	subscriptions subscriptionRepo,
	visitors visitorRepo,
	tx txManager,
) *Service {
	return &Service{
		log:           logger.With("service", "subscription"),
		subscriptions: subscriptions,
		visitors:      visitors,
		tx:            tx,
		now:           time.Now,
	}
}
