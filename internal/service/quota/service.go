package quota

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

// DefaultDailyLimit is the number of checks a free visitor may run per day.
const DefaultDailyLimit = 20

type visitorRepo interface {
	Touch(ctx context.Context, v domain.Visitor) (*domain.Visitor, error)
	SaveUsage(ctx context.Context, v domain.Visitor) error
}

type subscriptionRepo interface {
	HasActive(ctx context.Context, userKey string) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service enforces the per-visitor daily quota.
type Service struct {
	log           *slog.Logger
	visitors      visitorRepo
	subscriptions subscriptionRepo
	tx            txManager
	limit         int
	loc           *time.Location
	now           func() time.Time
}

// NewService creates a new quota service. Days roll over at midnight in loc;
// a nil loc means UTC and a non-positive limit means DefaultDailyLimit.
func NewService(
	logger *slog.Logger,
	visitors visitorRepo,
	subscriptions subscriptionRepo,
	tx txManager,
	limit int,
	loc *time.Location,
) *Service {
	if limit <= 0 {
		limit = DefaultDailyLimit
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:           logger.With("service", "quota"),
		visitors:      visitors,
		subscriptions: subscriptions,
		tx:            tx,
		limit:         limit,
		loc:           loc,
		now:           time.Now,
	}
}

// Limit returns the configured daily limit.
func (s *Service) Limit() int { return s.limit }

func (s *Service) today() string {
	return s.now().In(s.loc).Format(domain.UsageDateLayout)
}
