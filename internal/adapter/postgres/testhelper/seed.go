package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

// SeedVisitor inserts a visitor last seen at lastSeen with no usage today.
func SeedVisitor(t *testing.T, pool *pgxpool.Pool, lastSeen time.Time) domain.Visitor {
	t.Helper()
	ctx := context.Background()

	id := uuid.New()
	v := domain.Visitor{
		ID:            id,
		UserKey:       id.String(),
		Fingerprint:   "fp-" + id.String()[:8],
		LastIP:        "192.0.2.10",
		LastUserAgent: "testhelper",
		CreatedAt:     lastSeen.UTC().Truncate(time.Microsecond),
		LastSeenAt:    lastSeen.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO visitors (id, user_key, fingerprint, last_ip, last_user_agent, created_at, last_seen_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		v.ID, v.UserKey, v.Fingerprint, v.LastIP, v.LastUserAgent, v.CreatedAt, v.LastSeenAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVisitor: %v", err)
	}

	return v
}

// SeedSubscription inserts an active premium subscription for v.
func SeedSubscription(t *testing.T, pool *pgxpool.Pool, v domain.Visitor) domain.Subscription {
	t.Helper()
	ctx := context.Background()

	s := domain.Subscription{
		ID:        uuid.New(),
		VisitorID: v.ID,
		UserKey:   v.UserKey,
		Plan:      domain.PlanPremium,
		Active:    true,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO subscriptions (id, visitor_id, user_key, plan, is_active)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.VisitorID, s.UserKey, s.Plan, s.Active,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubscription: %v", err)
	}

	return s
}
