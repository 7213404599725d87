// Package subscription implements the Subscription repository using
// PostgreSQL. Statements are built with squirrel; metadata is stored as JSONB.
package subscription

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/punctcheck/internal/adapter/postgres"
	"github.com/heartmarshall/punctcheck/internal/domain"
)

const table = "subscriptions"

var columns = []string{
	"id", "visitor_id", "user_key", "provider_customer_id", "provider_subscription_id",
	"provider_session_id", "plan", "metadata", "is_active", "created_at", "updated_at", "canceled_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides subscription persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new subscription repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetActive returns the active subscription for userKey.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) GetActive(ctx context.Context, userKey string) (*domain.Subscription, error) {
	query, args, err := psql.Select(columns...).
		From(table).
		Where(sq.Eq{"user_key": userKey, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)
	sub, err := scanSubscription(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "subscription", userKey)
	}

	return sub, nil
}

// HasActive reports whether userKey holds an active subscription.
func (r *Repo) HasActive(ctx context.Context, userKey string) (bool, error) {
	sub := sq.Select("1").
		From(table).
		Where(sq.Eq{"user_key": userKey, "is_active": true})
	query, args, err := psql.Select().Column(sq.Expr("EXISTS (?)", sub)).ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	var exists bool
	if err := querier.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "subscription", userKey)
	}

	return exists, nil
}

// Create inserts a new subscription. A second active subscription for the
// same visitor is rejected with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, s domain.Subscription) (*domain.Subscription, error) {
	meta, err := marshalMetadata(s.Metadata)
	if err != nil {
		return nil, err
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	now := time.Now().UTC()

	query, args, err := psql.Insert(table).
		Columns(
			"id", "visitor_id", "user_key", "provider_customer_id", "provider_subscription_id",
			"provider_session_id", "plan", "metadata", "is_active", "created_at", "updated_at",
		).
		Values(
			s.ID, s.VisitorID, s.UserKey, s.ProviderCustomerID, s.ProviderSubscriptionID,
			s.ProviderSessionID, s.Plan, meta, s.Active, now, now,
		).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)
	out, err := scanSubscription(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "subscription", s.UserKey)
	}

	return out, nil
}

// Update overwrites the provider identifiers, metadata and active flag of an
// existing subscription.
func (r *Repo) Update(ctx context.Context, s domain.Subscription) (*domain.Subscription, error) {
	meta, err := marshalMetadata(s.Metadata)
	if err != nil {
		return nil, err
	}

	query, args, err := psql.Update(table).
		SetMap(map[string]any{
			"provider_customer_id":     s.ProviderCustomerID,
			"provider_subscription_id": s.ProviderSubscriptionID,
			"provider_session_id":      s.ProviderSessionID,
			"metadata":                 meta,
			"is_active":                s.Active,
			"updated_at":               time.Now().UTC(),
		}).
		Where(sq.Eq{"id": s.ID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)
	out, err := scanSubscription(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "subscription", s.ID.String())
	}

	return out, nil
}

// Deactivate marks a subscription inactive and stamps canceled_at.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Deactivate(ctx context.Context, id uuid.UUID, at time.Time) error {
	query, args, err := psql.Update(table).
		Set("is_active", false).
		Set("canceled_at", at).
		Set("updated_at", at).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)
	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "subscription", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("subscription %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func marshalMetadata(m map[string]string) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return b, nil
}

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var (
		s    domain.Subscription
		meta []byte
	)
	if err := row.Scan(
		&s.ID, &s.VisitorID, &s.UserKey, &s.ProviderCustomerID, &s.ProviderSubscriptionID,
		&s.ProviderSessionID, &s.Plan, &meta, &s.Active, &s.CreatedAt, &s.UpdatedAt, &s.CanceledAt,
	); err != nil {
		return nil, err
	}

	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &s.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal metadata: %w", err)
		}
	}

	return &s, nil
}
