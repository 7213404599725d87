// Package visitor implements the Visitor repository using PostgreSQL.
// All queries are raw SQL; the upsert relies on ON CONFLICT over user_key.
package visitor

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/punctcheck/internal/adapter/postgres"
	"github.com/heartmarshall/punctcheck/internal/domain"
)

// Repo provides visitor persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new visitor repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const visitorColumns = `id, user_key, fingerprint, last_ip, last_user_agent, usage_date, usage_count, created_at, last_seen_at`

// Empty client details never overwrite stored ones.
const touchSQL = `
INSERT INTO visitors (id, user_key, fingerprint, last_ip, last_user_agent, usage_date, usage_count, created_at, last_seen_at)
VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $7)
ON CONFLICT (user_key) DO UPDATE SET
    fingerprint     = COALESCE(NULLIF(EXCLUDED.fingerprint, ''), visitors.fingerprint),
    last_ip         = COALESCE(NULLIF(EXCLUDED.last_ip, ''), visitors.last_ip),
    last_user_agent = COALESCE(NULLIF(EXCLUDED.last_user_agent, ''), visitors.last_user_agent),
    last_seen_at    = EXCLUDED.last_seen_at
RETURNING ` + visitorColumns

const saveUsageSQL = `
UPDATE visitors
SET usage_date = $2, usage_count = $3
WHERE id = $1`

const getByKeySQL = `
SELECT ` + visitorColumns + `
FROM visitors
WHERE user_key = $1`

const deleteStaleSQL = `
DELETE FROM visitors v
WHERE v.last_seen_at < $1
  AND NOT EXISTS (SELECT 1 FROM subscriptions s WHERE s.visitor_id = v.id)`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Touch inserts the visitor or refreshes its client details and last_seen_at.
// The stored usage counters are returned unchanged. Inside a transaction the
// row stays locked until commit.
func (r *Repo) Touch(ctx context.Context, v domain.Visitor) (*domain.Visitor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC()
	row := querier.QueryRow(ctx, touchSQL,
		v.ID, v.UserKey, v.Fingerprint, v.LastIP, v.LastUserAgent, v.UsageDate, now,
	)

	out, err := scanVisitor(row)
	if err != nil {
		return nil, postgres.MapError(err, "visitor", v.UserKey)
	}

	return out, nil
}

// SaveUsage stores the visitor's usage date and counter.
// Returns domain.ErrNotFound if the visitor does not exist.
func (r *Repo) SaveUsage(ctx context.Context, v domain.Visitor) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, saveUsageSQL, v.ID, v.UsageDate, v.UsageCount)
	if err != nil {
		return postgres.MapError(err, "visitor", v.ID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("visitor %s: %w", v.ID, domain.ErrNotFound)
	}

	return nil
}

// GetByKey returns a visitor by its persistent key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByKey(ctx context.Context, userKey string) (*domain.Visitor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	v, err := scanVisitor(querier.QueryRow(ctx, getByKeySQL, userKey))
	if err != nil {
		return nil, postgres.MapError(err, "visitor", userKey)
	}

	return v, nil
}

// DeleteStale removes visitors not seen since before and holding no
// subscription. Returns the number of deleted rows.
func (r *Repo) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteStaleSQL, before)
	if err != nil {
		return 0, fmt.Errorf("delete stale visitors: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanVisitor(row pgx.Row) (*domain.Visitor, error) {
	var v domain.Visitor
	if err := row.Scan(
		&v.ID, &v.UserKey, &v.Fingerprint, &v.LastIP, &v.LastUserAgent,
		&v.UsageDate, &v.UsageCount, &v.CreatedAt, &v.LastSeenAt,
	); err != nil {
		return nil, err
	}
	return &v, nil
}
