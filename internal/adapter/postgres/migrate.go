package postgres

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrator applies embedded goose migrations over a pgx pool.
type Migrator struct {
	provider *goose.Provider
	close    func() error
}

// NewMigrator opens a database/sql handle on top of pool and prepares a goose
// provider for the migrations in fsys. Close releases the handle.
func NewMigrator(pool *pgxpool.Pool, fsys fs.FS) (*Migrator, error) {
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	return &Migrator{provider: provider, close: db.Close}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context, log *slog.Logger) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// Down rolls back the most recent migration.
func (m *Migrator) Down(ctx context.Context, log *slog.Logger) error {
	r, err := m.provider.Down(ctx)
	if err != nil {
		return fmt.Errorf("goose down: %w", err)
	}
	if r != nil {
		log.InfoContext(ctx, "migration rolled back",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
		)
	}
	return nil
}

// MigrationStatus is the applied state of one migration.
type MigrationStatus struct {
	Version int64
	Path    string
	Applied bool
}

// Status reports every known migration.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Path:    s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}
	return out, nil
}

// Close releases the underlying database handle.
func (m *Migrator) Close() error {
	return m.close()
}
