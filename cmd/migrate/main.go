// Command migrate applies or rolls back the embedded database migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// The default command is up. Database settings come from the service config.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/punctcheck/internal/adapter/postgres"
	"github.com/heartmarshall/punctcheck/internal/app"
	"github.com/heartmarshall/punctcheck/internal/config"
	"github.com/heartmarshall/punctcheck/migrations"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "migrate")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool, migrations.FS)
	if err != nil {
		logger.Error("init migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer m.Close() //nolint:errcheck

	switch command {
	case "up":
		err = m.Up(ctx, logger)
	case "down":
		err = m.Down(ctx, logger)
	case "status":
		var statuses []postgres.MigrationStatus
		statuses, err = m.Status(ctx)
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%05d  %-8s %s\n", s.Version, state, s.Path)
		}
	default:
		fmt.Fprintf(os.Stderr, "Usage: migrate [up|down|status]\n")
		os.Exit(2)
	}

	if err != nil {
		logger.Error("migrate failed", slog.String("command", command), slog.String("error", err.Error()))
		os.Exit(1)
	}
}
