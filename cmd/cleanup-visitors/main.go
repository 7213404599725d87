// Command cleanup-visitors deletes visitors that have not been seen for the
// given number of days and never held a subscription. It is intended to be
// invoked by an external cron job.
//
// Usage:
//
//	cleanup-visitors --days=90
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/punctcheck/internal/adapter/postgres"
	"github.com/heartmarshall/punctcheck/internal/adapter/postgres/visitor"
	"github.com/heartmarshall/punctcheck/internal/app"
	"github.com/heartmarshall/punctcheck/internal/config"
)

func main() {
	days := flag.Int("days", 90, "delete visitors unseen for this many days")
	flag.Parse()

	if *days <= 0 {
		fmt.Fprintln(os.Stderr, "Usage: cleanup-visitors --days=N (N > 0)")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "cleanup-visitors")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	threshold := time.Now().AddDate(0, 0, -*days)

	deleted, err := visitor.New(pool).DeleteStale(ctx, threshold)
	if err != nil {
		logger.Error("delete stale visitors",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("stale visitors deleted",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
