// Command subscription grants, revokes or shows premium access for a visitor.
//
// Usage:
//
//	subscription grant  --user=<visitor-uuid> [--customer=cus_...] [--subscription=sub_...] [--session=cs_...] [--meta key=value ...]
//	subscription revoke --user=<visitor-uuid>
//	subscription show   --user=<visitor-uuid>
//
// The visitor UUID is the value carried in the visitor cookie.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/punctcheck/internal/adapter/postgres"
	subscriptionrepo "github.com/heartmarshall/punctcheck/internal/adapter/postgres/subscription"
	visitorrepo "github.com/heartmarshall/punctcheck/internal/adapter/postgres/visitor"
	"github.com/heartmarshall/punctcheck/internal/app"
	"github.com/heartmarshall/punctcheck/internal/config"
	"github.com/heartmarshall/punctcheck/internal/domain"
	"github.com/heartmarshall/punctcheck/internal/service/subscription"
)

const usage = "Usage: subscription [grant|revoke|show] --user=<visitor-uuid> [flags]"

// metaFlags collects repeated --meta key=value pairs.
type metaFlags map[string]string

func (m metaFlags) String() string {
	pairs := make([]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (m metaFlags) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	m[k] = v
	return nil
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	command := os.Args[1]

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	user := fs.String("user", "", "visitor UUID")
	customer := fs.String("customer", "", "billing provider customer ID")
	providerSub := fs.String("subscription", "", "billing provider subscription ID")
	session := fs.String("session", "", "billing provider checkout session ID")
	meta := metaFlags{}
	fs.Var(meta, "meta", "metadata key=value (repeatable)")
	_ = fs.Parse(os.Args[2:])

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "subscription")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := newService(pool, logger)
	key := subscription.UserKeyInput{UserKey: *user}

	switch command {
	case "grant":
		var sub *domain.Subscription
		sub, err = svc.Activate(ctx, subscription.ActivateInput{
			UserKey:                *user,
			ProviderCustomerID:     *customer,
			ProviderSubscriptionID: *providerSub,
			ProviderSessionID:      *session,
			Metadata:               meta,
		})
		if err == nil {
			fmt.Printf("Premium granted to %s.\n", *user)
			printSubscription(sub)
		}
	case "revoke":
		var canceled bool
		canceled, err = svc.Cancel(ctx, key)
		if err == nil && !canceled {
			fmt.Printf("No active subscription for %s.\n", *user)
			os.Exit(1)
		}
		if err == nil {
			fmt.Printf("Premium revoked for %s.\n", *user)
		}
	case "show":
		var sub *domain.Subscription
		sub, err = svc.Active(ctx, key)
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Printf("No active subscription for %s.\n", *user)
			os.Exit(1)
		}
		if err == nil {
			printSubscription(sub)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			for _, fe := range verr.Errors {
				fmt.Fprintf(os.Stderr, "%s: %s\n", fe.Field, fe.Message)
			}
			os.Exit(2)
		}
		logger.Error(command+" failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newService(pool *pgxpool.Pool, logger *slog.Logger) *subscription.Service {
	return subscription.NewService(
		logger,
		subscriptionrepo.New(pool),
		visitorrepo.New(pool),
		postgres.NewTxManager(pool),
	)
}

func printSubscription(s *domain.Subscription) {
	fmt.Printf("  id:           %s\n", s.ID)
	fmt.Printf("  customer:     %s\n", s.ProviderCustomerID)
	if s.ProviderSubscriptionID != nil {
		fmt.Printf("  subscription: %s\n", *s.ProviderSubscriptionID)
	}
	if s.ProviderSessionID != "" {
		fmt.Printf("  session:      %s\n", s.ProviderSessionID)
	}
	if len(s.Metadata) > 0 {
		fmt.Printf("  metadata:     %s\n", metaFlags(s.Metadata))
	}
	fmt.Printf("  since:        %s\n", s.CreatedAt.Format(time.RFC3339))
}
