package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/punctcheck/internal/adapter/postgres"
	subscriptionrepo "github.com/heartmarshall/punctcheck/internal/adapter/postgres/subscription"
	visitorrepo "github.com/heartmarshall/punctcheck/internal/adapter/postgres/visitor"
	"github.com/heartmarshall/punctcheck/internal/auth"
	"github.com/heartmarshall/punctcheck/internal/config"
	"github.com/heartmarshall/punctcheck/internal/service/punctuation"
	"github.com/heartmarshall/punctcheck/internal/service/punctuation/engine"
	"github.com/heartmarshall/punctcheck/internal/service/quota"
	"github.com/heartmarshall/punctcheck/internal/transport/middleware"
	"github.com/heartmarshall/punctcheck/internal/transport/rest"
	"github.com/heartmarshall/punctcheck/migrations"
)

// Run loads configuration, connects to PostgreSQL, wires services and serves
// HTTP until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, "server")
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Int("daily_limit", cfg.Quota.DailyLimit),
		slog.String("quota_timezone", cfg.Quota.Location.String()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           NewHandler(cfg, pool, limiter, logger),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool, migrations.FS)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	defer m.Close() //nolint:errcheck

	if err := m.Up(ctx, logger); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// NewHandler wires repositories, services, handlers and middleware into the
// service's root HTTP handler.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	txm := postgres.NewTxManager(pool)
	visitors := visitorrepo.New(pool)
	subs := subscriptionrepo.New(pool)

	quotaSvc := quota.NewService(logger, visitors, subs, txm, cfg.Quota.DailyLimit, cfg.Quota.Location)
	punctSvc := punctuation.NewService(logger, quotaSvc, cfg.Check.MaxTextLength)

	health := rest.NewHealthHandler(pool, engine.SelfCheck, BuildVersion())
	check := rest.NewPunctuationHandler(punctSvc, cfg.Server.MaxBodyBytes, logger)
	usage := rest.NewUsageHandler(quotaSvc, logger)

	tokens := auth.NewVisitorTokens(cfg.Visitor.TokenSecret, cfg.Visitor.TokenIssuer, cfg.Visitor.CookieMaxAge)

	global := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)
	api := middleware.Chain(
		middleware.Visitor(tokens, middleware.VisitorOptions{
			CookieName: cfg.Visitor.CookieName,
			MaxAge:     cfg.Visitor.CookieMaxAge,
			Secure:     cfg.Visitor.CookieSecure,
			TrustProxy: cfg.Visitor.TrustProxyHeaders,
		}, logger),
		limiter.Limit(cfg.RateLimit.RequestsPerMinute),
	)

	return newRouter(routes{
		live:   health.Live,
		ready:  health.Ready,
		health: health.Health,
		check:  check.Check,
		usage:  usage.Get,
	}, global, api)
}
