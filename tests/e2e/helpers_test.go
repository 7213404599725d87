//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/punctcheck/internal/adapter/postgres"
	subscriptionrepo "github.com/heartmarshall/punctcheck/internal/adapter/postgres/subscription"
	"github.com/heartmarshall/punctcheck/internal/adapter/postgres/testhelper"
	visitorrepo "github.com/heartmarshall/punctcheck/internal/adapter/postgres/visitor"
	"github.com/heartmarshall/punctcheck/internal/app"
	"github.com/heartmarshall/punctcheck/internal/auth"
	"github.com/heartmarshall/punctcheck/internal/config"
	"github.com/heartmarshall/punctcheck/internal/service/subscription"
	"github.com/heartmarshall/punctcheck/internal/transport/middleware"
)

const (
	testSecret    = "e2e-secret-at-least-32-characters-long"
	testIssuer    = "punctcheck-e2e"
	testDailyUses = 2
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Pool   *pgxpool.Pool
	Subs   *subscription.Service
	tokens *auth.VisitorTokens
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer boots the production handler against a PostgreSQL
// container shared via testhelper.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, MaxBodyBytes: 1 << 16},
		Visitor: config.VisitorConfig{
			TokenSecret:  testSecret,
			TokenIssuer:  testIssuer,
			CookieName:   "uid",
			CookieMaxAge: 24 * time.Hour,
		},
		Quota:     config.QuotaConfig{DailyLimit: testDailyUses, Timezone: "UTC"},
		Check:     config.CheckConfig{MaxTextLength: 100},
		RateLimit: config.RateLimitConfig{RequestsPerMinute: 1000, CleanupInterval: time.Minute},
		Log:       config.LogConfig{Level: "debug", Format: "text"},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,OPTIONS",
			AllowedHeaders: "Content-Type,X-Request-Id",
			MaxAge:         86400,
		},
	}
	require.NoError(t, cfg.Validate())

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(app.NewHandler(cfg, pool, limiter, logger))
	t.Cleanup(srv.Close)

	subs := subscription.NewService(
		logger,
		subscriptionrepo.New(pool),
		visitorrepo.New(pool),
		postgres.NewTxManager(pool),
	)

	return &testServer{
		URL:    srv.URL,
		Pool:   pool,
		Subs:   subs,
		tokens: auth.NewVisitorTokens(testSecret, testIssuer, 24*time.Hour),
	}
}

// newClient returns a client with its own cookie jar, i.e. a new browser.
func (ts *testServer) newClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar, Timeout: 10 * time.Second}
}

// visitorID decodes the uid cookie the client currently holds.
func (ts *testServer) visitorID(t *testing.T, c *http.Client) uuid.UUID {
	t.Helper()

	u, err := url.Parse(ts.URL)
	require.NoError(t, err)

	for _, ck := range c.Jar.Cookies(u) {
		if ck.Name == "uid" {
			id, err := ts.tokens.Parse(ck.Value)
			require.NoError(t, err)
			return id
		}
	}
	t.Fatal("client holds no uid cookie")
	return uuid.Nil
}

func (ts *testServer) check(t *testing.T, c *http.Client, body map[string]any) (int, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := c.Post(ts.URL+"/api/punctuation/check", "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return decode(t, resp)
}

func (ts *testServer) usage(t *testing.T, c *http.Client) (int, map[string]any) {
	t.Helper()

	resp, err := c.Get(ts.URL + "/api/usage")
	require.NoError(t, err)
	return decode(t, resp)
}

func decode(t *testing.T, resp *http.Response) (int, map[string]any) {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}
