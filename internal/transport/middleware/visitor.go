package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/punctcheck/internal/domain"
	"github.com/heartmarshall/punctcheck/pkg/ctxutil"
)

// visitorTokens issues and parses the signed visitor cookie value.
type visitorTokens interface {
	Issue(visitorID uuid.UUID) (string, error)
	Parse(token string) (uuid.UUID, error)
}

// VisitorOptions configures the visitor cookie.
type VisitorOptions struct {
	CookieName string
	MaxAge     time.Duration
	Secure     bool
	TrustProxy bool
}

// Visitor returns middleware that identifies the caller by a signed cookie.
// A missing or invalid cookie yields a fresh visitor ID and a new cookie.
// The visitor identity (ID, IP, User-Agent) is stored in the context.
func Visitor(tokens visitorTokens, opts VisitorOptions, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := readVisitorCookie(r, opts.CookieName, tokens)
			if !ok {
				id = uuid.New()
				token, err := tokens.Issue(id)
				if err != nil {
					logger.ErrorContext(r.Context(), "issue visitor token", slog.String("error", err.Error()))
					http.Error(w, "internal server error", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     opts.CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(opts.MaxAge / time.Second),
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			v := domain.VisitorIdentity{
				ID:        id,
				IP:        ClientIP(r, opts.TrustProxy),
				UserAgent: r.UserAgent(),
			}
			reportVisitor(r.Context(), v)

			next.ServeHTTP(w, r.WithContext(ctxutil.WithVisitor(r.Context(), v)))
		})
	}
}

func readVisitorCookie(r *http.Request, name string, tokens visitorTokens) (uuid.UUID, bool) {
	c, err := r.Cookie(name)
	if err != nil || c.Value == "" {
		return uuid.Nil, false
	}
	id, err := tokens.Parse(c.Value)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
