package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/punctcheck/internal/domain"
	"github.com/heartmarshall/punctcheck/pkg/ctxutil"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and context identifiers (request_id, visitor_id).
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r.WithContext(withVisitorSlot(r.Context(), sw)))

			duration := time.Since(start)
			requestID := ctxutil.RequestIDFromCtx(r.Context())

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", duration),
				slog.String("request_id", requestID),
			}
			v, ok := sw.visitor()
			if !ok {
				v, ok = ctxutil.VisitorFromCtx(r.Context())
			}
			if ok {
				attrs = append(attrs, slog.String("visitor_id", v.ID.String()))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code
// and the visitor identified further down the chain.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	identified  *domain.VisitorIdentity
}

func (w *statusWriter) visitor() (domain.VisitorIdentity, bool) {
	if w.identified == nil {
		return domain.VisitorIdentity{}, false
	}
	return *w.identified, true
}

type visitorSlotKey struct{}

func withVisitorSlot(ctx context.Context, sw *statusWriter) context.Context {
	return context.WithValue(ctx, visitorSlotKey{}, sw)
}

// reportVisitor lets inner middleware hand the visitor back to Logger.
func reportVisitor(ctx context.Context, v domain.VisitorIdentity) {
	if sw, ok := ctx.Value(visitorSlotKey{}).(*statusWriter); ok {
		sw.identified = &v
	}
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}
