package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/punctcheck/internal/config"
)

// exposedHeaders lets browser clients read the request ID and the 429 backoff.
const exposedHeaders = RequestIDHeader + ", Retry-After"

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// Allowed origins are echoed back rather than answered with "*" so the
// visitor cookie can travel with credentialed requests. Only real preflights
// (OPTIONS with Access-Control-Request-Method) are short-circuited.
func CORS(cfg config.CORSConfig) Middleware {
	allowAny, origins := parseOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			origin := r.Header.Get("Origin")
			allowed := origin != "" && (allowAny || origins[origin])
			if allowed {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
					h.Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func parseOrigins(list string) (bool, map[string]bool) {
	set := make(map[string]bool)
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		if o == "*" {
			return true, nil
		}
		if o != "" {
			set[o] = true
		}
	}
	return false, set
}
