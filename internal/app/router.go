package app

import (
	"net/http"

	"github.com/heartmarshall/punctcheck/internal/transport/middleware"
)

type routes struct {
	live   http.HandlerFunc
	ready  http.HandlerFunc
	health http.HandlerFunc
	check  http.HandlerFunc
	usage  http.HandlerFunc
}

// newRouter mounts probes at the root and the API under /api/. The api
// middleware wraps only /api/ routes; global wraps everything.
func newRouter(r routes, global, api middleware.Middleware) http.Handler {
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("POST /api/punctuation/check", r.check)
	apiMux.HandleFunc("GET /api/usage", r.usage)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", r.live)
	mux.HandleFunc("GET /ready", r.ready)
	mux.HandleFunc("GET /health", r.health)
	mux.Handle("/api/", api(apiMux))

	return global(mux)
}
