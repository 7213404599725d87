package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and health endpoints.
type HealthHandler struct {
	db        dbPinger
	selfCheck func() error
	version   string
	now       func() time.Time
}

// NewHealthHandler creates a HealthHandler. selfCheck validates the sign and
// rewrite tables; nil skips the engine component.
func NewHealthHandler(db dbPinger, selfCheck func() error, version string) *HealthHandler {
	return &HealthHandler{db: db, selfCheck: selfCheck, version: version, now: time.Now}
}

// HealthResponse is the JSON response for /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready returns 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	status, resp := http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()}
	if err := h.db.Ping(ctx); err != nil {
		status, resp.Status = http.StatusServiceUnavailable, "down"
	}
	writeJSON(w, status, resp)
}

// Health reports every component with the build version. Database latency
// is measured around a single ping.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)
	overall := "ok"

	start := h.now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		overall = "down"
	} else {
		components["database"] = CompStatus{Status: "ok", Latency: h.now().Sub(start).String()}
	}

	if h.selfCheck != nil {
		if err := h.selfCheck(); err != nil {
			components["engine"] = CompStatus{Status: "down", Error: err.Error()}
			overall = "down"
		} else {
			components["engine"] = CompStatus{Status: "ok"}
		}
	}

	status := http.StatusOK
	if overall != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}
