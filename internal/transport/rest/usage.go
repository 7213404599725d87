package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/punctcheck/internal/domain"
	"github.com/heartmarshall/punctcheck/pkg/ctxutil"
)

// usageService defines the minimal interface needed by UsageHandler.
type usageService interface {
	Usage(ctx context.Context, visitor domain.VisitorIdentity) (domain.Usage, error)
}

// UsageHandler reports the visitor's daily quota.
type UsageHandler struct {
	svc usageService
	log *slog.Logger
}

// NewUsageHandler creates a UsageHandler.
func NewUsageHandler(svc usageService, logger *slog.Logger) *UsageHandler {
	return &UsageHandler{svc: svc, log: logger.With("handler", "usage")}
}

// Get handles GET /api/usage.
func (h *UsageHandler) Get(w http.ResponseWriter, r *http.Request) {
	visitor, ok := ctxutil.VisitorFromCtx(r.Context())
	if !ok {
		h.log.ErrorContext(r.Context(), "visitor missing from context")
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	usage, err := h.svc.Usage(r.Context(), visitor)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "load usage", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toUsageResponse(usage))
}
