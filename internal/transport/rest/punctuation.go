package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/punctcheck/internal/domain"
	"github.com/heartmarshall/punctcheck/internal/service/punctuation"
)

// QuotaExceededMessage is returned with 429 responses.
const QuotaExceededMessage = "本日の無料利用回数を超えました"

// punctuationService defines the minimal interface needed by PunctuationHandler.
type punctuationService interface {
	Check(ctx context.Context, input punctuation.CheckInput) (*domain.CheckResult, error)
}

// PunctuationHandler serves the punctuation check endpoint.
type PunctuationHandler struct {
	svc          punctuationService
	maxBodyBytes int64
	log          *slog.Logger
}

// NewPunctuationHandler creates a PunctuationHandler. Request bodies larger
// than maxBodyBytes are rejected; a non-positive value disables the limit.
func NewPunctuationHandler(svc punctuationService, maxBodyBytes int64, logger *slog.Logger) *PunctuationHandler {
	return &PunctuationHandler{
		svc:          svc,
		maxBodyBytes: maxBodyBytes,
		log:          logger.With("handler", "punctuation"),
	}
}

type checkRequest struct {
	Text  string `json:"text"`
	Mode  string `json:"mode"`
	Style string `json:"style"`
	Width string `json:"width"`
}

type issueResponse struct {
	Line    int    `json:"line"`
	Index   int    `json:"index"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type changeResponse struct {
	Line      int    `json:"line"`
	Position  int    `json:"position"`
	Original  string `json:"original"`
	Converted string `json:"converted"`
}

type summaryResponse struct {
	DetectedStyle string  `json:"detected_style"`
	AppliedStyle  *string `json:"applied_style"`
	TotalChanges  int     `json:"total_changes"`
}

type usageResponse struct {
	Used      int  `json:"used"`
	Remaining int  `json:"remaining"`
	Limit     int  `json:"limit"`
	Premium   bool `json:"premium"`
	CanUse    bool `json:"can_use"`
}

type checkResponse struct {
	ResultText string           `json:"result_text"`
	Issues     []issueResponse  `json:"issues"`
	Changes    []changeResponse `json:"changes"`
	Statistics []string         `json:"statistics"`
	RoleCounts map[string]int   `json:"role_counts"`
	Summary    summaryResponse  `json:"summary"`
	Diff       string           `json:"diff,omitempty"`
	Usage      *usageResponse   `json:"usage,omitempty"`
}

// Check handles POST /api/punctuation/check.
func (h *PunctuationHandler) Check(w http.ResponseWriter, r *http.Request) {
	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Check(r.Context(), punctuation.CheckInput{
		Text:  req.Text,
		Mode:  domain.Mode(req.Mode),
		Style: domain.Style(req.Style),
		Width: domain.Width(req.Width),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCheckResponse(result))
}

func (h *PunctuationHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	var qerr *domain.QuotaError
	switch {
	case errors.As(err, &verr):
		writeValidationError(w, verr)
	case errors.As(err, &qerr):
		usage := toUsageResponse(qerr.Usage)
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Error: QuotaExceededMessage, Usage: &usage})
	case errors.Is(err, domain.ErrQuotaExceeded):
		writeError(w, http.StatusTooManyRequests, QuotaExceededMessage)
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toCheckResponse(result *domain.CheckResult) checkResponse {
	resp := checkResponse{
		ResultText: result.Text,
		Issues:     make([]issueResponse, 0, len(result.Issues)),
		Changes:    make([]changeResponse, 0, len(result.Changes)),
		Statistics: result.Statistics,
		RoleCounts: make(map[string]int, len(result.RoleCounts)),
		Summary: summaryResponse{
			DetectedStyle: result.Summary.DetectedStyle.String(),
			TotalChanges:  result.Summary.TotalChanges,
		},
		Diff: result.Diff,
	}
	if resp.Statistics == nil {
		resp.Statistics = []string{}
	}
	if applied := result.Summary.AppliedStyle; applied.IsConcrete() {
		s := applied.String()
		resp.Summary.AppliedStyle = &s
	}

	for _, is := range result.Issues {
		resp.Issues = append(resp.Issues, issueResponse{
			Line:    is.Line,
			Index:   is.Index,
			Type:    is.Role.String(),
			Message: is.Message,
		})
	}
	for _, ch := range result.Changes {
		resp.Changes = append(resp.Changes, changeResponse{
			Line:      ch.Line,
			Position:  ch.Position,
			Original:  ch.Original,
			Converted: ch.Converted,
		})
	}
	for role, n := range result.RoleCounts {
		resp.RoleCounts[role.String()] = n
	}
	if result.Usage != nil {
		u := toUsageResponse(*result.Usage)
		resp.Usage = &u
	}

	return resp
}

func toUsageResponse(u domain.Usage) usageResponse {
	return usageResponse{
		Used:      u.Used,
		Remaining: u.Remaining,
		Limit:     u.Limit,
		Premium:   u.Premium,
		CanUse:    u.Allowed,
	}
}
