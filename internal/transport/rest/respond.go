package rest

import (
	"encoding/json"
	"net/http"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

type errorResponse struct {
	Error  string          `json:"error"`
	Fields []fieldResponse `json:"fields,omitempty"`
	Usage  *usageResponse  `json:"usage,omitempty"`
}

type fieldResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeValidationError(w http.ResponseWriter, verr *domain.ValidationError) {
	fields := make([]fieldResponse, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		fields = append(fields, fieldResponse{Field: fe.Field, Message: fe.Message})
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
}
