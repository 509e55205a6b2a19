package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// StatusFor maps an error kind onto the console's HTTP status.
func StatusFor(kind usecase.Kind) int {
	switch kind {
	case usecase.KindValidation:
		return http.StatusBadRequest
	case usecase.KindUnauthorized:
		return http.StatusUnauthorized
	case usecase.KindBusy:
		return http.StatusConflict
	case usecase.KindRequest:
		return http.StatusBadGateway
	case usecase.KindTransport:
		return http.StatusServiceUnavailable
	case usecase.KindDomain:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *Console) writeError(w http.ResponseWriter, err error) {
	kind := usecase.Classify(err)
	status := StatusFor(kind)
	if status == http.StatusInternalServerError {
		h.logger.Error("console request failed", zap.Error(err))
	}
	writeErrorResponse(w, status, string(kind), usecase.UserMessage(err, h.text))
}

func (h *Console) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid_json", h.text.T("console_invalid_json", nil))
		return false
	}
	return true
}

func (h *Console) idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid_id", h.text.T("console_invalid_id", nil))
		return 0, false
	}
	return id, true
}

func (h *Console) notFound(w http.ResponseWriter) {
	writeErrorResponse(w, http.StatusNotFound, "not_found", h.text.T("console_not_found", nil))
}
