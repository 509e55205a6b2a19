package handlers

import (
	"net/http"

	"github.com/xavierca1/farmareach/internal/usecase"
)

func (h *Console) Capture(w http.ResponseWriter, r *http.Request) {
	var input usecase.CaptureInput
	if !h.decode(w, r, &input) {
		return
	}

	result, err := h.app.Capture.Run(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Console) ResetCapture(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Capture.Reset(); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
