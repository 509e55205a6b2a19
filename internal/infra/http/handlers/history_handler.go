package handlers

import (
	"net/http"

	"github.com/xavierca1/farmareach/internal/view"
)

type SMTPCheckRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

func (h *Console) History(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.HistoryRows(h.app.State.Snapshot().History))
}

func (h *Console) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.app.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Console) CheckSMTP(w http.ResponseWriter, r *http.Request) {
	var req SMTPCheckRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.app.CheckSMTP(r.Context(), req.User, req.Password); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
