package handlers

import (
	"fmt"
	"net/http"

	"github.com/xavierca1/farmareach/internal/entity"
	"github.com/xavierca1/farmareach/internal/view"
)

type SelectionRequest struct {
	IDs []int64 `json:"ids"`
}

type SelectionResponse struct {
	Selected int `json:"selected"`
}

func (h *Console) ListLeads(w http.ResponseWriter, r *http.Request) {
	filter := view.LeadFilter{
		Query:  r.URL.Query().Get("q"),
		Status: entity.LeadStatus(r.URL.Query().Get("status")),
	}
	writeJSON(w, http.StatusOK, view.Leads(h.app.State.Snapshot().Leads, filter))
}

func (h *Console) RefreshLeads(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Sync.Refresh(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view.Leads(h.app.State.Snapshot().Leads, view.LeadFilter{}))
}

func (h *Console) RemoveLead(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}
	if !h.app.RemoveLead(id) {
		h.notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Console) SelectLeads(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.app.State.Select(req.IDs...)
	writeJSON(w, http.StatusOK, SelectionResponse{Selected: len(h.app.State.Snapshot().Selected)})
}

func (h *Console) DeselectLeads(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.app.State.Deselect(req.IDs...)
	writeJSON(w, http.StatusOK, SelectionResponse{Selected: len(h.app.State.Snapshot().Selected)})
}

func (h *Console) SelectAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SelectionResponse{Selected: h.app.SelectAll()})
}

func (h *Console) ClearSelection(w http.ResponseWriter, r *http.Request) {
	h.app.State.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Console) ExportLeads(w http.ResponseWriter, r *http.Request) {
	leads, err := h.app.ExportLeads()
	if err != nil {
		h.writeError(w, err)
		return
	}
	body, err := view.ExportCSV(leads)
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", view.ExportFilename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Console) EnrichEmails(w http.ResponseWriter, r *http.Request) {
	resp, err := h.app.Sync.EnrichEmails(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
