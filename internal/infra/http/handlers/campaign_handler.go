package handlers

import (
	"net/http"

	"github.com/xavierca1/farmareach/internal/usecase"
	"github.com/xavierca1/farmareach/internal/view"
)

type QuickSendRequest struct {
	LeadID     int64          `json:"lead_id"`
	TemplateID int64          `json:"template_id"`
	Sender     usecase.Sender `json:"sender"`
}

func (h *Console) SendCampaign(w http.ResponseWriter, r *http.Request) {
	var input usecase.CampaignInput
	if !h.decode(w, r, &input) {
		return
	}

	result, err := h.app.Campaign.Send(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Console) PauseCampaign(w http.ResponseWriter, r *http.Request) {
	if err := h.app.Campaign.Pause(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Console) QuickSend(w http.ResponseWriter, r *http.Request) {
	var req QuickSendRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.app.Campaign.QuickSend(r.Context(), req.LeadID, req.TemplateID, req.Sender); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Console) CampaignSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.Summarize(h.app.State.Snapshot().Leads, h.sendDelay))
}
