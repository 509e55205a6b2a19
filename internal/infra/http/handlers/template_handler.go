package handlers

import (
	"net/http"

	"github.com/xavierca1/farmareach/internal/view"
)

type SaveTemplateRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type PreviewRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
	From    string `json:"from"`
}

func (h *Console) ListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, view.TemplateOptions(h.app.Templates.List()))
}

func (h *Console) SaveTemplate(w http.ResponseWriter, r *http.Request) {
	var req SaveTemplateRequest
	if !h.decode(w, r, &req) {
		return
	}
	tpl, err := h.app.Templates.Save(r.Context(), req.Name, req.Subject, req.Body)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tpl)
}

func (h *Console) LoadTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}
	tpl, err := h.app.Templates.Load(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

func (h *Console) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r)
	if !ok {
		return
	}
	if !h.app.Templates.Delete(id) {
		h.notFound(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Console) PreviewTemplate(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if !h.decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.app.Templates.Preview(req.Subject, req.Body, req.From))
}

func (h *Console) DefaultTemplate(w http.ResponseWriter, r *http.Request) {
	text, err := h.app.Templates.Default(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"template": text})
}
