package handlers

import (
	"net/http"
	"time"

	"github.com/xavierca1/farmareach/internal/entity"
)

type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	PromptVisible bool         `json:"prompt_visible"`
	User          *entity.User `json:"user,omitempty"`
	ExpiresAt     *time.Time   `json:"expires_at,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Password string `json:"password"`
}

func (h *Console) Session(w http.ResponseWriter, r *http.Request) {
	authenticated := h.app.Session.Authenticated()
	resp := SessionResponse{
		Authenticated: authenticated,
		PromptVisible: !authenticated,
		User:          h.app.Session.User(),
	}
	if exp, ok := h.app.Session.ExpiresAt(); ok {
		resp.ExpiresAt = &exp
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Console) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.app.Session.Login(r.Context(), req.Email, req.Password); err != nil {
		h.writeError(w, err)
		return
	}
	h.Session(w, r)
}

func (h *Console) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}
	msg, err := h.app.Session.Register(r.Context(), req.Email, req.Nombre, req.Password)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg})
}

func (h *Console) Logout(w http.ResponseWriter, r *http.Request) {
	h.app.Session.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
