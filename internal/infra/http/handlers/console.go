package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/infra/http/middleware"
	"github.com/xavierca1/farmareach/internal/usecase"
	"github.com/xavierca1/farmareach/internal/view"
)

type ConsoleConfig struct {
	SendDelaySeconds int
	AuthLimit        int
	AuthWindow       time.Duration
}

// Console exposes the controller and the view projections as JSON.
type Console struct {
	app       *usecase.App
	feedback  *view.Feedback
	text      usecase.Translator
	logger    *zap.Logger
	sendDelay int
	limiter   *middleware.RateLimiter
}

func NewConsole(app *usecase.App, feedback *view.Feedback, text usecase.Translator, logger *zap.Logger, cfg ConsoleConfig) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.AuthLimit <= 0 {
		cfg.AuthLimit = 10
	}
	if cfg.AuthWindow <= 0 {
		cfg.AuthWindow = time.Minute
	}
	return &Console{
		app:       app,
		feedback:  feedback,
		text:      text,
		logger:    logger,
		sendDelay: cfg.SendDelaySeconds,
		limiter:   middleware.NewRateLimiter(cfg.AuthLimit, cfg.AuthWindow, text.T("console_rate_limited", nil)),
	}
}

func (h *Console) Limiter() *middleware.RateLimiter {
	return h.limiter
}

func (h *Console) Mount(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/session", h.Session)
		r.Get("/feedback", h.Feedback)

		r.Group(func(r chi.Router) {
			r.Use(h.limiter.Handler)
			r.Post("/auth/login", h.Login)
			r.Post("/auth/register", h.Register)
			r.Post("/smtp/check", h.CheckSMTP)
		})
		r.Post("/auth/logout", h.Logout)

		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Get("/leads", h.ListLeads)
			r.Post("/leads/refresh", h.RefreshLeads)
			r.Delete("/leads/{id}", h.RemoveLead)
			r.Post("/leads/select", h.SelectLeads)
			r.Post("/leads/deselect", h.DeselectLeads)
			r.Post("/leads/select-all", h.SelectAll)
			r.Post("/leads/clear-selection", h.ClearSelection)
			r.Get("/leads/export", h.ExportLeads)
			r.Post("/leads/enrich", h.EnrichEmails)

			r.Post("/capture", h.Capture)
			r.Post("/capture/reset", h.ResetCapture)

			r.Post("/campaign/send", h.SendCampaign)
			r.Post("/campaign/pause", h.PauseCampaign)
			r.Post("/campaign/quick-send", h.QuickSend)
			r.Get("/campaign/summary", h.CampaignSummary)

			r.Get("/templates", h.ListTemplates)
			r.Post("/templates", h.SaveTemplate)
			r.Get("/templates/default", h.DefaultTemplate)
			r.Post("/templates/preview", h.PreviewTemplate)
			r.Get("/templates/{id}", h.LoadTemplate)
			r.Delete("/templates/{id}", h.DeleteTemplate)

			r.Get("/history", h.History)
			r.Delete("/history", h.ClearHistory)
		})
	})
}

// requireSession blocks data views while nobody is signed in.
func (h *Console) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.app.Session.Authenticated() {
			writeErrorResponse(w, http.StatusUnauthorized, string(usecase.KindUnauthorized), h.text.T("console_auth_required", nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Console) Feedback(w http.ResponseWriter, r *http.Request) {
	states := map[usecase.FlowName]usecase.FlowState{
		usecase.FlowCapture:  h.app.Capture.Flow().State(),
		usecase.FlowCampaign: h.app.Campaign.Flow().State(),
	}
	writeJSON(w, http.StatusOK, h.feedback.View(states))
}
