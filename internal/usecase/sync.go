package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/entity"
	"github.com/xavierca1/farmareach/internal/infra/integration/backend"
)

const leadPageSize = 1000

// LeadSync keeps the lead collection in line with the backend. Every load
// replaces the collection; nothing is merged.
type LeadSync struct {
	api       Backend
	state     *AppState
	presenter Presenter
	activity  *ActivityLog
	text      Translator
	logger    *zap.Logger
}

func NewLeadSync(api Backend, state *AppState, presenter Presenter, activity *ActivityLog, text Translator, logger *zap.Logger) *LeadSync {
	return &LeadSync{api: api, state: state, presenter: presenter, activity: activity, text: text, logger: logger}
}

// Load fetches the leads and replaces the collection. A logout while the
// request is in flight wins: the response is dropped with ErrSessionChanged.
func (s *LeadSync) Load(ctx context.Context) error {
	epoch := s.state.Epoch()
	rows, err := s.api.ListLeads(ctx, backend.ListLeadsParams{Limit: leadPageSize})
	if err != nil {
		return fmt.Errorf("load leads: %w", err)
	}

	if !s.state.ReplaceLeadsSince(epoch, backend.MapLeads(rows)) {
		s.logger.Debug("leads discarded after session change", zap.Int("count", len(rows)))
		return ErrSessionChanged
	}
	s.logger.Debug("leads loaded", zap.Int("count", len(rows)))
	return nil
}

func (s *LeadSync) Refresh(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		msg := UserMessage(err, s.text)
		if msg == "" {
			msg = s.text.T("leads_reload_failed", nil)
		}
		s.presenter.Toast(entity.ActivityError, msg)
		return err
	}
	s.presenter.Toast(entity.ActivitySuccess, s.text.T("leads_reloaded", nil))
	return nil
}

// InitApp probes the backend and loads the leads. Failures end up in the
// activity log and a toast, never in the caller.
func (s *LeadSync) InitApp(ctx context.Context) {
	err := s.probe(ctx)
	if err == nil {
		err = s.Load(ctx)
	}
	if err != nil {
		s.logger.Warn("backend unavailable", zap.String("base_url", s.api.BaseURL()), zap.Error(err))
		s.activity.Record(ctx, entity.ActivityError,
			s.text.T("backend_unreachable", map[string]any{"Error": UserMessage(err, s.text)}))
		s.presenter.Toast(entity.ActivityError,
			s.text.T("backend_unavailable", map[string]any{"Base": s.api.BaseURL()}))
		return
	}
	s.activity.Record(ctx, entity.ActivitySuccess, s.text.T("backend_connected", nil))
}

func (s *LeadSync) probe(ctx context.Context) error {
	health, err := s.api.Health(ctx)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}
	s.logger.Debug("backend healthy", zap.String("status", health.Status), zap.Any("capabilities", health.Capabilities))
	return nil
}

// EnrichEmails asks the backend to look up missing emails, then reloads.
func (s *LeadSync) EnrichEmails(ctx context.Context) (*backend.EnrichResponse, error) {
	resp, err := s.api.EnrichEmails(ctx)
	if err == nil {
		err = s.Load(ctx)
	}
	if err != nil {
		s.presenter.Toast(entity.ActivityError, UserMessage(err, s.text))
		return nil, err
	}

	msg := s.text.T("enrich_done", map[string]any{"Enriched": resp.Enriched, "Candidates": resp.Candidates})
	s.presenter.Toast(entity.ActivitySuccess, msg)
	s.activity.Record(ctx, entity.ActivitySuccess, msg)
	return resp, nil
}
