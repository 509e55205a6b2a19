package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/entity"
	"github.com/xavierca1/farmareach/internal/infra/integration/backend"
)

const historyDateLayout = "2/1/2006, 15:04:05"

// Sender is who the mails appear to come from.
type Sender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CampaignDefaults struct {
	SenderName string
	ValuePitch string
}

type CampaignInput struct {
	TemplateID int64  `json:"template_id"`
	Sender     Sender `json:"sender"`
}

type CampaignResult struct {
	Total  int `json:"total"`
	Sent   int `json:"sent"`
	Errors int `json:"errors"`
}

type CampaignUseCase struct {
	api       Backend
	state     *AppState
	sync      *LeadSync
	flow      *Flow
	presenter Presenter
	activity  *ActivityLog
	text      Translator
	recorder  Recorder
	clock     Clock
	logger    *zap.Logger
	defaults  CampaignDefaults
}

func NewCampaignUseCase(api Backend, state *AppState, sync *LeadSync, presenter Presenter, activity *ActivityLog, text Translator, clock Clock, logger *zap.Logger, defaults CampaignDefaults) *CampaignUseCase {
	if defaults.SenderName == "" {
		defaults.SenderName = "Equipo Comercial"
	}
	if defaults.ValuePitch == "" {
		defaults.ValuePitch = "colaboracion comercial para farmacia"
	}
	return &CampaignUseCase{
		api:       api,
		state:     state,
		sync:      sync,
		flow:      NewFlow(FlowCampaign),
		presenter: presenter,
		activity:  activity,
		text:      text,
		recorder:  nopRecorder{},
		clock:     clock,
		logger:    logger,
		defaults:  defaults,
	}
}

func (uc *CampaignUseCase) WithRecorder(r Recorder) {
	uc.recorder = r
}

func (uc *CampaignUseCase) Flow() *Flow {
	return uc.flow
}

// Send posts the whole selection as one batch. The backend's counts are
// authoritative; the table is reloaded afterwards instead of patched.
func (uc *CampaignUseCase) Send(ctx context.Context, input CampaignInput) (*CampaignResult, error) {
	if uc.flow.State() == FlowRunning {
		uc.recorder.CampaignFinished(outcomeRejected, 0, 0)
		return nil, ErrFlowBusy
	}

	tpl, err := uc.resolveTemplate(input.TemplateID)
	if err != nil {
		return nil, uc.reject(err)
	}
	targets := uc.state.SelectedWithEmail()
	if len(targets) == 0 {
		return nil, uc.reject(ValidationError{"lead_ids", uc.text.T("campaign_no_recipients", nil)})
	}

	run, err := uc.flow.Begin()
	if err != nil {
		uc.recorder.CampaignFinished(outcomeRejected, 0, 0)
		return nil, err
	}
	uc.presenter.SetBusy(FlowCampaign, true)
	uc.presenter.ResetFlow(FlowCampaign)
	uc.presenter.Progress(FlowCampaign, 35, uc.text.T("campaign_step_sending", nil))

	resp, err := uc.api.SendCampaign(ctx, uc.request(tpl, input.Sender, targets))
	if err == nil {
		uc.presenter.Progress(FlowCampaign, 100, uc.text.T("campaign_step_done", nil))
		uc.presenter.FlowLog(FlowCampaign, entity.ActivitySuccess,
			uc.text.T("campaign_result", map[string]any{"Sent": resp.Sent, "Errors": resp.Errors}))
		err = uc.sync.Load(ctx)
	}
	if err != nil {
		msg := UserMessage(err, uc.text)
		if msg == "" {
			msg = uc.text.T("campaign_failed", nil)
		}
		uc.presenter.FlowLog(FlowCampaign, entity.ActivityError, msg)
		uc.presenter.Toast(entity.ActivityError, msg)
		uc.finish(run, err)
		uc.recorder.CampaignFinished(outcomeError, 0, 0)
		uc.logger.Warn("campaign failed", zap.Int("recipients", len(targets)), zap.Error(err))
		return nil, err
	}

	counts := map[string]any{"Sent": resp.Sent, "Errors": resp.Errors}
	uc.presenter.Toast(entity.ActivitySuccess, uc.text.T("campaign_done", counts))
	uc.activity.Record(ctx, entity.ActivitySuccess, uc.text.T("campaign_done_activity", counts))
	uc.finish(run, nil)
	uc.recorder.CampaignFinished(outcomeOK, resp.Sent, resp.Errors)
	uc.logger.Info("campaign sent",
		zap.Int("recipients", len(targets)),
		zap.Int("sent", resp.Sent),
		zap.Int("errors", resp.Errors),
	)

	return &CampaignResult{Total: resp.Total, Sent: resp.Sent, Errors: resp.Errors}, nil
}

// QuickSend mails one lead with the chosen template and marks it sent
// locally. It does not take the campaign guard.
func (uc *CampaignUseCase) QuickSend(ctx context.Context, leadID, templateID int64, sender Sender) error {
	lead, ok := uc.state.Lead(leadID)
	if !ok || !lead.HasEmail() {
		err := ValidationError{"email", uc.text.T("quick_send_no_email", nil)}
		uc.presenter.Toast(entity.ActivityError, err.Message)
		return err
	}

	tpl, ok := uc.state.Template(templateID)
	if !ok {
		err := ValidationError{"template_id", uc.text.T("template_not_selected", nil)}
		uc.presenter.Toast(entity.ActivityError, err.Message)
		return err
	}

	if _, err := uc.api.SendCampaign(ctx, uc.request(tpl, sender, []int64{leadID})); err != nil {
		msg := UserMessage(err, uc.text)
		if msg == "" {
			msg = uc.text.T("quick_send_failed", nil)
		}
		uc.presenter.Toast(entity.ActivityError, msg)
		uc.logger.Warn("quick send failed", zap.Int64("lead_id", leadID), zap.Error(err))
		return err
	}

	subject := tpl.Subject
	if subject == "" {
		subject = "Email enviado"
	}
	uc.state.MarkSent(leadID)
	uc.state.AppendHistory(entity.HistoryEntry{
		Date:    uc.clock().Format(historyDateLayout),
		Name:    lead.Name,
		Email:   lead.Email,
		Subject: subject,
		Status:  entity.LeadStatusSent,
	})
	uc.presenter.Toast(entity.ActivitySuccess, uc.text.T("quick_send_ok", map[string]any{"Name": lead.Name}))
	return nil
}

// Pause releases the guard. The batch already posted keeps going on the
// backend; its outcome is still reported when it arrives.
func (uc *CampaignUseCase) Pause(ctx context.Context) error {
	if err := uc.flow.Pause(); err != nil {
		return err
	}
	uc.presenter.SetBusy(FlowCampaign, false)
	uc.presenter.Toast(entity.ActivityWarn, uc.text.T("campaign_paused", nil))
	uc.activity.Record(ctx, entity.ActivityWarn, uc.text.T("campaign_pause_note", nil))
	return nil
}

func (uc *CampaignUseCase) request(tpl entity.Template, sender Sender, ids []int64) backend.CampaignRequest {
	remitente := sender.Name
	if remitente == "" {
		remitente = uc.defaults.SenderName
	}
	return backend.CampaignRequest{
		Asunto:         NormalizeTemplateVars(tpl.Subject),
		Remitente:      remitente,
		Firma:          sender.Name + " | " + sender.Email,
		PropuestaValor: uc.defaults.ValuePitch,
		TemplateText:   NormalizeTemplateVars(tpl.Body),
		OnlyPending:    false,
		LeadIDs:        ids,
	}
}

func (uc *CampaignUseCase) resolveTemplate(id int64) (entity.Template, error) {
	if id == 0 {
		return entity.Template{}, ValidationError{"template_id", uc.text.T("template_not_selected", nil)}
	}
	tpl, ok := uc.state.Template(id)
	if !ok {
		return entity.Template{}, ValidationError{"template_id", uc.text.T("template_not_found", nil)}
	}
	return tpl, nil
}

func (uc *CampaignUseCase) reject(err error) error {
	uc.presenter.Toast(entity.ActivityError, UserMessage(err, uc.text))
	uc.recorder.CampaignFinished(outcomeRejected, 0, 0)
	return err
}

// finish closes the run unless a pause already released it.
func (uc *CampaignUseCase) finish(run uint64, err error) {
	if ferr := uc.flow.Finish(run, err); errors.Is(ferr, ErrStaleRun) {
		return
	}
	uc.presenter.SetBusy(FlowCampaign, false)
}
