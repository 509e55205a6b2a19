package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/entity"
)

type AppDeps struct {
	API       Backend
	Store     TokenStore
	Presenter Presenter
	Text      Translator
	Publisher ActivityPublisher
	SMTP      SMTPChecker
	Recorder  Recorder
	Clock     Clock
	Logger    *zap.Logger
	Campaign  CampaignDefaults
	MaxItems  int
}

// App is the single controller. It owns the state and hands the same
// instance to every flow.
type App struct {
	State     *AppState
	Session   *SessionManager
	Sync      *LeadSync
	Capture   *CaptureUseCase
	Campaign  *CampaignUseCase
	Templates *TemplateBook
	Activity  *ActivityLog

	presenter Presenter
	text      Translator
	smtp      SMTPChecker
	logger    *zap.Logger
}

func NewApp(d AppDeps) *App {
	if d.Recorder == nil {
		d.Recorder = nopRecorder{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}

	state := NewAppState()
	activity := NewActivityLog(d.Presenter, d.Publisher, d.Clock, d.Logger.Named("activity"))
	sync := NewLeadSync(d.API, state, d.Presenter, activity, d.Text, d.Logger.Named("sync"))

	session := NewSessionManager(d.API, d.Store, state, d.Presenter, d.Text, d.Logger.Named("session"))
	session.WithRecorder(d.Recorder)
	session.OnAuthenticated(sync.InitApp)

	capture := NewCaptureUseCase(d.API, sync, d.Presenter, activity, d.Text, d.Logger.Named("capture"))
	capture.WithRecorder(d.Recorder)
	if d.MaxItems > 0 {
		capture.WithDefaultMaxItems(d.MaxItems)
	}

	campaign := NewCampaignUseCase(d.API, state, sync, d.Presenter, activity, d.Text, d.Clock, d.Logger.Named("campaign"), d.Campaign)
	campaign.WithRecorder(d.Recorder)

	return &App{
		State:     state,
		Session:   session,
		Sync:      sync,
		Capture:   capture,
		Campaign:  campaign,
		Templates: NewTemplateBook(state, d.API, d.Presenter, activity, d.Text, d.Clock),
		Activity:  activity,
		presenter: d.Presenter,
		text:      d.Text,
		smtp:      d.SMTP,
		logger:    d.Logger,
	}
}

// Start restores the persisted session, if any.
func (a *App) Start(ctx context.Context) error {
	return a.Session.Bootstrap(ctx)
}

func (a *App) SelectAll() int {
	n := a.State.SelectAll()
	a.presenter.Toast(entity.ActivitySuccess, a.text.T("leads_selected", map[string]any{"Count": n}))
	return n
}

func (a *App) RemoveLead(id int64) bool {
	return a.State.RemoveLead(id)
}

func (a *App) ClearHistory() {
	a.State.ClearHistory()
	a.presenter.Toast(entity.ActivitySuccess, a.text.T("history_cleared", nil))
}

// CheckSMTP dials the mail server with the operator's credentials.
func (a *App) CheckSMTP(ctx context.Context, user, password string) error {
	if user == "" || password == "" {
		err := ValidationError{"smtp", a.text.T("smtp_missing", nil)}
		a.presenter.Toast(entity.ActivityError, err.Message)
		return err
	}
	if a.smtp == nil {
		a.presenter.Toast(entity.ActivitySuccess, a.text.T("smtp_ok", nil))
		return nil
	}

	if err := a.smtp.Check(ctx, user, password); err != nil {
		a.logger.Warn("smtp check failed", zap.String("user", MaskEmail(user)), zap.Error(err))
		msg := a.text.T("smtp_failed", map[string]any{"Error": err.Error()})
		a.presenter.Toast(entity.ActivityError, msg)
		return &DomainError{Code: "smtp_failed", Message: msg, Err: err}
	}
	a.presenter.Toast(entity.ActivitySuccess, a.text.T("smtp_ok", nil))
	return nil
}

// ExportLeads returns the leads to export. An empty collection is
// rejected like any other validation failure.
func (a *App) ExportLeads() ([]entity.Lead, error) {
	leads := a.State.Snapshot().Leads
	if len(leads) == 0 {
		err := ValidationError{"leads", a.text.T("export_empty", nil)}
		a.presenter.Toast(entity.ActivityError, err.Message)
		return nil, err
	}
	a.presenter.Toast(entity.ActivitySuccess, a.text.T("export_ok", nil))
	return leads, nil
}
