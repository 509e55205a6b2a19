package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/farmareach/internal/entity"
	"github.com/xavierca1/farmareach/internal/infra/integration/backend"
)

// Backend is the slice of the REST client the flows depend on.
type Backend interface {
	BaseURL() string
	Health(ctx context.Context) (*backend.HealthResponse, error)
	Me(ctx context.Context) (*entity.User, error)
	Login(ctx context.Context, input backend.LoginRequest) (*backend.AuthResponse, error)
	Register(ctx context.Context, input backend.RegisterRequest) (*backend.RegisterResponse, error)
	ListLeads(ctx context.Context, params backend.ListLeadsParams) ([]backend.LeadRow, error)
	Capture(ctx context.Context, input backend.CaptureRequest) (*backend.CaptureResponse, error)
	SendCampaign(ctx context.Context, input backend.CampaignRequest) (*backend.CampaignResponse, error)
	EnrichEmails(ctx context.Context) (*backend.EnrichResponse, error)
	DefaultTemplate(ctx context.Context) (string, error)
}

// TokenStore persists the bearer token under its fixed key.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

type Translator interface {
	T(id string, data map[string]any) string
}

type FlowName string

const (
	FlowCapture  FlowName = "capture"
	FlowCampaign FlowName = "campaign"
	FlowLogin    FlowName = "login"
	FlowRegister FlowName = "register"
)

// Presenter receives every user-visible side effect. Flows never render
// anything themselves.
type Presenter interface {
	Toast(level entity.ActivityLevel, message string)
	Activity(entry entity.ActivityEntry)
	FlowLog(flow FlowName, level entity.ActivityLevel, message string)
	ResetFlow(flow FlowName)
	Progress(flow FlowName, percent int, text string)
	SetBusy(flow FlowName, busy bool)
	ShowAuthPrompt()
	HideAuthPrompt()
	AuthStatus(level entity.ActivityLevel, message string)
	PrefillLogin(email string)
}

type ActivityPublisher interface {
	PublishActivity(ctx context.Context, entry entity.ActivityEntry) error
}

// SMTPChecker verifies mailbox credentials against the outgoing server.
type SMTPChecker interface {
	Check(ctx context.Context, user, password string) error
}

// Recorder counts flow outcomes. outcome is "ok", "error" or "rejected".
type Recorder interface {
	CaptureFinished(outcome string, found, saved int)
	CampaignFinished(outcome string, sent, failed int)
	SessionInvalidated()
}

type Clock func() time.Time

type nopRecorder struct{}

func (nopRecorder) CaptureFinished(string, int, int)  {}
func (nopRecorder) CampaignFinished(string, int, int) {}
func (nopRecorder) SessionInvalidated()               {}

const (
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeRejected = "rejected"
)
