package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/entity"
	"github.com/xavierca1/farmareach/internal/i18n"
	"github.com/xavierca1/farmareach/internal/infra/integration/backend"
)

// MockBackend
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) BaseURL() string {
	return "http://backend.test"
}

func (m *MockBackend) Health(ctx context.Context) (*backend.HealthResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.HealthResponse), args.Error(1)
}

func (m *MockBackend) Me(ctx context.Context) (*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockBackend) Login(ctx context.Context, input backend.LoginRequest) (*backend.AuthResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.AuthResponse), args.Error(1)
}

func (m *MockBackend) Register(ctx context.Context, input backend.RegisterRequest) (*backend.RegisterResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.RegisterResponse), args.Error(1)
}

func (m *MockBackend) ListLeads(ctx context.Context, params backend.ListLeadsParams) ([]backend.LeadRow, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]backend.LeadRow), args.Error(1)
}

func (m *MockBackend) Capture(ctx context.Context, input backend.CaptureRequest) (*backend.CaptureResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.CaptureResponse), args.Error(1)
}

func (m *MockBackend) SendCampaign(ctx context.Context, input backend.CampaignRequest) (*backend.CampaignResponse, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.CampaignResponse), args.Error(1)
}

func (m *MockBackend) EnrichEmails(ctx context.Context) (*backend.EnrichResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*backend.EnrichResponse), args.Error(1)
}

func (m *MockBackend) DefaultTemplate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockTokenStore
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) Get(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockTokenStore) Set(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockTokenStore) Delete(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishActivity(ctx context.Context, entry entity.ActivityEntry) error {
	return m.Called(ctx, entry).Error(0)
}

// MockSMTPChecker
type MockSMTPChecker struct {
	mock.Mock
}

func (m *MockSMTPChecker) Check(ctx context.Context, user, password string) error {
	return m.Called(ctx, user, password).Error(0)
}

type toast struct {
	level   entity.ActivityLevel
	message string
}

type logLine struct {
	level   entity.ActivityLevel
	message string
}

// fakePresenter records everything the flows try to show.
type fakePresenter struct {
	mu         sync.Mutex
	toasts     []toast
	activity   []entity.ActivityEntry
	logs       map[FlowName][]logLine
	progress   map[FlowName][]int
	busy       map[FlowName]bool
	prompt     bool
	authStatus string
	prefill    string
}

func newFakePresenter() *fakePresenter {
	return &fakePresenter{
		logs:     make(map[FlowName][]logLine),
		progress: make(map[FlowName][]int),
		busy:     make(map[FlowName]bool),
	}
}

func (p *fakePresenter) Toast(level entity.ActivityLevel, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.toasts = append(p.toasts, toast{level, message})
}

func (p *fakePresenter) Activity(entry entity.ActivityEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activity = append(p.activity, entry)
}

func (p *fakePresenter) FlowLog(flow FlowName, level entity.ActivityLevel, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.logs[flow] = append(p.logs[flow], logLine{level, message})
}

func (p *fakePresenter) ResetFlow(flow FlowName) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.logs, flow)
	delete(p.progress, flow)
}

func (p *fakePresenter) Progress(flow FlowName, percent int, _ string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.progress[flow] = append(p.progress[flow], percent)
}

func (p *fakePresenter) SetBusy(flow FlowName, busy bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.busy[flow] = busy
}

func (p *fakePresenter) ShowAuthPrompt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompt = true
}

func (p *fakePresenter) HideAuthPrompt() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prompt = false
}

func (p *fakePresenter) AuthStatus(_ entity.ActivityLevel, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.authStatus = message
}

func (p *fakePresenter) PrefillLogin(email string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.prefill = email
}

func (p *fakePresenter) lastToast() toast {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.toasts) == 0 {
		return toast{}
	}
	return p.toasts[len(p.toasts)-1]
}

func (p *fakePresenter) flowLog(flow FlowName) []logLine {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]logLine(nil), p.logs[flow]...)
}

type countingRecorder struct {
	captures      []string
	campaigns     []string
	invalidations int
}

func (r *countingRecorder) CaptureFinished(outcome string, _, _ int) {
	r.captures = append(r.captures, outcome)
}

func (r *countingRecorder) CampaignFinished(outcome string, _, _ int) {
	r.campaigns = append(r.campaigns, outcome)
}

func (r *countingRecorder) SessionInvalidated() {
	r.invalidations++
}

var fixedNow = time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

var testText = i18n.New("es")

type fixture struct {
	api       *MockBackend
	presenter *fakePresenter
	state     *AppState
	activity  *ActivityLog
	sync      *LeadSync
}

func newFixture() *fixture {
	api := new(MockBackend)
	presenter := newFakePresenter()
	state := NewAppState()
	activity := NewActivityLog(presenter, nil, fixedClock, zap.NewNop())
	return &fixture{
		api:       api,
		presenter: presenter,
		state:     state,
		activity:  activity,
		sync:      NewLeadSync(api, state, presenter, activity, testText, zap.NewNop()),
	}
}

func sampleRows() []backend.LeadRow {
	return []backend.LeadRow{
		{ID: 1, Nombre: "Farmacia Sol", Zona: "Madrid", CodigoPostal: "28001", Email: "sol@farmacia.es", EstadoEnvio: "pendiente"},
		{ID: 2, Nombre: "Farmacia Luna", Zona: "Sevilla", CodigoPostal: "41001", Email: "", EstadoEnvio: ""},
		{ID: 3, Nombre: "Farmacia Mar", Zona: "Valencia", CodigoPostal: "46001", Email: "mar@farmacia.es", EstadoEnvio: "enviado"},
	}
}

func leadsParams() backend.ListLeadsParams {
	return backend.ListLeadsParams{Limit: leadPageSize}
}
