package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/entity"
	"github.com/xavierca1/farmareach/internal/infra/integration/backend"
)

// SessionManager owns the bearer token and the user identity. Logout and a
// 401 from any endpoint go through the same de-authentication path.
type SessionManager struct {
	mu    sync.RWMutex
	token string
	user  *entity.User

	api       Backend
	store     TokenStore
	state     *AppState
	presenter Presenter
	text      Translator
	recorder  Recorder
	logger    *zap.Logger

	onAuthenticated func(ctx context.Context)
}

func NewSessionManager(api Backend, store TokenStore, state *AppState, presenter Presenter, text Translator, logger *zap.Logger) *SessionManager {
	return &SessionManager{
		api:       api,
		store:     store,
		state:     state,
		presenter: presenter,
		text:      text,
		recorder:  nopRecorder{},
		logger:    logger,
	}
}

// OnAuthenticated registers the initial data sync run after every
// successful login or verification.
func (s *SessionManager) OnAuthenticated(fn func(ctx context.Context)) {
	s.onAuthenticated = fn
}

func (s *SessionManager) WithRecorder(r Recorder) {
	s.recorder = r
}

// Load reads the persisted token. It is not validated here.
func (s *SessionManager) Load(ctx context.Context) error {
	token, err := s.store.Get(ctx)
	if err != nil {
		return &TechnicalError{Code: "token_store", Message: "failed to read persisted token", Err: err}
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	return nil
}

// Bootstrap loads the persisted token and either asks for credentials or
// verifies it against the backend.
func (s *SessionManager) Bootstrap(ctx context.Context) error {
	if err := s.Load(ctx); err != nil {
		return err
	}
	if s.Token() == "" {
		s.setUser(nil)
		s.presenter.ShowAuthPrompt()
		return nil
	}
	return s.Verify(ctx)
}

// Verify asks the backend who owns the current token. Any failure
// invalidates the session.
func (s *SessionManager) Verify(ctx context.Context) error {
	user, err := s.api.Me(ctx)
	if err != nil {
		s.logger.Info("stored session rejected", zap.Error(err))
		s.Invalidate(ctx)
		return err
	}

	s.setUser(user)
	s.presenter.HideAuthPrompt()
	s.afterAuthentication(ctx)
	return nil
}

func (s *SessionManager) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	s.logger.Info("login submit", zap.String("email", MaskEmail(email)))

	if err := validateLogin(email, password, s.text); err != nil {
		s.presenter.AuthStatus(entity.ActivityError, UserMessage(err, s.text))
		return err
	}

	s.presenter.SetBusy(FlowLogin, true)
	defer s.presenter.SetBusy(FlowLogin, false)

	resp, err := s.api.Login(ctx, backend.LoginRequest{Email: email, Password: password})
	if err == nil && resp.AccessToken == "" {
		err = &DomainError{Code: "auth_failed", Message: s.text.T("auth_login_failed", nil)}
	}
	if err != nil {
		return s.authFailed(err, email, AuthModeLogin)
	}

	if err := s.store.Set(ctx, resp.AccessToken); err != nil {
		s.logger.Warn("token not persisted", zap.Error(err))
	}

	s.mu.Lock()
	s.token = resp.AccessToken
	s.mu.Unlock()

	user := resp.User
	s.setUser(&user)
	s.logger.Info("login success", zap.String("email", MaskEmail(email)))

	s.presenter.AuthStatus(entity.ActivitySuccess, s.text.T("auth_login_ok", nil))
	s.presenter.Toast(entity.ActivitySuccess, s.text.T("auth_login_ok", nil))
	s.presenter.HideAuthPrompt()
	s.afterAuthentication(ctx)
	return nil
}

// Register creates the account. The backend sends a verification mail, so
// no session is established and any token in the answer is ignored; the
// login form is pre-filled instead.
func (s *SessionManager) Register(ctx context.Context, email, nombre, password string) (string, error) {
	email = strings.TrimSpace(email)
	nombre = strings.TrimSpace(nombre)
	s.logger.Info("register submit",
		zap.String("email", MaskEmail(email)),
		zap.Bool("has_nombre", nombre != ""),
	)

	if err := validateRegister(email, password, s.text); err != nil {
		s.presenter.AuthStatus(entity.ActivityError, UserMessage(err, s.text))
		return "", err
	}

	s.presenter.SetBusy(FlowRegister, true)
	defer s.presenter.SetBusy(FlowRegister, false)

	resp, err := s.api.Register(ctx, backend.RegisterRequest{Email: email, Nombre: nombre, Password: password})
	if err != nil {
		return "", s.authFailed(err, email, AuthModeRegister)
	}

	message := resp.Message
	if message == "" {
		message = s.text.T("auth_register_status", nil)
	}
	s.logger.Info("register success",
		zap.String("email", MaskEmail(email)),
		zap.Bool("requires_verification", true),
	)

	s.presenter.PrefillLogin(email)
	s.presenter.AuthStatus(entity.ActivitySuccess, message)
	s.presenter.Toast(entity.ActivitySuccess, s.text.T("auth_register_ok", nil))
	return message, nil
}

func (s *SessionManager) Logout(ctx context.Context) {
	s.logger.Info("logout")
	s.deauthenticate(ctx)
}

// Invalidate is the 401 path. Safe to call any number of times; only the
// call that actually ends a session is counted.
func (s *SessionManager) Invalidate(ctx context.Context) {
	if s.deauthenticate(ctx) {
		s.recorder.SessionInvalidated()
	}
}

func (s *SessionManager) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionManager) User() *entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *SessionManager) Authenticated() bool {
	return s.Token() != ""
}

func (s *SessionManager) Session() entity.Session {
	return entity.Session{Token: s.Token(), User: s.User()}
}

// ExpiresAt is informational; the backend decides validity.
func (s *SessionManager) ExpiresAt() (time.Time, bool) {
	return s.Session().ExpiresAt()
}

// deauthenticate clears everything tied to the session and reports whether
// a token was still held.
func (s *SessionManager) deauthenticate(ctx context.Context) bool {
	s.mu.Lock()
	held := s.token != ""
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx); err != nil {
		s.logger.Warn("persisted token not removed", zap.Error(err))
	}
	s.state.ResetLeads()
	s.presenter.ShowAuthPrompt()
	return held
}

func (s *SessionManager) authFailed(err error, email string, mode AuthMode) error {
	s.logger.Warn(string(mode)+" failed",
		zap.String("email", MaskEmail(email)),
		zap.Error(err),
	)

	friendly := s.text.T(AuthErrorMessageID(err, mode), nil)
	s.presenter.AuthStatus(entity.ActivityError, friendly)
	s.presenter.Toast(entity.ActivityError, friendly)
	return &DomainError{Code: "auth_failed", Message: friendly, Err: err}
}

func (s *SessionManager) afterAuthentication(ctx context.Context) {
	if s.onAuthenticated != nil {
		s.onAuthenticated(ctx)
	}
}

func (s *SessionManager) setUser(u *entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// MaskEmail keeps the first two characters of the local part.
func MaskEmail(email string) string {
	value := strings.TrimSpace(email)
	parts := strings.Split(value, "@")
	if len(parts) != 2 {
		return value
	}
	local, domain := parts[0], parts[1]
	if len(local) <= 2 {
		return "**@" + domain
	}
	return local[:2] + "***@" + domain
}
