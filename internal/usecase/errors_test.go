package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xavierca1/farmareach/internal/infra/integration/backend"
)

// ============ TESTS ============

// TestClassify - error taxonomy
func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"busy", ErrFlowBusy, KindBusy},
		{"session changed", fmt.Errorf("capture: %w", ErrSessionChanged), KindUnauthorized},
		{"validation", ValidationError{"search", "x"}, KindValidation},
		{"wrapped validation", fmt.Errorf("capture: %w", ValidationError{"search", "x"}), KindValidation},
		{"unauthorized", &backend.Error{Kind: backend.KindUnauthorized}, KindUnauthorized},
		{"request", &backend.Error{Kind: backend.KindRequest, Status: 500}, KindRequest},
		{"transport", fmt.Errorf("load leads: %w", &backend.Error{Kind: backend.KindTransport}), KindTransport},
		{"domain", &DomainError{Code: "x", Message: "y"}, KindDomain},
		{"domain over backend", &DomainError{Code: "auth_failed", Err: &backend.Error{Kind: backend.KindUnauthorized}}, KindUnauthorized},
		{"technical", &TechnicalError{Code: "token_store"}, KindInternal},
		{"plain", errors.New("boom"), KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

// TestUserMessage - text shown per error kind
func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil, testText))
	assert.Equal(t, "falta zona", UserMessage(ValidationError{"search", "falta zona"}, testText))
	assert.Equal(t, "zona invalida", UserMessage(&backend.Error{Kind: backend.KindRequest, Message: "zona invalida"}, testText))
	assert.Equal(t, backend.MsgSessionExpired, UserMessage(&backend.Error{Kind: backend.KindUnauthorized, Message: backend.MsgSessionExpired}, testText))
	assert.Equal(t, "No hay conexion con el servidor. Intentalo de nuevo.",
		UserMessage(&backend.Error{Kind: backend.KindTransport, Message: backend.MsgFailedToFetch}, testText))
	assert.Equal(t, "Ya hay una operacion en curso", UserMessage(ErrFlowBusy, testText))
	assert.Equal(t, "boom", UserMessage(errors.New("boom"), testText))
	assert.Equal(t, backend.MsgSessionExpired, UserMessage(ErrSessionChanged, testText))
}

func TestAuthErrorMessageID(t *testing.T) {
	cases := []struct {
		err  error
		mode AuthMode
		want string
	}{
		{errors.New("Invalid login credentials"), AuthModeLogin, "auth_bad_credentials"},
		{errors.New("Email not confirmed"), AuthModeLogin, "auth_not_confirmed"},
		{errors.New("User already registered"), AuthModeRegister, "auth_already_registered"},
		{errors.New("Password should be at least 6 characters"), AuthModeRegister, "auth_password_too_short"},
		{errors.New("Unable to validate email address: invalid format"), AuthModeRegister, "auth_email_format"},
		{errors.New("Supabase no configurado"), AuthModeLogin, "auth_unavailable"},
		{&backend.Error{Kind: backend.KindTransport, Message: backend.MsgFailedToFetch}, AuthModeLogin, "no_connection"},
		{errors.New("HTTP 500"), AuthModeLogin, "auth_login_failed"},
		{errors.New("HTTP 500"), AuthModeRegister, "auth_register_failed"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, AuthErrorMessageID(tc.err, tc.mode), tc.err.Error())
	}
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "fa***@farmacia.es", MaskEmail("farmacia@farmacia.es"))
	assert.Equal(t, "**@x.es", MaskEmail("ab@x.es"))
	assert.Equal(t, "not-an-email", MaskEmail(" not-an-email "))
}

func TestTechnicalErrorUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := &TechnicalError{Code: "token_store", Message: "failed to read persisted token", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsTechnicalError(fmt.Errorf("bootstrap: %w", err)))
	assert.Equal(t, "failed to read persisted token: disk full", err.Error())
}
