package usecase

import (
	"errors"
	"strings"

	"github.com/xavierca1/farmareach/internal/infra/integration/backend"
)

// DomainError is a business failure that already carries the text the
// operator should read.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// TechnicalError is an infrastructure failure on our side of the wire
// (token storage, publishing).
type TechnicalError struct {
	Code    string
	Message string
	Err     error
}

func (e *TechnicalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TechnicalError) Unwrap() error {
	return e.Err
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

var (
	ErrFlowBusy          = errors.New("flow already running")
	ErrIllegalTransition = errors.New("illegal flow transition")
	ErrStaleRun          = errors.New("stale flow run")
	ErrSessionChanged    = errors.New("session ended while loading")
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindBusy         Kind = "busy"
	KindRequest      Kind = "request_failed"
	KindTransport    Kind = "transport"
	KindDomain       Kind = "domain"
	KindInternal     Kind = "internal"
)

// Classify maps any error produced by this package or the backend client
// onto the error taxonomy. It has no side effects.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrFlowBusy) || errors.Is(err, ErrIllegalTransition) {
		return KindBusy
	}
	if IsValidationError(err) {
		return KindValidation
	}
	if errors.Is(err, ErrSessionChanged) {
		return KindUnauthorized
	}
	if kind, ok := backend.KindOf(err); ok {
		switch kind {
		case backend.KindUnauthorized:
			return KindUnauthorized
		case backend.KindTransport:
			return KindTransport
		default:
			return KindRequest
		}
	}
	if IsDomainError(err) {
		return KindDomain
	}
	return KindInternal
}

// UserMessage is the text shown for err. Server details pass through
// verbatim; transport failures get the friendlier no-connection text.
func UserMessage(err error, tr Translator) string {
	if err == nil {
		return ""
	}

	var ve ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}

	switch Classify(err) {
	case KindBusy:
		return tr.T("flow_busy", nil)
	case KindTransport:
		return tr.T("no_connection", nil)
	}
	if errors.Is(err, ErrSessionChanged) {
		return backend.MsgSessionExpired
	}

	var apiErr *backend.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

var authErrorPatterns = []struct {
	needle    string
	messageID string
}{
	{"invalid login credentials", "auth_bad_credentials"},
	{"email not confirmed", "auth_not_confirmed"},
	{"user already registered", "auth_already_registered"},
	{"password should be at least", "auth_password_too_short"},
	{"unable to validate email address", "auth_email_format"},
	{"supabase no configurado", "auth_unavailable"},
	{"failed to fetch", "no_connection"},
	{"networkerror", "no_connection"},
}

// AuthErrorMessageID turns a raw login/register failure into the id of a
// friendly message.
func AuthErrorMessageID(err error, mode AuthMode) string {
	if backend.IsTransport(err) {
		return "no_connection"
	}

	text := ""
	if err != nil {
		text = strings.ToLower(err.Error())
	}
	for _, p := range authErrorPatterns {
		if strings.Contains(text, p.needle) {
			return p.messageID
		}
	}

	if mode == AuthModeRegister {
		return "auth_register_failed"
	}
	return "auth_login_failed"
}
