package backend

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	// KindUnauthorized is a 401 from any endpoint. The session has already
	// been invalidated when the caller sees it.
	KindUnauthorized ErrorKind = "unauthorized"
	// KindRequest is any other non-2xx answer.
	KindRequest ErrorKind = "request_failed"
	// KindTransport means the request never reached the backend or the
	// answer could not be read.
	KindTransport ErrorKind = "transport"
)

const (
	MsgSessionExpired = "Sesion expirada. Vuelve a iniciar sesion."
	MsgFailedToFetch  = "failed to fetch"
)

type Error struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newHTTPError(status int, detail string) *Error {
	if detail == "" {
		detail = fmt.Sprintf("HTTP %d", status)
	}
	return &Error{Kind: KindRequest, Status: status, Message: detail}
}

func newTransportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: MsgFailedToFetch, Err: err}
}

// KindOf returns the kind of a backend error anywhere in the chain.
func KindOf(err error) (ErrorKind, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return "", false
}

func IsUnauthorized(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindUnauthorized
}

func IsTransport(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindTransport
}
