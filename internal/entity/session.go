package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Nombre string `json:"nombre"`
}

// Session is the authenticated state of the console. An empty token means the
// auth prompt must be shown and data views are blocked.
type Session struct {
	Token string `json:"-"`
	User  *User  `json:"user,omitempty"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}

// ExpiresAt reads the exp claim without verifying the signature. The backend
// is still the only judge of validity.
func (s Session) ExpiresAt() (time.Time, bool) {
	if s.Token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
