package usecase

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is raised before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

const minPasswordLength = 8

func validateLogin(email, password string, tr Translator) error {
	if email == "" || password == "" {
		return ValidationError{"credentials", tr.T("auth_missing_login", nil)}
	}
	if !strings.Contains(email, "@") {
		return ValidationError{"email", tr.T("auth_invalid_email", nil)}
	}
	return nil
}

func validateRegister(email, password string, tr Translator) error {
	if email == "" || password == "" {
		return ValidationError{"credentials", tr.T("auth_missing_fields", nil)}
	}
	if !strings.Contains(email, "@") {
		return ValidationError{"email", tr.T("auth_invalid_email", nil)}
	}
	if len(password) < minPasswordLength {
		return ValidationError{"password", tr.T("auth_short_password", nil)}
	}
	return nil
}

func validateTemplate(name, subject, body string, tr Translator) error {
	if name == "" || subject == "" || body == "" {
		return ValidationError{"template", tr.T("template_missing_fields", nil)}
	}
	return nil
}

func validateSearch(zona, codigoPostal string, tr Translator) error {
	if zona == "" && codigoPostal == "" {
		return ValidationError{"search", tr.T("capture_missing_params", nil)}
	}
	return nil
}
