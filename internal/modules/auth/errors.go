package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

// ValidationError carries the per-field messages for a rejected registration
// form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "auth validation failed"
}
