package auth

import (
	"errors"
	"net/http"
)

var (
	// ErrHashPassword indicates password hashing failed.
	ErrHashPassword = errors.New("auth: failed to hash password")

	// ErrTooManyAttempts indicates the IP exhausted its login-attempt window.
	ErrTooManyAttempts = tooManyAttemptsError{}
)

// tooManyAttemptsError maps to 429 through the statusCode interface.
type tooManyAttemptsError struct{}

func (tooManyAttemptsError) Error() string   { return "auth: too many login attempts" }
func (tooManyAttemptsError) StatusCode() int { return http.StatusTooManyRequests }
