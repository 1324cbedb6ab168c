package session

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
)

// FormField is the request body field the dispatcher reads the CSRF token
// from. Tokens are never accepted from headers.
const FormField = "csrf"

// EnsureCSRF returns the session's CSRF token, generating one if the session
// does not have one yet. The token persists for the life of the session.
func (s *Session) EnsureCSRF() string {
	if s.CSRFToken == "" {
		s.CSRFToken = newToken()
		s.modified = true
	}
	return s.CSRFToken
}

// RotateCSRF discards the current token and issues a fresh one. Called on
// logout to prevent session fixation.
func (s *Session) RotateCSRF() string {
	s.CSRFToken = newToken()
	s.modified = true
	return s.CSRFToken
}

// VerifyCSRF compares a submitted token against the session's token in
// constant time. An absent token on either side fails.
func (s Session) VerifyCSRF(submitted string) bool {
	if submitted == "" || s.CSRFToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(s.CSRFToken)) == 1
}

// newToken returns 32 bytes of cryptographic randomness, base64url encoded.
func newToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; if it does the
		// process cannot issue secure tokens at all.
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
