package session

import "errors"

var (
	// ErrNoSecret is returned when a codec is built without a signing secret.
	ErrNoSecret = errors.New("no secret provided for session codec")
	// ErrSecretTooShort is returned when the secret is below the minimum length.
	ErrSecretTooShort = errors.New("session secret too short")

	// Decode failure taxonomy. These never escape Decode, which downgrades
	// every failure to an empty session; they exist so the verifying path
	// stays individually testable.
	ErrMalformedPayload = errors.New("malformed session payload")
	ErrBadSignature     = errors.New("session signature verification failed")
	ErrExpired          = errors.New("session expired")
)
