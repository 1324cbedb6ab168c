package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

const minSecretLength = 32

// Codec encodes sessions into signed, tamper-evident blobs and back. The
// payload is JSON signed with HMAC-SHA256 under a process-wide secret; it is
// readable by the client but not forgeable. Codec carries no mutable state
// and is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithTTL sets the session lifetime measured from the issue timestamp.
// Zero disables expiry.
func WithTTL(ttl time.Duration) CodecOption {
	return func(c *Codec) { c.ttl = ttl }
}

// withNow overrides the clock; used by expiry tests.
func withNow(now func() time.Time) CodecOption {
	return func(c *Codec) { c.now = now }
}

// NewCodec creates a session codec. The secret must satisfy the minimum
// length; default TTL is 30 days.
func NewCodec(secret string, opts ...CodecOption) (*Codec, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("%w: got %d chars, need at least %d",
			ErrSecretTooShort, len(secret), minSecretLength)
	}

	c := &Codec{
		secret: []byte(secret),
		ttl:    30 * 24 * time.Hour,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Encode serializes and signs a session. The issue timestamp is stamped on
// first encode so expiry counts from session creation, not last write.
func (c *Codec) Encode(s Session) (string, error) {
	if s.IssuedAt == 0 {
		s.IssuedAt = c.now().Unix()
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode session: %w", err)
	}

	sig := c.sign(payload)
	return base64.RawURLEncoding.EncodeToString(payload) + "|" +
		base64.RawURLEncoding.EncodeToString(sig), nil
}

// Decode verifies and deserializes a session blob. Every failure mode --
// missing value, malformed encoding, bad signature, expired timestamp --
// yields an empty session: callers must not distinguish a corrupt session
// from an absent one.
func (c *Codec) Decode(raw string) Session {
	s, err := c.decode(raw)
	if err != nil {
		return Session{}
	}
	return s
}

// decode is the verifying path behind Decode, kept separate so the failure
// taxonomy stays testable.
func (c *Codec) decode(raw string) (Session, error) {
	if raw == "" {
		return Session{}, ErrMalformedPayload
	}

	encPayload, encSig, ok := splitLast(raw, '|')
	if !ok {
		return Session{}, ErrMalformedPayload
	}

	payload, err := base64.RawURLEncoding.DecodeString(encPayload)
	if err != nil {
		return Session{}, ErrMalformedPayload
	}
	sig, err := base64.RawURLEncoding.DecodeString(encSig)
	if err != nil {
		return Session{}, ErrMalformedPayload
	}

	expected := c.sign(payload)
	if subtle.ConstantTimeCompare(sig, expected) != 1 {
		return Session{}, ErrBadSignature
	}

	var s Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return Session{}, ErrMalformedPayload
	}

	if c.ttl > 0 && s.IssuedAt > 0 {
		if c.now().After(time.Unix(s.IssuedAt, 0).Add(c.ttl)) {
			return Session{}, ErrExpired
		}
	}

	return s, nil
}

// TTL returns the configured session lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

func (c *Codec) sign(payload []byte) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write(payload)
	return mac.Sum(nil)
}

func splitLast(s string, sep byte) (before, after string, found bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
