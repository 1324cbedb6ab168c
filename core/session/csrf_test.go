package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keel/core/session"
)

func TestEnsureCSRF(t *testing.T) {
	t.Parallel()

	var s session.Session
	token := s.EnsureCSRF()
	require.NotEmpty(t, token)
	assert.True(t, s.Modified())

	// Stable across repeated calls.
	assert.Equal(t, token, s.EnsureCSRF())
}

func TestRotateCSRF(t *testing.T) {
	t.Parallel()

	var s session.Session
	first := s.EnsureCSRF()
	second := s.RotateCSRF()

	assert.NotEqual(t, first, second)
	assert.Equal(t, second, s.EnsureCSRF())
}

func TestVerifyCSRF(t *testing.T) {
	t.Parallel()

	var s session.Session
	token := s.EnsureCSRF()

	assert.True(t, s.VerifyCSRF(token))
	assert.False(t, s.VerifyCSRF("wrong"))
	assert.False(t, s.VerifyCSRF(""))
	assert.False(t, s.VerifyCSRF(token+"x"))

	// A session without a token rejects everything, including empty input.
	var empty session.Session
	assert.False(t, empty.VerifyCSRF(""))
	assert.False(t, empty.VerifyCSRF(token))
}
