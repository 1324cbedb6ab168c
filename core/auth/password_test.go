package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/keel/core/auth"
)

func TestHasherBcrypt(t *testing.T) {
	t.Parallel()

	h := auth.NewHasher(auth.WithBcryptCost(4)) // min cost keeps the test fast

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "bcrypt$"))

	assert.True(t, h.Check("s3cret", hash))
	assert.False(t, h.Check("wrong", hash))
	assert.False(t, h.Check("", hash))
}

func TestHasherPBKDF2(t *testing.T) {
	t.Parallel()

	h := auth.NewHasher(
		auth.WithAlgorithm(auth.AlgorithmPBKDF2),
		auth.WithPBKDF2Iterations(1000),
	)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "pbkdf2$1000$"))

	assert.True(t, h.Check("s3cret", hash))
	assert.False(t, h.Check("wrong", hash))

	// Unique salt per hash.
	second, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, second)
	assert.True(t, h.Check("s3cret", second))
}

func TestHasherCrossFormatVerification(t *testing.T) {
	t.Parallel()

	// A bcrypt-configured hasher still verifies pbkdf2 records and vice
	// versa; the stored prefix decides, not the configuration.
	bc := auth.NewHasher(auth.WithBcryptCost(4))
	pb := auth.NewHasher(auth.WithAlgorithm(auth.AlgorithmPBKDF2), auth.WithPBKDF2Iterations(1000))

	bcryptHash, err := bc.Hash("pass")
	require.NoError(t, err)
	pbkdf2Hash, err := pb.Hash("pass")
	require.NoError(t, err)

	assert.True(t, pb.Check("pass", bcryptHash))
	assert.True(t, bc.Check("pass", pbkdf2Hash))
}

func TestHasherUnknownFormatsFailClosed(t *testing.T) {
	t.Parallel()

	h := auth.NewHasher()

	for _, stored := range []string{
		"",
		"plaintext",
		"md5$abcdef",
		"pbkdf2$",
		"pbkdf2$notanumber$aa$bb",
		"pbkdf2$0$aa$bb",
		"pbkdf2$1000$zz$bb",
		"pbkdf2$1000$aa$",
		"bcrypt$not-a-bcrypt-hash",
	} {
		assert.False(t, h.Check("pass", stored), "stored=%q", stored)
	}
}
