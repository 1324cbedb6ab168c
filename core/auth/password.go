package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// Algorithm selects the password hashing scheme. The choice is made once at
// process start; verification always detects the scheme from the stored
// hash, so records hashed under either algorithm stay checkable.
type Algorithm int

const (
	// AlgorithmBcrypt is the primary scheme.
	AlgorithmBcrypt Algorithm = iota
	// AlgorithmPBKDF2 is the fallback scheme (PBKDF2-HMAC-SHA256).
	AlgorithmPBKDF2
)

const (
	bcryptPrefix = "bcrypt$"
	pbkdf2Prefix = "pbkdf2$"

	defaultPBKDF2Iterations = 200_000
	pbkdf2KeyLength         = 32
	pbkdf2SaltLength        = 16
)

// Hasher hashes and verifies passwords. The zero-value configuration uses
// bcrypt at the default cost; it carries no mutable state and is safe for
// concurrent use.
type Hasher struct {
	algo       Algorithm
	bcryptCost int
	iterations int
}

// HasherOption configures a Hasher.
type HasherOption func(*Hasher)

// WithAlgorithm selects the hashing scheme for new hashes.
func WithAlgorithm(algo Algorithm) HasherOption {
	return func(h *Hasher) { h.algo = algo }
}

// WithBcryptCost overrides the bcrypt cost factor.
func WithBcryptCost(cost int) HasherOption {
	return func(h *Hasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.bcryptCost = cost
		}
	}
}

// WithPBKDF2Iterations overrides the PBKDF2 iteration count.
func WithPBKDF2Iterations(n int) HasherOption {
	return func(h *Hasher) {
		if n > 0 {
			h.iterations = n
		}
	}
}

// NewHasher creates a password hasher.
func NewHasher(opts ...HasherOption) *Hasher {
	h := &Hasher{
		algo:       AlgorithmBcrypt,
		bcryptCost: bcrypt.DefaultCost,
		iterations: defaultPBKDF2Iterations,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Hash produces a format-prefixed password hash under the configured
// algorithm: "bcrypt$..." or "pbkdf2$<iters>$<salt-hex>$<hash-hex>".
func (h *Hasher) Hash(password string) (string, error) {
	switch h.algo {
	case AlgorithmPBKDF2:
		return h.hashPBKDF2(password)
	default:
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.bcryptCost)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrHashPassword, err)
		}
		return bcryptPrefix + string(hashed), nil
	}
}

// Check verifies a password against a stored hash, detecting the scheme
// from the hash prefix regardless of the Hasher's configured algorithm.
// Unknown formats fail closed.
func (h *Hasher) Check(password, stored string) bool {
	switch {
	case strings.HasPrefix(stored, bcryptPrefix):
		err := bcrypt.CompareHashAndPassword(
			[]byte(strings.TrimPrefix(stored, bcryptPrefix)), []byte(password))
		return err == nil

	case strings.HasPrefix(stored, pbkdf2Prefix):
		return checkPBKDF2(password, stored)

	default:
		return false
	}
}

func (h *Hasher) hashPBKDF2(password string) (string, error) {
	salt := make([]byte, pbkdf2SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashPassword, err)
	}

	key := pbkdf2.Key([]byte(password), salt, h.iterations, pbkdf2KeyLength, sha256.New)
	return fmt.Sprintf("%s%d$%s$%s", pbkdf2Prefix, h.iterations,
		hex.EncodeToString(salt), hex.EncodeToString(key)), nil
}

func checkPBKDF2(password, stored string) bool {
	parts := strings.SplitN(strings.TrimPrefix(stored, pbkdf2Prefix), "$", 3)
	if len(parts) != 3 {
		return false
	}

	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 {
		return false
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return false
	}

	got := pbkdf2.Key([]byte(password), salt, iterations, len(want), sha256.New)
	return hmac.Equal(got, want)
}
