package cookie

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSecret indicates the manager was built without a signing secret.
	ErrNoSecret = errors.New("no secret provided for cookie manager")

	// ErrSecretTooShort indicates the secret is below the minimum length.
	ErrSecretTooShort = errors.New("cookie secret too short")

	// ErrInvalidSignature indicates signature verification failed, which
	// suggests tampering or a secret change.
	ErrInvalidSignature = errors.New("cookie signature verification failed")

	// ErrInvalidFormat indicates the cookie value is not in the expected
	// signed encoding.
	ErrInvalidFormat = errors.New("invalid signed cookie format")

	// ErrCookieNotFound indicates the request carries no such cookie.
	ErrCookieNotFound = errors.New("cookie not found in request")
)

// ErrCookieTooLarge indicates the serialized cookie exceeds the size limit.
type ErrCookieTooLarge struct {
	Name string
	Size int
	Max  int
}

func (e ErrCookieTooLarge) Error() string {
	return fmt.Sprintf("cookie %q size %d exceeds maximum %d bytes", e.Name, e.Size, e.Max)
}
