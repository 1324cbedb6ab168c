package keel

import "github.com/dmitrymomot/keel/core/response"

// ErrCSRFMismatch is returned when a state-changing request carries a
// missing or stale CSRF token. Rendered as 403.
var ErrCSRFMismatch = response.ErrForbidden.WithMessage("Invalid or missing CSRF token")
