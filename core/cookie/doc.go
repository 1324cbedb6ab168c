// Package cookie manages HTTP cookies with HMAC-SHA256 signing.
//
// The Manager applies secure defaults (path "/", HttpOnly, SameSite=Lax) and
// enforces the 4KB browser size limit. Signed cookies protect integrity, not
// confidentiality: the value is base64-encoded and verifiable, but readable
// by the client.
//
//	mgr, err := cookie.New(secret)
//	if err != nil {
//		return err
//	}
//	mgr.SetSigned(w, "prefs", "theme=dark", cookie.WithMaxAge(3600))
//	value, err := mgr.GetSigned(r, "prefs")
//
// Verification uses a constant-time comparison. Tampered values surface as
// ErrInvalidSignature; structurally broken values as ErrInvalidFormat.
package cookie
