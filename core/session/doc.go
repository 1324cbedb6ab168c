// Package session implements signed-cookie sessions and per-session CSRF
// tokens.
//
// A Session is a small JSON document (user id, CSRF token, flash queue,
// free-form values) serialized and HMAC-SHA256 signed into a single cookie.
// The server keeps no session state; the cookie is the session. Payloads are
// tamper-evident, not confidential - never store secrets in a session.
//
//	codec, err := session.NewCodec(secret, session.WithTTL(7*24*time.Hour))
//	transport := session.NewTransport(codec, cookieMgr, "app_session")
//
//	sess := transport.Load(r)      // empty session on any decode failure
//	sess.SetUserID(42)
//	sess.AddFlash("info", "welcome back")
//	transport.Save(w, sess)
//
// Decode never returns an error: bad signatures, malformed payloads, and
// expired timestamps all come back as an empty session. Handlers therefore
// cannot (and must not) tell a corrupt cookie from a missing one.
//
// CSRF tokens live inside the session. EnsureCSRF issues a token once per
// session; VerifyCSRF compares a form-submitted token in constant time. The
// dispatcher enforces verification for every state-mutating method.
package session
