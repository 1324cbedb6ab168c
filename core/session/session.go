package session

import "encoding/json"

// Flash is a one-time message queued in the session and drained on the next
// page render.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"msg"`
}

// Session is the per-client state carried in a signed cookie. It is a small
// JSON document: fixed fields for authentication and CSRF, plus a free-form
// Values map with typed, fail-closed accessors. The zero value is a valid
// empty session.
//
// Sessions are plain values; nothing here is shared between requests. The
// modified flag tells the transport whether the cookie must be rewritten.
type Session struct {
	UserID    int64          `json:"uid,omitempty"`
	Version   int            `json:"sv,omitempty"` // bump server-side expectation to force logout everywhere
	CSRFToken string         `json:"csrf,omitempty"`
	Flashes   []Flash        `json:"flash,omitempty"`
	Values    map[string]any `json:"vals,omitempty"`
	IssuedAt  int64          `json:"iat,omitempty"`

	modified bool
}

// IsAuthenticated reports whether a user id is bound to the session.
func (s Session) IsAuthenticated() bool { return s.UserID != 0 }

// IsZero reports whether the session carries no state at all.
func (s Session) IsZero() bool {
	return s.UserID == 0 && s.Version == 0 && s.CSRFToken == "" &&
		len(s.Flashes) == 0 && len(s.Values) == 0 && s.IssuedAt == 0
}

// Modified reports whether the session changed since it was decoded and the
// cookie needs rewriting.
func (s Session) Modified() bool { return s.modified }

// SetUserID binds an authenticated user to the session.
func (s *Session) SetUserID(id int64) {
	s.UserID = id
	if s.Version == 0 {
		s.Version = 1
	}
	s.modified = true
}

// SetVersion stamps the session scheme version. Sessions whose version is
// behind the server's expectation are treated as logged out.
func (s *Session) SetVersion(v int) {
	s.Version = v
	s.modified = true
}

// ClearUserID removes the authentication binding but keeps the rest of the
// session (flash queue in particular) intact.
func (s *Session) ClearUserID() {
	s.UserID = 0
	s.modified = true
}

// Set stores an arbitrary JSON-serializable value under key.
func (s *Session) Set(key string, val any) {
	if s.Values == nil {
		s.Values = make(map[string]any)
	}
	s.Values[key] = val
	s.modified = true
}

// Delete removes a value; deleting a missing key is a no-op.
func (s *Session) Delete(key string) {
	if _, ok := s.Values[key]; !ok {
		return
	}
	delete(s.Values, key)
	s.modified = true
}

// GetString returns a string value. Missing keys and non-string values both
// report false; there is no implicit coercion.
func (s Session) GetString(key string) (string, bool) {
	v, ok := s.Values[key]
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// GetInt returns an integer value. JSON numbers decode as float64, so both
// in-memory int64 and round-tripped float64 representations are accepted;
// anything else reports false.
func (s Session) GetInt(key string) (int64, bool) {
	v, ok := s.Values[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// GetBool returns a boolean value, failing closed on missing or mistyped keys.
func (s Session) GetBool(key string) (bool, bool) {
	v, ok := s.Values[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// AddFlash queues a one-time message.
func (s *Session) AddFlash(kind, message string) {
	s.Flashes = append(s.Flashes, Flash{Kind: kind, Message: message})
	s.modified = true
}

// PullFlashes drains and returns the flash queue. Returns nil when empty.
func (s *Session) PullFlashes() []Flash {
	if len(s.Flashes) == 0 {
		return nil
	}
	out := s.Flashes
	s.Flashes = nil
	s.modified = true
	return out
}
