package session

import (
	"net/http"

	"github.com/dmitrymomot/keel/core/cookie"
)

// DefaultCookieName is the session cookie name used when none is configured.
const DefaultCookieName = "keel_session"

// Transport moves sessions between HTTP requests and responses via a single
// cookie. The blob inside the cookie is already signed by the Codec, so the
// cookie itself is written plain.
type Transport struct {
	codec   *Codec
	cookies *cookie.Manager
	name    string
}

// NewTransport wires a codec to a cookie manager under the given cookie
// name. An empty name falls back to DefaultCookieName.
func NewTransport(codec *Codec, cookies *cookie.Manager, name string) *Transport {
	if name == "" {
		name = DefaultCookieName
	}
	return &Transport{codec: codec, cookies: cookies, name: name}
}

// Load reads the session from the request cookie. A missing cookie and an
// unverifiable cookie both produce an empty session.
func (t *Transport) Load(r *http.Request) Session {
	raw, err := t.cookies.Get(r, t.name)
	if err != nil {
		return Session{}
	}
	return t.codec.Decode(raw)
}

// Save encodes, signs, and writes the session cookie. Cookie max-age tracks
// the codec TTL so the browser and the signature expire together.
func (t *Transport) Save(w http.ResponseWriter, s Session) error {
	encoded, err := t.codec.Encode(s)
	if err != nil {
		return err
	}

	opts := []cookie.Option{}
	if ttl := t.codec.TTL(); ttl > 0 {
		opts = append(opts, cookie.WithMaxAge(int(ttl.Seconds())))
	}
	return t.cookies.Set(w, t.name, encoded, opts...)
}

// Clear expires the session cookie outright.
func (t *Transport) Clear(w http.ResponseWriter) {
	t.cookies.Delete(w, t.name)
}

// CookieName returns the configured session cookie name.
func (t *Transport) CookieName() string { return t.name }
