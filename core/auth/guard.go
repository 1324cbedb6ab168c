package auth

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/keel/core/db"
	"github.com/dmitrymomot/keel/core/session"
)

// User is the persisted account row. The session references users by id
// only; the row itself is never embedded in a session.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Guard implements authentication on top of the session subsystem and the
// SQL layer: user lookup, login/logout session mutation, credential checks,
// and login-attempt throttling.
type Guard struct {
	db             *db.DB
	hasher         *Hasher
	limiter        *LoginLimiter
	loginPath      string
	sessionVersion int
	log            *slog.Logger
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithHasher replaces the default bcrypt hasher.
func WithHasher(h *Hasher) GuardOption {
	return func(g *Guard) {
		if h != nil {
			g.hasher = h
		}
	}
}

// WithLimiter replaces the default login limiter (5 failures per 5 minutes).
func WithLimiter(l *LoginLimiter) GuardOption {
	return func(g *Guard) {
		if l != nil {
			g.limiter = l
		}
	}
}

// WithLoginPath sets the redirect target for unauthenticated requests to
// protected routes. Default "/login".
func WithLoginPath(path string) GuardOption {
	return func(g *Guard) {
		if path != "" {
			g.loginPath = path
		}
	}
}

// WithSessionVersion sets the version stamped into sessions on login.
// Bumping it invalidates every previously issued authenticated session at
// once, without touching the database.
func WithSessionVersion(v int) GuardOption {
	return func(g *Guard) {
		if v > 0 {
			g.sessionVersion = v
		}
	}
}

// WithGuardLogger sets the logger.
func WithGuardLogger(log *slog.Logger) GuardOption {
	return func(g *Guard) {
		if log != nil {
			g.log = log
		}
	}
}

// NewGuard creates an authentication guard backed by database.
func NewGuard(database *db.DB, opts ...GuardOption) *Guard {
	g := &Guard{
		db:             database,
		hasher:         NewHasher(),
		limiter:        NewLoginLimiter(5*time.Minute, 5),
		loginPath:      "/login",
		sessionVersion: 1,
		log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// LoginPath returns the configured login redirect target.
func (g *Guard) LoginPath() string { return g.loginPath }

// Limiter exposes the login-attempt limiter for handlers that throttle
// before touching credentials.
func (g *Guard) Limiter() *LoginLimiter { return g.limiter }

// HashPassword hashes a plaintext password under the configured scheme.
func (g *Guard) HashPassword(password string) (string, error) {
	return g.hasher.Hash(password)
}

// CheckPassword verifies a plaintext password against a stored hash.
func (g *Guard) CheckPassword(password, stored string) bool {
	return g.hasher.Check(password, stored)
}

// CurrentUser resolves the session's user id against the users table.
// An unauthenticated session and a stale user id both return (nil, nil);
// only infrastructure failures surface as errors.
func (g *Guard) CurrentUser(ctx context.Context, sess session.Session) (*User, error) {
	if !sess.IsAuthenticated() {
		return nil, nil
	}
	if sess.Version != g.sessionVersion {
		// Pre-bump session; treated as anonymous until the next login.
		return nil, nil
	}

	row, err := g.db.One(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE id = ?", sess.UserID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return userFromRow(row), nil
}

// UserByEmail fetches a user by email; (nil, nil) when absent.
func (g *Guard) UserByEmail(ctx context.Context, email string) (*User, error) {
	row, err := g.db.One(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE email = ?", email)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}
	return userFromRow(row), nil
}

// CreateUser inserts a user with a freshly hashed password.
func (g *Guard) CreateUser(ctx context.Context, email, password string) (*User, error) {
	hash, err := g.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	var id int64
	err = g.db.Tx(ctx, func(ctx context.Context, tx *db.Tx) error {
		res, err := tx.Exec(ctx,
			"INSERT INTO users(email, password_hash) VALUES(?, ?)", email, hash)
		if err != nil {
			return err
		}
		id = res.LastInsertID
		return nil
	})
	if err != nil {
		return nil, err
	}

	row, err := g.db.One(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	return userFromRow(row), nil
}

// AttemptLogin runs the full credential flow for a login form: throttle by
// IP, verify credentials, and maintain the failure counter. Invalid
// credentials return (nil, nil) - not an error - so the handler can
// re-render the form inline. ErrTooManyAttempts reports an exhausted window.
func (g *Guard) AttemptLogin(ctx context.Context, ip, email, password string) (*User, error) {
	if g.limiter.TooManyAttempts(ip) {
		return nil, ErrTooManyAttempts
	}

	user, err := g.UserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !g.hasher.Check(password, user.PasswordHash) {
		g.limiter.RecordFailure(ip)
		return nil, nil
	}

	g.limiter.Reset(ip)
	return user, nil
}

// Login binds a user id to the session and guarantees it carries a CSRF
// token. The caller's session middleware persists the updated cookie.
func (g *Guard) Login(sess *session.Session, userID int64) {
	sess.SetUserID(userID)
	sess.SetVersion(g.sessionVersion)
	sess.EnsureCSRF()
}

// Logout clears the authentication binding and rotates the CSRF token so a
// pre-logout token cannot be replayed into the next login (session
// fixation). The flash queue survives; the resulting cookie is a valid
// signed anonymous session.
func (g *Guard) Logout(sess *session.Session) {
	sess.ClearUserID()
	sess.RotateCSRF()
}

// userFromRow converts a column map into a User, tolerating driver
// representation differences for text and timestamps.
func userFromRow(row db.Row) *User {
	u := &User{}
	if id, ok := row["id"].(int64); ok {
		u.ID = id
	}
	u.Email = rowString(row, "email")
	u.PasswordHash = rowString(row, "password_hash")
	switch v := row["created_at"].(type) {
	case time.Time:
		u.CreatedAt = v
	case string:
		if t, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			u.CreatedAt = t
		}
	}
	return u
}

func rowString(row db.Row, key string) string {
	switch v := row[key].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return ""
	}
}
