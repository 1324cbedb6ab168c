// Package auth implements password authentication on top of the session and
// db packages.
//
// Password hashes are format-prefixed so records created under different
// schemes verify side by side: "bcrypt$..." (primary) and
// "pbkdf2$<iters>$<salt>$<hash>" (fallback). The scheme for new hashes is
// chosen once at construction, never per call.
//
// The Guard ties the pieces together:
//
//	guard := auth.NewGuard(database, auth.WithLoginPath("/signin"))
//
//	user, err := guard.AttemptLogin(ctx, clientIP, email, password)
//	switch {
//	case errors.Is(err, auth.ErrTooManyAttempts):
//		// window exhausted, reject before touching credentials
//	case err != nil:
//		// infrastructure failure
//	case user == nil:
//		// wrong credentials: re-render the form, no error
//	default:
//		guard.Login(sess, user.ID)
//	}
//
// Route protection is explicit composition, not registration magic:
//
//	protected := auth.RequireLogin[*app.Ctx](guard)
//	r.Get("/account", protected(showAccount))
//
// Login failures are throttled per source IP by a fixed-window in-memory
// counter; a successful login resets the window immediately.
package auth
