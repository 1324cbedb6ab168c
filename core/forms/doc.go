// Package forms is a small helper for classic HTML form handling: parse,
// chain validators, collect per-field errors, and hand back the submitted
// values for re-display.
//
//	form := forms.FromRequest(r).
//		Require("email", "password").
//		Email("email").
//		MinLen("password", 8)
//
//	if !form.Valid() {
//		// re-render with form.Values() and form.Errors()
//	}
package forms
