// Package response provides deferred HTTP response constructors and the
// error-to-status mapping used at the dispatcher boundary.
//
// Handlers return responses instead of writing them:
//
//	func login(ctx *app.Ctx) handler.Response {
//		...
//		return response.RedirectSeeOther("/dashboard")
//	}
//
// Redirects are HTMX-aware: when the HX-Request header is present they emit
// an HX-Location header with 200 OK instead of a 3xx.
//
// ErrorHandler and JSONErrorHandler implement the production/debug split:
// unexpected failures always map to 500, but diagnostic detail (underlying
// error, panic stack) is included only in debug mode.
package response
