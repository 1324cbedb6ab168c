// Package middleware provides request-scoped middleware shared by keel
// applications: request IDs, structured request logging, and client IP
// extraction.
//
// Middleware registers on the router before any route and runs in
// registration order:
//
//	r.Use(
//		middleware.RequestID[*app.Ctx](),
//		middleware.ClientIP[*app.Ctx](),
//		middleware.Logging[*app.Ctx](logger),
//	)
package middleware
