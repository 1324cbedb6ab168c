// Package handler defines the shared handler, middleware, and context
// contracts used across the toolkit.
//
// A HandlerFunc receives a typed request context and returns a Response,
// which is a deferred write of the HTTP response:
//
//	func showUser(ctx *router.Context) handler.Response {
//		id := ctx.Param("id")
//		return response.String("user " + id)
//	}
//
// Because handlers return a Response instead of writing immediately,
// middleware running after the handler can still set headers (session
// cookies in particular) before anything is flushed to the client.
//
// Middleware composes by wrapping:
//
//	func requireHeader[C handler.Context](name string) handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				if ctx.Request().Header.Get(name) == "" {
//					return response.Error(response.ErrBadRequest)
//				}
//				return next(ctx)
//			}
//		}
//	}
package handler
