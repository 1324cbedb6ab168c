// Package router implements exact-segment HTTP routing with typed path
// parameters.
//
// Patterns are sequences of literal and placeholder segments:
//
//	r := router.New[*router.Context]()
//	r.Get("/users/{id:int}", showUser)   // digits only, binds an integer
//	r.Get("/posts/{slug}", showPost)     // any non-empty segment
//
// Matching is exact on segment count: no wildcards, no prefix matching, and
// no trailing-slash normalization. A path that matches no pattern resolves
// to a 404; a path that matches a pattern registered for other methods
// resolves to a 405 carrying a sorted Allow header, with HEAD implicitly
// allowed wherever GET is registered.
//
// Registration order never affects which route matches; duplicate
// registration of the same method and pattern panics, treating it as a
// configuration error caught at startup.
//
// Middleware registered with Use runs in registration order, strictly
// sequentially, and can short-circuit by returning a response without
// calling the next handler.
package router
