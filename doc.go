// Package keel is a small server-side web toolkit: a typed router, signed
// cookie sessions with CSRF protection, password authentication with login
// throttling, and a transactional SQLite layer, composed behind one App.
//
// A minimal application:
//
//	cfg := keel.DefaultConfig(secret)
//	app, err := keel.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer app.Close()
//
//	app.Get("/", func(c *keel.Ctx) handler.Response {
//		return response.String("hello")
//	})
//	app.Get("/users/{id:int}", func(c *keel.Ctx) handler.Response {
//		id, _ := c.ParamInt("id")
//		return response.JSON(map[string]any{"id": id})
//	})
//	app.Get("/account", app.Protect(accountPage))
//
//	http.ListenAndServe(":8080", app)
//
// Handlers return a deferred Response instead of writing directly, which is
// what lets the session middleware set cookies after the handler has run.
// POST, PUT, PATCH, and DELETE requests must carry the session's CSRF token
// in the "csrf" form field; embed it via c.CSRF() or c.RenderContext().
package keel
