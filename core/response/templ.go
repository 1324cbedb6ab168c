package response

import (
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/keel/core/handler"
)

// Templ renders a templ component as an HTML response. Rendering is the
// collaborator's job; this adapter only bridges the component into the
// deferred-response model.
func Templ(component templ.Component) handler.Response {
	return TemplWithStatus(component, http.StatusOK)
}

// TemplWithStatus renders a templ component with a custom status code.
func TemplWithStatus(component templ.Component, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		return component.Render(r.Context(), w)
	}
}
