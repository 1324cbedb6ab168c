package response

import (
	"net/http"

	"github.com/dmitrymomot/keel/core/handler"
)

// Error returns a response that propagates err to the application's error
// handler instead of writing anything itself.
func Error(err error) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		return err
	}
}
