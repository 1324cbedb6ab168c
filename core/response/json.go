package response

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrymomot/keel/core/handler"
)

// JSON responds with a JSON-encoded body and status 200.
func JSON(v any) handler.Response {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus responds with a JSON-encoded body and a custom status code.
func JSONWithStatus(v any, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		return json.NewEncoder(w).Encode(v)
	}
}
