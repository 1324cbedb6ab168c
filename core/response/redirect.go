package response

import (
	"net/http"

	"github.com/dmitrymomot/keel/core/handler"
)

// RedirectSeeOther creates a 303 See Other response, the post-form redirect
// used after login, logout, and other mutating submissions. HTMX clients
// (detected via the HX-Request header) receive an HX-Location header with
// 200 OK so the fragment swap machinery handles the navigation.
func RedirectSeeOther(url string) handler.Response {
	return redirect(url, http.StatusSeeOther)
}

// Redirect creates a 302 Found response, HTMX-aware like RedirectSeeOther.
func Redirect(url string) handler.Response {
	return redirect(url, http.StatusFound)
}

// RedirectPermanent creates a 301 Moved Permanently response.
func RedirectPermanent(url string) handler.Response {
	return redirect(url, http.StatusMovedPermanently)
}

func redirect(url string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if IsHTMX(r) {
			w.Header().Set(HeaderHXLocation, url)
			w.WriteHeader(http.StatusOK)
			return nil
		}
		http.Redirect(w, r, url, status)
		return nil
	}
}
