package response

import "net/http"

// HTMX request headers sent by the client.
const (
	HeaderHXRequest    = "HX-Request"
	HeaderHXBoosted    = "HX-Boosted"
	HeaderHXTarget     = "HX-Target"
	HeaderHXTrigger    = "HX-Trigger"
	HeaderHXCurrentURL = "HX-Current-URL"
)

// HTMX response headers controlling client behavior.
const (
	HeaderHXLocation = "HX-Location"
	HeaderHXRedirect = "HX-Redirect"
	HeaderHXRefresh  = "HX-Refresh"
	HeaderHXRetarget = "HX-Retarget"
	HeaderHXReswap   = "HX-Reswap"
)

// IsHTMX reports whether the request was issued by HTMX.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == "true"
}

// HTMXRequest is the request-context object templates receive so markup can
// branch on how it is being rendered. It is part of the render-context
// contract, not of the rendering itself.
type HTMXRequest struct {
	Enabled bool   `json:"enabled"`
	Boosted bool   `json:"boosted"`
	Target  string `json:"target,omitempty"`
	Trigger string `json:"trigger,omitempty"`
}

// HTMXFromRequest extracts the HTMX request context from request headers.
func HTMXFromRequest(r *http.Request) HTMXRequest {
	return HTMXRequest{
		Enabled: IsHTMX(r),
		Boosted: r.Header.Get(HeaderHXBoosted) == "true",
		Target:  r.Header.Get(HeaderHXTarget),
		Trigger: r.Header.Get(HeaderHXTrigger),
	}
}
