package httpapi

import (
	"net/http"
	"strings"
)

// Public routes reachable without a session (the login page and sub-paths).
var publicRoutePrefixes = []string{
	"/login",
}

// Paths the gate never evaluates: the API namespace enforces its own guard,
// the rest are operational or static endpoints.
var gateExemptPrefixes = []string{
	"/api/",
	"/assets/",
}

var gateExemptPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
	"/favicon.ico",
}

// gateDecision is the outcome of the route gate for one request. The zero
// value allows the request through.
type gateDecision struct {
	RedirectTo string
}

func (d gateDecision) Allowed() bool { return d.RedirectTo == "" }

// decideRoute classifies a page request from two booleans: session cookie
// presence and public-route membership. It holds no state and is safe to
// evaluate concurrently.
//
//	session  public   action
//	no       no       redirect to /login
//	no       yes      allow
//	yes      no       allow
//	yes      yes      redirect to /
func decideRoute(hasSession bool, path string) gateDecision {
	public := isPublicRoute(path)
	switch {
	case !hasSession && !public:
		return gateDecision{RedirectTo: "/login"}
	case hasSession && public:
		return gateDecision{RedirectTo: "/"}
	default:
		return gateDecision{}
	}
}

func isPublicRoute(path string) bool {
	for _, prefix := range publicRoutePrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isGateExempt(path string) bool {
	for _, p := range gateExemptPaths {
		if path == p {
			return true
		}
	}
	for _, prefix := range gateExemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// routeGate is the coarse pre-handler filter: it redirects browsers between
// the login page and the dashboard based on cookie presence alone. It is a
// UX layer; the per-endpoint guard inside handlers is the security boundary.
func (a *API) routeGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isGateExempt(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}
		decision := decideRoute(hasSessionCookie(r), r.URL.Path)
		if !decision.Allowed() {
			http.Redirect(w, r, decision.RedirectTo, http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
