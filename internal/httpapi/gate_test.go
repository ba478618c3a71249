package httpapi

import (
	"testing"
)

func TestDecideRouteTransitionTable(t *testing.T) {
	cases := []struct {
		name       string
		hasSession bool
		path       string
		redirect   string
	}{
		{"anonymous on protected route", false, "/", "/login"},
		{"anonymous on public route", false, "/login", ""},
		{"authenticated on protected route", true, "/", ""},
		{"authenticated on public route", true, "/login", "/"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := decideRoute(tc.hasSession, tc.path)
			if d.RedirectTo != tc.redirect {
				t.Fatalf("decideRoute(%v, %q): redirect %q, want %q", tc.hasSession, tc.path, d.RedirectTo, tc.redirect)
			}
			if d.Allowed() != (tc.redirect == "") {
				t.Fatalf("Allowed() inconsistent with redirect %q", d.RedirectTo)
			}
		})
	}
}

func TestDecideRoutePublicSubPaths(t *testing.T) {
	// /login sub-paths are public by prefix match.
	if d := decideRoute(false, "/login/reset"); !d.Allowed() {
		t.Fatalf("expected /login/reset to be public, got redirect %q", d.RedirectTo)
	}
	if d := decideRoute(true, "/login/reset"); d.RedirectTo != "/" {
		t.Fatalf("expected authenticated /login/reset to bounce to /, got %q", d.RedirectTo)
	}
}

func TestGateExemptions(t *testing.T) {
	for _, path := range []string{
		"/api/dashboard",
		"/api/auth/login",
		"/assets/app.css",
		"/metrics",
		"/healthz",
		"/readyz",
		"/version",
		"/favicon.ico",
	} {
		if !isGateExempt(path) {
			t.Fatalf("expected %q to be exempt from the gate", path)
		}
	}
	for _, path := range []string{"/", "/login", "/reports"} {
		if isGateExempt(path) {
			t.Fatalf("expected %q to be evaluated by the gate", path)
		}
	}
}
